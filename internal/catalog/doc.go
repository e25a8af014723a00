// Package catalog is the static component catalog for the test-plan model.
//
// The catalog maps every supported component type tag (e.g. "thread_group",
// "http_request") to its Schema: display metadata, the ordered list of
// property definitions with defaults and constraints, and the set of child
// categories the component may contain.
//
// It is populated once at process start and never mutated afterward, so it
// can be read from any goroutine without locking. The validator, the JMX
// generator and the JMX parser all resolve type tags through this package;
// the synthetic "unknown" type exists so that parsed-but-unrecognized
// elements still resolve to a schema.
package catalog
