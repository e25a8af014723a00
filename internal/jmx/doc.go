// Package jmx converts between the in-memory test-plan tree and the JMeter
// .jmx XML dialect.
//
// The dialect encodes parent/child structure positionally: every component
// element is immediately followed by exactly one hashTree sibling, which is
// self-closing when the component has no children and otherwise contains the
// element/hashTree pairs of each child in order. Generate walks a validated
// plan depth-first and emits those pairs; Parse performs the inverse walk
// over arbitrary external files, recovering from everything short of
// malformed XML.
package jmx
