// Package plan holds the in-memory test-plan tree model.
//
// A TestPlan owns every Component it contains: the component map is the
// single owning structure, a parent's Children list owns the link order, and
// a component's Parent field is only a weak back-reference used for lookups
// and hierarchy checks. Mutating operations (Attach, Remove, Reparent)
// maintain those invariants; Remove cascades to the whole subtree so that no
// component is ever left pointing at a parent that no longer exists.
//
// Property bags are generic maps. Typed access goes through the coercion
// helpers in props.go, which apply schema defaults for absent or malformed
// values.
package plan
