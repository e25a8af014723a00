// Package planid produces opaque component and plan identifiers.
//
// Identifiers are used as keys into shared in-memory maps, so they must be
// practically collision-free across every live plan in the process, not just
// within a single plan. They carry no ordering guarantee.
package planid
