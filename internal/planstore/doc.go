// Package planstore provides an ephemeral, thread-safe, in-memory registry
// of test plans keyed by plan id.
//
// It backs the HTTP API between requests: plans produced by parsing or
// authoring are kept here so later calls can fetch, edit or regenerate them.
// The store uses sync.Map: plans are independent and requests touch
// disjoint keys. Nothing is persisted; a process restart starts empty.
package planstore
