// Package validate checks components and whole plans against the catalog.
//
// Validation never aborts on the first finding: every error and warning of a
// pass is collected into the Result so a caller can present them all at
// once. Only an unknown type tag short-circuits, since no further property
// checks are meaningful without a schema.
package validate
