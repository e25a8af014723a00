// Package httpapi exposes the plan model over HTTP for embedding UIs.
//
// All core operations stay pure; handlers only decode a request, call into
// catalog/validate/jmx/plan and encode the outcome. Parsed and authored
// plans are kept in the in-memory plan store between requests.
package httpapi
