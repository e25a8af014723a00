// Package app composes the service: configuration, logging, the plan store
// and the HTTP router. Commands construct an App and either run the server
// or borrow its wiring for one-shot operations.
package app
