// Package errs defines the error types returned to API clients.
//
// Every failure in the catalog surfaces as an *HTTPError so clients
// always receive the same JSON envelope: a machine-readable code, a
// human-readable message, the HTTP status, and optional field-level
// validation errors.
package errs
