// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, CORS, tracing, panic recovery, and the global error
// handler that shapes every failure into the API's error envelope.
package middleware
