// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request-scoped logging, CORS, request
// logging, secure headers and panic recovery. Request validation
// lives in the validation package and is attached per route.
package middleware
