// Package handler is the first layer after the router.
//
// Requests reach a handler only after the route's validation gate
// accepted them, so handlers bind the request into their typed
// payload and go straight to the work.
package handler
