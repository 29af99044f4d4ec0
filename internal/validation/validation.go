// Package validation contains the request validation gate.
//
// A gate wraps up to three validators (body, path params, query)
// around an echo route. They run in that order, the first failure
// stops the chain and is written back to the client as a 400 with
// a uniform `{"errors": [...]}` payload. Handlers behind a gate only
// ever see requests that passed every configured validator.
//
// The package also ships StructValidator, a validator built on the
// go-playground `validator` library that checks struct tags (like
// required fields or email formats) and reports the violations in a
// format the client can understand.
package validation
