package validation

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Slot names the part of the request a validator is bound to.
type Slot string

const (
	SlotBody   Slot = "body"
	SlotParams Slot = "params"
	SlotQuery  Slot = "query"
)

// Validator checks the shape of a single request part.
//
// Validate returns nil when value is acceptable, a *ValidationError when
// it is not, and any other error when the validator itself could not do
// its job. Implementations must be safe for concurrent use: one Validator
// serves every request on its route.
type Validator interface {
	Validate(ctx context.Context, value any) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(ctx context.Context, value any) error

func (f ValidatorFunc) Validate(ctx context.Context, value any) error {
	return f(ctx, value)
}

// Request exposes the three validated parts of an inbound request.
//
// Body is only called when a body validator is configured, so the
// implementation may read and decode lazily.
type Request interface {
	Body() (any, error)
	Params() any
	Query() any
}

// Config holds the validators of one route. A nil slot is not validated.
//
// A Config is built once when the route is registered and must not be
// mutated afterwards.
type Config struct {
	Body   Validator
	Params Validator
	Query  Validator
}

type slotKey struct{}

// SlotFromContext reports which request part the validator receiving ctx
// was called for. Validators called outside a gate get false.
func SlotFromContext(ctx context.Context) (Slot, bool) {
	slot, ok := ctx.Value(slotKey{}).(Slot)
	return slot, ok
}

// Check runs the configured validators in body, params, query order and
// stops at the first failure, which is returned as a *SlotError.
// It returns nil when every configured validator passed.
func (cfg Config) Check(ctx context.Context, r Request) error {
	if cfg.Body != nil {
		body, err := r.Body()
		if err != nil {
			return &SlotError{Slot: SlotBody, Err: errors.Wrap(err, "read body")}
		}
		if err := run(ctx, SlotBody, cfg.Body, body); err != nil {
			return &SlotError{Slot: SlotBody, Err: err}
		}
	}

	if cfg.Params != nil {
		if err := run(ctx, SlotParams, cfg.Params, r.Params()); err != nil {
			return &SlotError{Slot: SlotParams, Err: err}
		}
	}

	if cfg.Query != nil {
		if err := run(ctx, SlotQuery, cfg.Query, r.Query()); err != nil {
			return &SlotError{Slot: SlotQuery, Err: err}
		}
	}

	return nil
}

// run calls one validator. A panic inside it is returned as an error.
func run(ctx context.Context, slot Slot, v Validator, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%s validator panicked: %v", slot, r)
		}
	}()

	return v.Validate(context.WithValue(ctx, slotKey{}, slot), value)
}

// Gate returns an echo middleware that validates the request against cfg
// before calling the next handler.
//
// Flow:
//  1. cfg.Check runs the configured validators (body -> params -> query).
//  2. If all pass, next(c) is called once and its result returned.
//  3. Otherwise a 400 with an ErrorResponse body is written and next is
//     never called. The failure is not returned to echo, so the global
//     error handler never sees it.
//
// Usage:
//
//	r.POST("/users", h.Create, validation.Gate(validation.Config{
//		Body: validation.NewStructValidator[CreateUserRequest](),
//	}))
func Gate(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			err := cfg.Check(ctx, newEchoRequest(c))
			if err == nil {
				return next(c)
			}

			response := NewErrorResponse(err)
			logFailure(zerolog.Ctx(ctx), c, err, response)

			return c.JSON(http.StatusBadRequest, response)
		}
	}
}

func logFailure(logger *zerolog.Logger, c echo.Context, err error, response ErrorResponse) {
	e := logger.Warn().
		Str("function", "validation.Gate").
		Str("path", c.Path()).
		Int("violations", len(response.Errors))

	var slotErr *SlotError
	if errors.As(err, &slotErr) {
		e = e.Str("slot", string(slotErr.Slot))
	}

	// Unstructured failures carry the real cause only in logs.
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		e = e.Err(err)
	}

	e.Msg("request validation failed")
}
