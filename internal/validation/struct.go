package validation

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// ErrTranslatorNotFound indicates the English translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// message is a short client-facing text for a validator tag.
// withParam marks texts that contain the {0} placeholder for the tag param.
type message struct {
	text      string
	withParam bool
}

// messages override the library's English translations for the tags
// request payloads use most. Tags not listed keep the default text
// (e.g. "name must be at least 3 characters in length").
var messages = map[string]message{
	"required": {text: "Required"},
	"email":    {text: "Invalid email"},
	"uuid":     {text: "Invalid uuid"},
	"uuid4":    {text: "Invalid uuid"},
	"url":      {text: "Invalid url"},
	"oneof":    {text: "Invalid enum value. Expected one of: {0}", withParam: true},
}

// engine is the shared go-playground validator plus its translator.
// Both are read-only once built and safe for concurrent use.
type engine struct {
	validate   *validator.Validate
	translator ut.Translator
}

var defaultEngine = sync.OnceValues(newEngine)

func newEngine() (*engine, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so paths match what the client sent.
	validate.RegisterTagNameFunc(jsonFieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, errors.Wrap(err, "register default translations")
	}

	for tag, msg := range messages {
		err := validate.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, msg.text, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				var params []string
				if msg.withParam {
					params = append(params, fe.Param())
				}

				t, err := ut.T(fe.Tag(), params...)
				if err != nil {
					return fe.Error()
				}
				return t
			},
		)
		if err != nil {
			return nil, errors.Wrapf(err, "register %q translation", tag)
		}
	}

	return &engine{
		validate:   validate,
		translator: trans,
	}, nil
}

// violations converts validator field errors into a *ValidationError,
// keeping the order the library reported them in.
func (e *engine) violations(fieldErrors validator.ValidationErrors) *ValidationError {
	out := make([]Violation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, Violation{
			Path:    namespacePath(fe.Namespace()),
			Message: fe.Translate(e.translator),
		})
	}
	return NewValidationError(out...)
}

// StructValidator validates a request part by decoding it into T and
// checking T's `validate` struct tags.
//
// Typical pattern:
//
//	type CreateUserRequest struct {
//		Name  string `json:"name" validate:"required"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	validation.NewStructValidator[CreateUserRequest]()
type StructValidator[T any] struct{}

// NewStructValidator returns a Validator for the struct type T.
func NewStructValidator[T any]() *StructValidator[T] {
	return &StructValidator[T]{}
}

// Validate implements Validator.
//
// Params and query values arrive as strings, so for those slots the
// decode is weakly typed: "42" fills an int field and a single value
// fills a slice field. Anything else, the JSON body included, must
// already have the declared types. A value of the wrong type is reported
// as a violation ("Expected number") on its field.
func (v *StructValidator[T]) Validate(ctx context.Context, value any) error {
	eng, err := defaultEngine()
	if err != nil {
		return err
	}

	slot, _ := SlotFromContext(ctx)
	weak := slot == SlotParams || slot == SlotQuery

	target, err := decode[T](value, weak)
	if err != nil {
		return err
	}

	if err := eng.validate.StructCtx(ctx, target); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return err
		}
		return eng.violations(fieldErrors)
	}

	return nil
}

// decode turns a generic request value into a *T.
func decode[T any](value any, weak bool) (*T, error) {
	switch typed := value.(type) {
	case *T:
		if typed != nil {
			return typed, nil
		}
		return new(T), nil
	case T:
		return &typed, nil
	}

	out := new(T)
	if value == nil {
		return out, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: weak,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build decoder")
	}

	if err := decoder.Decode(value); err != nil {
		if fields, ok := decodeErrors(err); ok {
			return nil, typeViolations[T](fields)
		}
		return nil, errors.Wrapf(err, "failed to decode into %T", out)
	}
	return out, nil
}

// decodeErrors collects the per-field errors of a mapstructure failure.
// It reports false when some part of err is not tied to a field.
func decodeErrors(err error) ([]*mapstructure.DecodeError, bool) {
	var out []*mapstructure.DecodeError

	var walk func(err error) bool
	walk = func(err error) bool {
		switch e := err.(type) {
		case *mapstructure.DecodeError:
			out = append(out, e)
			return true
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				if !walk(inner) {
					return false
				}
			}
			return true
		case interface{ Unwrap() error }:
			return walk(e.Unwrap())
		}
		return false
	}

	if !walk(err) || len(out) == 0 {
		return nil, false
	}
	return out, true
}

// typeViolations reports each mismatched field with the type T declares
// for it.
func typeViolations[T any](fields []*mapstructure.DecodeError) *ValidationError {
	root := reflect.TypeOf((*T)(nil)).Elem()

	out := make([]Violation, 0, len(fields))
	for _, fe := range fields {
		path := fieldPath(fe.Name())

		message := "Invalid value"
		if t, ok := typeAt(root, path); ok {
			message = "Expected " + jsonTypeName(t)
		}

		out = append(out, Violation{Path: path, Message: message})
	}
	return NewValidationError(out...)
}
