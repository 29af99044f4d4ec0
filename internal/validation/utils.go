package validation

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// jsonFieldName returns the JSON name of a struct field, falling back to
// the Go name when there is no json tag.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// namespacePath splits a validator namespace into path segments, dropping
// the root type name.
//
// Examples:
//
//	"CreateUserRequest.email"        -> ["email"]
//	"Order.items[0].sku"             -> ["items", 0, "sku"]
//	"Order.labels[env]"              -> ["labels", "env"]
//	"Order.labels[a.b]"              -> ["labels", "a.b"]
//	"Matrix.rows[1][2]"              -> ["rows", 1, 2]
func namespacePath(namespace string) []any {
	_, rest, ok := strings.Cut(namespace, ".")
	if !ok {
		return nil
	}
	return fieldPath(rest)
}

// fieldPath splits a field path such as "items[0].sku" into segments.
// Numeric bracket keys become ints. Dots inside brackets belong to the key.
func fieldPath(s string) []any {
	var (
		path []any
		name strings.Builder
	)

	flush := func() {
		if name.Len() > 0 {
			path = append(path, name.String())
			name.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
			flush()
		case '[':
			flush()
			end := strings.IndexByte(s[i+1:], ']')
			if end < 0 {
				name.WriteString(s[i:])
				i = len(s)
				continue
			}

			key := s[i+1 : i+1+end]
			if n, err := strconv.Atoi(key); err == nil {
				path = append(path, n)
			} else {
				path = append(path, key)
			}
			i += end + 1
		default:
			name.WriteByte(s[i])
		}
	}
	flush()

	return path
}

var timeType = reflect.TypeOf(time.Time{})

// typeAt follows path through t and returns the type found at its end.
func typeAt(t reflect.Type, path []any) (reflect.Type, bool) {
	for _, seg := range path {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		switch t.Kind() {
		case reflect.Struct:
			name, ok := seg.(string)
			if !ok {
				return nil, false
			}
			field, ok := fieldByJSONName(t, name)
			if !ok {
				return nil, false
			}
			t = field.Type
		case reflect.Map, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return nil, false
		}
	}
	return t, true
}

func fieldByJSONName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.IsExported() && jsonFieldName(field) == name {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

// jsonTypeName names t the way a JSON client would think of it.
func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return "datetime"
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return t.String()
	}
}
