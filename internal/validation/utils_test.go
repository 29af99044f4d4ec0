package validation

import (
	"reflect"
	"testing"
)

func TestNamespacePath(t *testing.T) {
	tests := []struct {
		namespace string
		want      []any
	}{
		{"CreateUserRequest.email", []any{"email"}},
		{"Order.items[0].sku", []any{"items", 0, "sku"}},
		{"Order.labels[env]", []any{"labels", "env"}},
		{"Matrix.rows[1][2]", []any{"rows", 1, 2}},
		{"Order.customer.address.city", []any{"customer", "address", "city"}},
		{"Order.labels[a.b]", []any{"labels", "a.b"}},
		{"Order.labels[a.b].value", []any{"labels", "a.b", "value"}},
		{"Order.items[0][k.1]", []any{"items", 0, "k.1"}},
		{"Root", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			got := namespacePath(tt.namespace)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("namespacePath(%q) = %#v, want %#v", tt.namespace, got, tt.want)
			}
		})
	}
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		name string
		want []any
	}{
		{"name", []any{"name"}},
		{"items[1].quantity", []any{"items", 1, "quantity"}},
		{"labels[env.prod]", []any{"labels", "env.prod"}},
		{"broken[key", []any{"broken", "[key"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldPath(tt.name); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("fieldPath(%q) = %#v, want %#v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTypeAt(t *testing.T) {
	root := reflect.TypeOf(orderRequest{})

	tests := []struct {
		path []any
		want string
	}{
		{nil, "object"},
		{[]any{"customer"}, "string"},
		{[]any{"items"}, "array"},
		{[]any{"items", 3, "quantity"}, "number"},
		{[]any{"labels", "env"}, "string"},
	}

	for _, tt := range tests {
		got, ok := typeAt(root, tt.path)
		if !ok {
			t.Errorf("typeAt(%v) not found", tt.path)
			continue
		}
		if name := jsonTypeName(got); name != tt.want {
			t.Errorf("typeAt(%v) = %s, want %s", tt.path, name, tt.want)
		}
	}

	if _, ok := typeAt(root, []any{"missing"}); ok {
		t.Errorf("typeAt found a field that does not exist")
	}
}

func TestJSONFieldName(t *testing.T) {
	type sample struct {
		Tagged   string `json:"tagged_name,omitempty"`
		Untagged string
		Skipped  string `json:"-"`
	}

	typ := reflect.TypeOf(sample{})
	want := []string{"tagged_name", "Untagged", ""}
	for i, w := range want {
		if got := jsonFieldName(typ.Field(i)); got != w {
			t.Errorf("field %d: got %q, want %q", i, got, w)
		}
	}
}
