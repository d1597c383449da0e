package gen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/gqldsl/compiler/load"
)

const testRuntime = "example.com/rt"

func render(t *testing.T, code fmt.GoStringer) string {
	t.Helper()
	var s string
	require.NotPanics(t, func() { s = code.GoString() })
	return s
}

func TestResolveScalars(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		selector string
	}{
		{"String", "string", "rt.String()"},
		{"Int", "int64", "rt.Integer()"},
		{"Float", "float64", "rt.Float()"},
		{"Boolean", "bool", "rt.Boolean()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(testRuntime, load.Named{Name: tt.name})
			require.True(t, r.IsScalar())
			assert.Equal(t, tt.typ, render(t, r.Type))
			assert.Equal(t, tt.selector, render(t, r.Selector))
		})
	}
}

func TestResolveObjectReference(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Author", "Author"},
		{"MyCustomType", "MyCustomType"},
		{"ID", "ID"},
		{"string", "String"},
		{"INT", "INT"},
		{"type", "Type"},
		{"any", "Any"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(testRuntime, load.Named{Name: tt.name})
			assert.False(t, r.IsScalar())
			assert.Nil(t, r.Selector)
			assert.Equal(t, tt.expected, render(t, r.Type))
		})
	}
}

func TestResolveWrappers(t *testing.T) {
	tests := []struct {
		name     string
		ref      load.TypeRef
		typ      string
		selector string
	}{
		{
			name:     "non-null scalar",
			ref:      load.NonNull{Of: load.Named{Name: "String"}},
			typ:      "*string",
			selector: "rt.Optional(rt.String())",
		},
		{
			name:     "list of scalars",
			ref:      load.List{Of: load.Named{Name: "Float"}},
			typ:      "[]float64",
			selector: "rt.List(rt.Float())",
		},
		{
			name:     "non-null list of int",
			ref:      load.NonNull{Of: load.List{Of: load.Named{Name: "Int"}}},
			typ:      "*[]int64",
			selector: "rt.Optional(rt.List(rt.Integer()))",
		},
		{
			name:     "list of non-null int",
			ref:      load.List{Of: load.NonNull{Of: load.Named{Name: "Int"}}},
			typ:      "[]*int64",
			selector: "rt.List(rt.Optional(rt.Integer()))",
		},
		{
			name: "non-null list of non-null boolean",
			ref: load.NonNull{Of: load.List{Of: load.NonNull{
				Of: load.Named{Name: "Boolean"},
			}}},
			typ:      "*[]*bool",
			selector: "rt.Optional(rt.List(rt.Optional(rt.Boolean())))",
		},
		{
			name:     "nested lists",
			ref:      load.List{Of: load.List{Of: load.List{Of: load.Named{Name: "String"}}}},
			typ:      "[][][]string",
			selector: "rt.List(rt.List(rt.List(rt.String())))",
		},
		{
			name: "non-null list of object",
			ref:  load.NonNull{Of: load.List{Of: load.NonNull{Of: load.Named{Name: "Author"}}}},
			typ:  "*[]*Author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(testRuntime, tt.ref)
			assert.Equal(t, tt.typ, render(t, r.Type))
			if tt.selector == "" {
				assert.Nil(t, r.Selector)
				return
			}
			require.NotNil(t, r.Selector)
			assert.Equal(t, tt.selector, render(t, r.Selector))
		})
	}
}

func TestResolveNil(t *testing.T) {
	r := Resolve(testRuntime, nil)
	assert.False(t, r.IsScalar())
	assert.Equal(t, "any", render(t, r.Type))
}

// The selector is present exactly when the unwrapped leaf is a built-in
// scalar, whatever the wrapping.
func TestResolvePartition(t *testing.T) {
	wrappers := []func(load.TypeRef) load.TypeRef{
		func(r load.TypeRef) load.TypeRef { return r },
		func(r load.TypeRef) load.TypeRef { return load.NonNull{Of: r} },
		func(r load.TypeRef) load.TypeRef { return load.List{Of: r} },
		func(r load.TypeRef) load.TypeRef { return load.NonNull{Of: load.List{Of: load.NonNull{Of: r}}} },
	}
	leaves := map[string]bool{
		"String":       true,
		"Int":          true,
		"Float":        true,
		"Boolean":      true,
		"ID":           false,
		"Author":       false,
		"MyCustomType": false,
		"Time":         false,
		"float":        false,
	}

	for leaf, scalar := range leaves {
		for i, wrap := range wrappers {
			ref := wrap(load.Named{Name: leaf})
			t.Run(fmt.Sprintf("%s/%d", leaf, i), func(t *testing.T) {
				r := Resolve(testRuntime, ref)
				assert.Equal(t, scalar, r.IsScalar(), ref.String())
				assert.Equal(t, leaf, load.Leaf(ref).Name)
			})
		}
	}
}

func TestResolveDefaultRuntime(t *testing.T) {
	r := Resolve(DefaultRuntime, load.NonNull{Of: load.Named{Name: "Int"}})
	assert.Equal(t, "gqldsl.Optional(gqldsl.Integer())", render(t, r.Selector))
}
