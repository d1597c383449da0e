package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/gqldsl/compiler/load"
)

// ResolvedField is the result of resolving a field's type reference.
type ResolvedField struct {
	// Type is the generated type expression. For scalar fields it is the
	// result type of the selection; for object fields it is the type lock
	// the nested selection must carry.
	Type *jen.Statement
	// Selector is the runtime call that selects a scalar leaf. It is nil
	// when the field references an object type and the caller supplies the
	// nested selection.
	Selector *jen.Statement
}

// IsScalar reports whether the field resolved to a built-in scalar.
func (r ResolvedField) IsScalar() bool {
	return r.Selector != nil
}

// scalar describes a built-in GraphQL scalar.
type scalar struct {
	typ      func() *jen.Statement
	selector string
}

// scalars holds the built-in scalars. Names are matched exactly; ID and
// custom scalars resolve as object references.
var scalars = map[string]scalar{
	"String":  {typ: jen.String, selector: "String"},
	"Int":     {typ: jen.Int64, selector: "Integer"},
	"Float":   {typ: jen.Float64, selector: "Float"},
	"Boolean": {typ: jen.Bool, selector: "Boolean"},
}

// Resolve walks ref and returns its generated type and scalar selector.
// Runtime calls are qualified with the runtime import path.
//
// A NonNull wrapper produces a pointer type and an Optional adapter, and
// an unwrapped (nullable) type produces neither. This polarity is inverted
// relative to GraphQL nullability and is kept as is because generated
// APIs depend on it.
func Resolve(runtime string, ref load.TypeRef) ResolvedField {
	switch t := ref.(type) {
	case load.NonNull:
		inner := Resolve(runtime, t.Of)
		r := ResolvedField{Type: jen.Op("*").Add(inner.Type)}
		if inner.Selector != nil {
			r.Selector = jen.Qual(runtime, "Optional").Call(inner.Selector)
		}
		return r
	case load.List:
		inner := Resolve(runtime, t.Of)
		r := ResolvedField{Type: jen.Index().Add(inner.Type)}
		if inner.Selector != nil {
			r.Selector = jen.Qual(runtime, "List").Call(inner.Selector)
		}
		return r
	case load.Named:
		if s, ok := scalars[t.Name]; ok {
			return ResolvedField{
				Type:     s.typ(),
				Selector: jen.Qual(runtime, s.selector).Call(),
			}
		}
		return ResolvedField{Type: jen.Id(markerName(t.Name))}
	default:
		return ResolvedField{Type: jen.Any()}
	}
}
