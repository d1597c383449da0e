package load

// TypeRef is the declared type of a field. It is one of NonNull, List or
// Named, where Named is always the innermost element.
type TypeRef interface {
	// String returns the type in schema notation, e.g. "[Int!]!".
	String() string
	typeRef()
}

// NonNull wraps a type declared with the "!" suffix.
type NonNull struct {
	Of TypeRef
}

// List wraps a type declared between brackets.
type List struct {
	Of TypeRef
}

// Named references a scalar or object type by name.
type Named struct {
	Name string
}

func (NonNull) typeRef() {}
func (List) typeRef()    {}
func (Named) typeRef()   {}

func (t NonNull) String() string { return t.Of.String() + "!" }
func (t List) String() string    { return "[" + t.Of.String() + "]" }
func (t Named) String() string   { return t.Name }

// Leaf returns the named type at the bottom of ref.
func Leaf(ref TypeRef) Named {
	for {
		switch t := ref.(type) {
		case NonNull:
			ref = t.Of
		case List:
			ref = t.Of
		case Named:
			return t
		default:
			return Named{}
		}
	}
}
