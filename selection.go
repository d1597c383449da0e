package gqldsl

// Node is a single field selection. Children is empty for scalar leaves.
type Node struct {
	Name     string
	Children []*Node
}

// SelectionSet is a selection of fields on an object locked to TypeLock
// that produces a value of type T.
//
// TypeLock is one of the marker types emitted by the generator. The
// accessors for a field of type Author only accept a SelectionSet locked to
// Author, so a selection built for another object type is rejected by the
// compiler at every nesting level.
type SelectionSet[T, TypeLock any] struct {
	nodes []*Node
}

// Nodes returns the top-level nodes of the selection set.
func (s SelectionSet[T, TypeLock]) Nodes() []*Node {
	return s.nodes
}

func (SelectionSet[T, TypeLock]) typeLock(TypeLock) {}

// Selection is implemented by every SelectionSet locked to TypeLock,
// whatever its result type.
type Selection[TypeLock any] interface {
	Nodes() []*Node
	typeLock(TypeLock)
}

// Scalar is the type lock of the built-in scalar selectors. Field re-locks
// a scalar selection to the object the field belongs to.
type Scalar interface{ isScalar() }

// String selects a String leaf.
func String() SelectionSet[string, Scalar] {
	return SelectionSet[string, Scalar]{}
}

// Integer selects an Int leaf.
func Integer() SelectionSet[int64, Scalar] {
	return SelectionSet[int64, Scalar]{}
}

// Float selects a Float leaf.
func Float() SelectionSet[float64, Scalar] {
	return SelectionSet[float64, Scalar]{}
}

// Boolean selects a Boolean leaf.
func Boolean() SelectionSet[bool, Scalar] {
	return SelectionSet[bool, Scalar]{}
}

// Optional adapts a selection to an optional value. Both the result type
// and the type lock are wrapped, which is what the generated accessors
// expect for fields declared with a non-null wrapper.
func Optional[T, TypeLock any](s SelectionSet[T, TypeLock]) SelectionSet[*T, *TypeLock] {
	return SelectionSet[*T, *TypeLock]{nodes: s.nodes}
}

// List adapts a selection to a list of values.
func List[T, TypeLock any](s SelectionSet[T, TypeLock]) SelectionSet[[]T, []TypeLock] {
	return SelectionSet[[]T, []TypeLock]{nodes: s.nodes}
}

// Field selects the field name with the given nested selection and locks
// the result to TypeLock, the object type that declares the field.
//
// Only TypeLock needs to be given explicitly:
//
//	gqldsl.Field[Post]("title", gqldsl.String())
func Field[TypeLock, T, Inner any](name string, fields SelectionSet[T, Inner]) SelectionSet[T, TypeLock] {
	return SelectionSet[T, TypeLock]{
		nodes: []*Node{{Name: name, Children: fields.nodes}},
	}
}

// Merge combines selections that share a type lock into one selection set.
//
//	gqldsl.Merge[Post](PostTitle(), PostAuthor(AuthorName()))
func Merge[TypeLock any](sets ...Selection[TypeLock]) SelectionSet[map[string]any, TypeLock] {
	var nodes []*Node
	for _, s := range sets {
		nodes = append(nodes, s.Nodes()...)
	}
	return SelectionSet[map[string]any, TypeLock]{nodes: nodes}
}
