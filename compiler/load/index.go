package load

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// TypeIndex maps object type names to their definitions. Iteration order is
// the order in which names first appear in the schema.
type TypeIndex struct {
	names []string
	types map[string]*ObjectType
}

// NewTypeIndex builds the index from a list of schema definitions. Only
// object types are kept; scalars, enums, interfaces, unions, input objects
// and directive declarations are skipped. When two object types share a
// name, the later definition replaces the earlier one.
//
// Field types are not checked against the index.
func NewTypeIndex(defs ast.DefinitionList) *TypeIndex {
	idx := &TypeIndex{types: make(map[string]*ObjectType)}
	for _, def := range defs {
		if def == nil || def.Kind != ast.Object {
			continue
		}
		idx.add(NewObjectType(def))
	}
	return idx
}

func (x *TypeIndex) add(t *ObjectType) {
	if _, ok := x.types[t.Name]; !ok {
		x.names = append(x.names, t.Name)
	}
	x.types[t.Name] = t
}

// Lookup returns the object type with the given name.
func (x *TypeIndex) Lookup(name string) (*ObjectType, bool) {
	t, ok := x.types[name]
	return t, ok
}

// Names returns the indexed type names in index order.
func (x *TypeIndex) Names() []string {
	return append([]string(nil), x.names...)
}

// Types returns the indexed object types in index order.
func (x *TypeIndex) Types() []*ObjectType {
	types := make([]*ObjectType, 0, len(x.names))
	for _, name := range x.names {
		types = append(types, x.types[name])
	}
	return types
}

// Len returns the number of indexed object types.
func (x *TypeIndex) Len() int {
	return len(x.names)
}
