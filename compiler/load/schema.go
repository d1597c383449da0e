package load

import (
	"fmt"
	"os"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ObjectType represents a GraphQL object type that was loaded from a schema document.
type ObjectType struct {
	Name        string
	Description string
	Fields      []*Field
	Pos         string
}

// Field represents a field of a loaded object type.
type Field struct {
	Name              string
	Description       string
	Type              TypeRef
	Deprecated        bool
	DeprecationReason string
}

// ReadSource reads the schema document at path.
func ReadSource(path string) (*ast.Source, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &ast.Source{Name: path, Input: string(buf)}, nil
}

// ParseSchema parses the schema document and returns its type definitions
// in document order. Type extensions and schema definitions are not returned.
func ParseSchema(src *ast.Source) (ast.DefinitionList, error) {
	doc, err := parser.ParseSchema(src)
	if err != nil {
		return nil, err
	}
	return doc.Definitions, nil
}

// NewObjectType creates a loaded object type from its schema definition.
func NewObjectType(def *ast.Definition) *ObjectType {
	t := &ObjectType{
		Name:        def.Name,
		Description: strings.TrimSpace(def.Description),
		Fields:      make([]*Field, 0, len(def.Fields)),
		Pos:         position(def.Position),
	}
	for _, fd := range def.Fields {
		t.Fields = append(t.Fields, NewField(fd))
	}
	return t
}

// NewField creates a loaded field from its schema definition.
func NewField(fd *ast.FieldDefinition) *Field {
	f := &Field{
		Name:        fd.Name,
		Description: strings.TrimSpace(fd.Description),
		Type:        NewTypeRef(fd.Type),
	}
	if d := fd.Directives.ForName("deprecated"); d != nil {
		f.Deprecated = true
		if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
			f.DeprecationReason = arg.Value.Raw
		}
	}
	return f
}

// NewTypeRef unfolds the parser's type representation, where the non-null
// flag is carried by the wrapped node, into explicit NonNull, List and
// Named wrappers.
func NewTypeRef(t *ast.Type) TypeRef {
	var ref TypeRef
	if t.Elem != nil {
		ref = List{Of: NewTypeRef(t.Elem)}
	} else {
		ref = Named{Name: t.NamedType}
	}
	if t.NonNull {
		ref = NonNull{Of: ref}
	}
	return ref
}

func position(pos *ast.Position) string {
	if pos == nil {
		return ""
	}
	if pos.Src != nil && pos.Src.Name != "" {
		return fmt.Sprintf("%s:%d", pos.Src.Name, pos.Line)
	}
	return fmt.Sprintf("line %d", pos.Line)
}
