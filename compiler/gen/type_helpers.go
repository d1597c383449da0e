package gen

import (
	"strings"

	"github.com/syssam/gqldsl/compiler/load"
)

// defaultDeprecationReason is the reason GraphQL assigns to @deprecated
// when none is given.
const defaultDeprecationReason = "No longer supported"

// docComment joins paragraphs into a line comment block. Paragraphs are
// separated by an empty comment line and blank paragraphs are skipped.
// The result starts with "//" so jennifer renders it verbatim.
func docComment(paragraphs ...string) string {
	var b strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n//\n")
		}
		for i, line := range strings.Split(p, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			line = strings.TrimRight(line, " \t\r")
			if line == "" {
				b.WriteString("//")
				continue
			}
			b.WriteString("// ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// markerDoc returns the doc comment of the marker declared for t.
func markerDoc(t *load.ObjectType) string {
	return docComment(
		markerName(t.Name)+" is the type lock of the "+t.Name+" object type.",
		t.Description,
	)
}

// accessorDoc returns the doc comment of the accessor declared for field f
// of type t.
func accessorDoc(t *load.ObjectType, f *load.Field) string {
	return docComment(
		AccessorName(t.Name, f.Name)+" selects the "+f.Name+" field of "+t.Name+".",
		f.Description,
		deprecation(f),
	)
}

func deprecation(f *load.Field) string {
	if !f.Deprecated {
		return ""
	}
	reason := f.DeprecationReason
	if reason == "" {
		reason = defaultDeprecationReason
	}
	reason = strings.TrimSpace(reason)
	if !strings.HasSuffix(reason, ".") {
		reason += "."
	}
	return "Deprecated: " + reason
}
