package gqldsl

import (
	"strings"
)

// String renders the selection set as indented GraphQL selection text.
func (s SelectionSet[T, TypeLock]) String() string {
	var b strings.Builder
	writeNodes(&b, s.nodes, 0)
	return b.String()
}

// Compact renders the selection set in minified form, e.g. "{title,author{name}}".
func (s SelectionSet[T, TypeLock]) Compact() string {
	var b strings.Builder
	writeCompact(&b, s.nodes)
	return b.String()
}

// Query renders an anonymous query operation selecting s.
func Query[T, TypeLock any](s SelectionSet[T, TypeLock]) string {
	return QueryNamed("", s)
}

// QueryNamed renders a query operation with the given name selecting s.
func QueryNamed[T, TypeLock any](name string, s SelectionSet[T, TypeLock]) string {
	var b strings.Builder
	b.WriteString("query ")
	if name != "" {
		b.WriteString(name)
		b.WriteString(" ")
	}
	b.WriteString("{\n")
	writeNodes(&b, s.nodes, 1)
	b.WriteString("}\n")
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []*Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		b.WriteString(indent)
		b.WriteString(n.Name)
		if len(n.Children) > 0 {
			b.WriteString(" {\n")
			writeNodes(b, n.Children, depth+1)
			b.WriteString(indent)
			b.WriteString("}")
		}
		b.WriteString("\n")
	}
}

func writeCompact(b *strings.Builder, nodes []*Node) {
	b.WriteString("{")
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(n.Name)
		if len(n.Children) > 0 {
			writeCompact(b, n.Children)
		}
	}
	b.WriteString("}")
}
