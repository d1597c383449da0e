package gen_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqldsl/compiler/gen"
	"github.com/syssam/gqldsl/compiler/load"
)

// benchSchema returns a schema with n object types. Each type references the
// next one so every accessor shape is exercised.
func benchSchema(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "type T%d {\n", i)
		b.WriteString("\tname: String\n\tcount: Int!\n\tscore: Float\n\tflags: [Boolean!]!\n")
		fmt.Fprintf(&b, "\tnext: T%d\n\tall: [T%d!]\n}\n", (i+1)%n, (i+1)%n)
	}
	return b.String()
}

func BenchmarkJenniferGenerator_Render(b *testing.B) {
	defs, err := load.ParseSchema(&ast.Source{Name: "bench.graphql", Input: benchSchema(50)})
	require.NoError(b, err)
	idx := load.NewTypeIndex(defs)
	cfg := gen.MustNewConfig(gen.WithPackage("bench"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := gen.NewJenniferGenerator(idx, cfg).Render(io.Discard)
		require.NoError(b, err)
	}
}
