// Package gqldsl is the runtime used by code generated with the gqldsl
// compiler.
//
// The compiler reads a GraphQL schema and emits, for every object type, a
// marker type and one accessor function per field. Accessors return
// SelectionSet values locked to their object's marker, so nested
// selections are checked by the Go compiler:
//
//	q := gqldsl.Merge[Post](
//	    PostTitle(),
//	    PostAuthor(AuthorName()),
//	)
//	fmt.Print(gqldsl.Query(q))
//
// prints
//
//	query {
//	  title
//	  author {
//	    name
//	  }
//	}
//
// # Generation
//
// Generated files are produced by the gqldsl command, usually from a
// go:generate directive:
//
//	//go:generate go run github.com/syssam/gqldsl/cmd/gqldsl generate --schema schema.graphql --target dsl_gen.go
//
// or programmatically through the compiler package:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithSchema("./schema.graphql"),
//	    gen.WithTarget("./dsl/dsl_gen.go"),
//	)
//	err = compiler.Generate(cfg)
//
// Query execution and response decoding are not part of this package.
package gqldsl
