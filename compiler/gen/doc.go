// Package gen emits the typed query DSL for a GraphQL schema.
//
// The code generation pipeline follows this flow:
//
//	schema.graphql
//	        ↓
//	   load.TypeIndex (object types in first-seen order)
//	        ↓
//	   Resolve (one ResolvedField per field)
//	        ↓
//	   JenniferGenerator (markers and accessors)
//	        ↓
//	   Format + WriteFile
//
// # Generated Code
//
// Every object type gets a marker, an interface with an unexported method
// that nothing implements. Markers carry no data and are used only as type
// arguments:
//
//	type Post interface {
//		isPost()
//	}
//
// Every field gets an accessor named after its type and field. Scalar fields
// take no arguments:
//
//	func PostTitle() gqldsl.SelectionSet[string, Post] {
//		return gqldsl.Field[Post]("title", gqldsl.String())
//	}
//
// Fields referencing another type take the nested selection, which must be
// locked to that type's marker:
//
//	func PostAuthor[R any](fields gqldsl.SelectionSet[R, Author]) gqldsl.SelectionSet[R, Post] {
//		return gqldsl.Field[Post]("author", fields)
//	}
//
// Only String, Int, Float and Boolean are scalars. ID and custom scalars
// resolve like object references. A non-null wrapper produces a pointer
// type and an Optional selector; a list wrapper produces a slice and a List
// selector.
//
// # Configuration
//
// Use functional options to configure generation:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithSchema("./schema.graphql"),
//	    gen.WithTarget("./dsl/dsl_gen.go"),
//	    gen.WithPackage("dsl"),
//	)
//
// # Error Handling
//
// The package uses structured error types:
//
//   - IOError: reading the schema or writing the output failed
//   - ParseError: the schema document was rejected
//   - ConfigError: invalid configuration
//   - GenerationError: rendering or formatting failed
//
// Example error handling:
//
//	if err := compiler.Generate(cfg); err != nil {
//	    var parseErr *gen.ParseError
//	    if errors.As(err, &parseErr) {
//	        log.Printf("schema %s: %v", parseErr.Source, parseErr.Cause)
//	    }
//	}
package gen
