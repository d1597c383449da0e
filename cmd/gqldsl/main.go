// gqldsl generates a typed GraphQL query DSL from a schema document.
//
// Usage:
//
//	gqldsl generate --schema schema.graphql --target dsl/dsl_gen.go
//	gqldsl generate --config gqldsl.yml --workers 4
//	gqldsl describe --schema schema.graphql
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	kingpin "github.com/alecthomas/kingpin/v2"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(ctx, os.Stdout, os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gqldsl: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newApp builds the command line application. Command output goes to
// stdout and logs go to stderr.
func newApp(ctx context.Context, stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("gqldsl", "Generate a typed GraphQL query DSL for Go.")
	app.Version(version)
	app.Writer(stdout)
	app.ErrorWriter(stderr)
	app.UsageWriter(stderr)

	logging := &logFlags{out: stderr}
	logging.addTo(app)

	addGenerate(ctx, app, stdout)
	addDescribe(app, stdout)
	return app
}
