package main

import (
	"io"

	kingpin "github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"

	"github.com/syssam/gqldsl/compiler"
	"github.com/syssam/gqldsl/compiler/gen"
	"github.com/syssam/gqldsl/compiler/load"
)

type describeCmd struct {
	out    io.Writer
	schema *string
}

// typeSummary is the YAML form of an indexed object type.
type typeSummary struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Fields      []fieldSummary `yaml:"fields"`
}

type fieldSummary struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Accessor   string `yaml:"accessor"`
	Scalar     bool   `yaml:"scalar"`
	Deprecated bool   `yaml:"deprecated,omitempty"`
}

func addDescribe(app *kingpin.Application, out io.Writer) {
	c := &describeCmd{out: out}
	cmd := app.Command("describe", "Print the object types and accessors generated for a schema.")
	c.schema = cmd.Flag("schema", "Path of the GraphQL schema").Short('s').Required().String()
	cmd.Action(c.run)
}

func (c *describeCmd) run(*kingpin.ParseContext) error {
	idx, err := compiler.LoadIndex(*c.schema)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(summarize(idx)); err != nil {
		return err
	}
	return enc.Close()
}

func summarize(idx *load.TypeIndex) []typeSummary {
	types := make([]typeSummary, 0, idx.Len())
	for _, t := range idx.Types() {
		s := typeSummary{
			Name:        t.Name,
			Description: t.Description,
			Fields:      make([]fieldSummary, 0, len(t.Fields)),
		}
		for _, f := range t.Fields {
			s.Fields = append(s.Fields, fieldSummary{
				Name:       f.Name,
				Type:       f.Type.String(),
				Accessor:   gen.AccessorName(t.Name, f.Name),
				Scalar:     gen.Resolve(gen.DefaultRuntime, f.Type).IsScalar(),
				Deprecated: f.Deprecated,
			})
		}
		types = append(types, s)
	}
	return types
}
