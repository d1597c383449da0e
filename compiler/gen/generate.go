package gen

import (
	"io"
	"log/slog"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/gqldsl/compiler/load"
)

// JenniferGenerator emits the query DSL of one schema into a single file
// using Jennifer. For every indexed object type it declares a marker and
// one accessor per field.
//
// Example:
//
//	g := gen.NewJenniferGenerator(idx, cfg)
//	if err := g.Render(os.Stdout); err != nil {
//		return err
//	}
type JenniferGenerator struct {
	index   *load.TypeIndex
	config  *Config
	runtime string
	logger  *slog.Logger
}

// NewJenniferGenerator creates a generator for the given index. The index
// is read but never modified.
func NewJenniferGenerator(idx *load.TypeIndex, cfg *Config) *JenniferGenerator {
	if cfg == nil {
		cfg = &Config{}
	}
	return &JenniferGenerator{
		index:   idx,
		config:  cfg,
		runtime: cfg.RuntimePkg(),
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger used for debug output.
func (g *JenniferGenerator) WithLogger(l *slog.Logger) *JenniferGenerator {
	if l != nil {
		g.logger = l
	}
	return g
}

// File builds the Jennifer file holding the generated DSL.
func (g *JenniferGenerator) File() *jen.File {
	f := g.newFile(g.config.PackageName())
	if g.index == nil {
		return f
	}
	for _, t := range g.index.Types() {
		g.genType(f, t)
	}
	return f
}

// Render writes the generated source to w. Jennifer formats the output, so a
// failure here is reported as a GenerationError in the render phase.
func (g *JenniferGenerator) Render(w io.Writer) error {
	if err := g.File().Render(w); err != nil {
		return NewGenerationError("render", g.config.Target, "rendering DSL", err)
	}
	return nil
}

// newFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(g.config.HeaderComment())
	if g.runtime == DefaultRuntime {
		f.ImportName(DefaultRuntime, "gqldsl")
	}
	return f
}

// genType emits the marker and the field accessors of t.
func (g *JenniferGenerator) genType(f *jen.File, t *load.ObjectType) {
	g.logger.Debug("emitting object type",
		slog.String("type", t.Name),
		slog.Int("fields", len(t.Fields)),
		slog.String("pos", t.Pos),
	)
	name := markerName(t.Name)
	f.Comment(markerDoc(t))
	f.Type().Id(name).Interface(
		jen.Id(lockMethod(t.Name)).Params(),
	)
	for _, fd := range t.Fields {
		f.Line()
		g.genField(f, t, fd)
	}
	f.Line()
}

// genField emits the accessor of field fd.
func (g *JenniferGenerator) genField(f *jen.File, t *load.ObjectType, fd *load.Field) {
	r := Resolve(g.runtime, fd.Type)
	lock := jen.Id(markerName(t.Name))
	accessor := AccessorName(t.Name, fd.Name)
	g.logger.Debug("emitting field accessor",
		slog.String("type", t.Name),
		slog.String("field", fd.Name),
		slog.String("accessor", accessor),
		slog.String("ref", refString(fd.Type)),
		slog.Bool("scalar", r.IsScalar()),
	)
	f.Comment(accessorDoc(t, fd))
	if r.IsScalar() {
		f.Func().Id(accessor).Params().
			Qual(g.runtime, "SelectionSet").Types(r.Type, lock.Clone()).
			Block(
				jen.Return(jen.Qual(g.runtime, "Field").Types(lock.Clone()).Call(jen.Lit(fd.Name), r.Selector)),
			)
		return
	}
	param := typeParam(markerName(t.Name), markerName(load.Leaf(fd.Type).Name))
	f.Func().Id(accessor).Types(jen.Id(param).Any()).
		Params(jen.Id("fields").Qual(g.runtime, "SelectionSet").Types(jen.Id(param), r.Type)).
		Qual(g.runtime, "SelectionSet").Types(jen.Id(param), lock.Clone()).
		Block(
			jen.Return(jen.Qual(g.runtime, "Field").Types(lock.Clone()).Call(jen.Lit(fd.Name), jen.Id("fields"))),
		)
}

func refString(ref load.TypeRef) string {
	if ref == nil {
		return ""
	}
	return ref.String()
}
