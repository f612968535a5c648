package gen

import (
	"errors"
	"fmt"
	"go/format"
	"strings"

	"github.com/unkn0wn-root/zerohex"
	"github.com/unkn0wn-root/zerohex/shape"
)

// ErrNoTypes is returned by Render when there is nothing to emit.
var ErrNoTypes = errors.New("zerohex: no types to generate")

// Options configure a Generator.
type Options struct {
	Features Features
	Logger   zerohex.Logger // if nil, NopLogger is used
}

type Generator struct {
	f   Features
	log zerohex.Logger
}

func New(opts Options) *Generator {
	return &Generator{f: opts.Features, log: zerohex.LoggerOr(opts.Logger)}
}

// Generate validates d and emits its codec. On a shape error nothing is
// emitted and the *shape.ShapeError is returned.
func (g *Generator) Generate(d shape.TypeDescriptor) (Codec, error) {
	n, err := shape.Validate(d)
	if err != nil {
		g.log.Warn("type ineligible", zerohex.Fields{"type": d.Name, "err": err.Error()})
		return Codec{}, err
	}
	g.log.Debug("type eligible", zerohex.Fields{"type": d.Name, "len": n})
	return Emit(d.Name, n, g.f), nil
}

// GenerateAll generates every descriptor in order. If any is ineligible
// it returns no codecs and the joined shape errors.
func (g *Generator) GenerateAll(ds []shape.TypeDescriptor) ([]Codec, error) {
	out := make([]Codec, 0, len(ds))
	var errs []error
	for _, d := range ds {
		c, err := g.Generate(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, c)
	}
	if len(errs) > 0 {
		g.log.Error("generation aborted", zerohex.Fields{"ineligible": len(errs), "requested": len(ds)})
		return nil, errors.Join(errs...)
	}
	g.log.Info("codecs generated", zerohex.Fields{"count": len(out)})
	return out, nil
}

// Render assembles one Go file in package pkg. args are the generator's
// command-line arguments, recorded in the header.
func Render(pkg string, codecs []Codec, f Features, args []string) ([]byte, error) {
	if len(codecs) == 0 {
		return nil, ErrNoTypes
	}

	var g printer
	g.P("// Code generated by \"zerohex ", strings.Join(args, " "), "\"; DO NOT EDIT.")
	g.P()
	g.P("package ", pkg)
	g.P()
	g.P("import (")
	g.P(`"github.com/unkn0wn-root/zerohex"`)
	if f.Msgpack {
		g.P(`"github.com/vmihailenco/msgpack/v5"`)
	}
	if f.Proto {
		g.P(`"google.golang.org/protobuf/types/known/wrapperspb"`)
	}
	g.P(")")
	for _, c := range codecs {
		g.P()
		g.buf.Write(c.Source)
	}

	src, err := format.Source(g.Bytes())
	if err != nil {
		return nil, fmt.Errorf("zerohex: format generated source: %w", err)
	}
	return src, nil
}
