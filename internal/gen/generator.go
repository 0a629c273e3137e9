package gen

import (
	"errors"
	"fmt"
	"path"

	"github.com/dave/jennifer/jen"

	"settings-generator/internal/diagnostic"
	"settings-generator/internal/naming"
	"settings-generator/internal/resolve"
	"settings-generator/internal/schema"
)

// DefaultRuntimePath is the import path of the runtime store package
// generated code compiles against.
const DefaultRuntimePath = "settings-generator/settings"

// Options configures one generation pass.
type Options struct {
	// Package is the package name of the generated file.
	Package string
	// StructName is the generated wrapper type name.
	StructName string
	// ID fixes the storage identifier at generation time. When empty,
	// the generated constructor takes the identifier as an argument.
	ID string
	// Strict upgrades unknown-signature diagnostics to a pass failure.
	Strict bool
	// RuntimePath overrides the runtime package import path.
	RuntimePath string
	// Style formats key names into Go identifiers.
	Style naming.Style
}

// KeyResolution records how one key resolved, for debug output.
type KeyResolution struct {
	Key       string
	Signature string
	Decision  string
	ArgType   string
	RetType   string
}

// Output is the result of a generation pass.
type Output struct {
	// File holds the generated declarations.
	File *jen.File
	// Diagnostics collects everything the pass reported.
	Diagnostics diagnostic.Diagnostics
	// Resolutions records the per-key decisions in schema order.
	Resolutions []KeyResolution
}

// Generator runs the synthesis side of a pass: it walks the schema in
// declaration order, asks the registry for a decision per key, and
// emits a bundle for every generated key. Each pass owns its generator
// and registry; nothing is shared between passes.
type Generator struct {
	opts Options
}

// New returns a Generator with defaults filled in.
func New(opts Options) *Generator {
	if opts.Package == "" {
		opts.Package = "config"
	}

	if opts.StructName == "" {
		opts.StructName = "Settings"
	}

	if opts.RuntimePath == "" {
		opts.RuntimePath = DefaultRuntimePath
	}

	if opts.Style == nil {
		opts.Style = naming.CamelStyle
	}

	return &Generator{opts: opts}
}

// Generate runs one pass over the schema. Fatal conditions (missing
// enum definitions, invalid type expressions) return an error with no
// output; unknown signatures become warning diagnostics and the key is
// cleanly omitted, unless Strict is set, in which case the pass fails
// after the walk completes.
func (g *Generator) Generate(sch *schema.Schema, reg *resolve.Registry) (*Output, error) {
	out := &Output{File: jen.NewFile(g.opts.Package)}
	f := out.File

	f.HeaderComment("Code generated by settings-generator. DO NOT EDIT.")
	f.ImportName(g.opts.RuntimePath, path.Base(g.opts.RuntimePath))

	g.emitStruct(f, sch)

	emittedAux := make(map[string]bool)

	for _, key := range sch.Keys {
		res, err := reg.Resolve(key)
		if err != nil {
			return nil, fmt.Errorf("resolving key %q: %w", key.Name, err)
		}

		out.Resolutions = append(out.Resolutions, keyResolution(key, res))

		switch res.Decision {
		case resolve.DecisionSkip:
			out.Diagnostics.AddInfo("key_skipped", "explicitly skipped",
				key.Name, key.Signature.String())
			continue
		case resolve.DecisionUnknown:
			out.Diagnostics.AddWarning("unknown_signature",
				"no built-in, override, or specialized handling; key omitted",
				key.Name, key.Signature.String())
			continue
		case resolve.DecisionGenerate:
		}

		bundle, err := g.newBundle(key, res.Context)
		if err != nil {
			return nil, err
		}

		if aux := res.Context.Enum; aux != nil && !emittedAux[aux.TypeName] {
			appendEnumAux(f, aux, g.opts.Style)
			emittedAux[aux.TypeName] = true
		}

		bundle.appendTo(f, g)
	}

	if g.opts.Strict && len(out.Diagnostics.Warnings) > 0 {
		return out, errors.New("strict mode: unresolved keys in schema")
	}

	return out, nil
}

// emitStruct writes the wrapper type, its constructors, and the
// raw-value accessors.
func (g *Generator) emitStruct(f *jen.File, sch *schema.Schema) {
	rt := g.opts.RuntimePath
	name := g.opts.StructName

	id := g.opts.ID
	if id == "" {
		id = sch.ID
	}

	f.Line().Commentf("%s is a typed wrapper over the %q settings store.", name, id)
	f.Type().Id(name).Struct(
		jen.Id("store").Op("*").Qual(rt, "Store"))

	ctor := "New" + name

	if g.opts.ID != "" {
		f.Line().Commentf("%s returns a wrapper over a store bound to %q.", ctor, g.opts.ID)
		f.Func().Id(ctor).Params().Op("*").Id(name).Block(
			jen.Return(jen.Op("&").Id(name).Values(
				jen.Id("store").Op(":").Qual(rt, "NewStore").Call(jen.Lit(g.opts.ID)))))
	} else {
		f.Line().Commentf("%s returns a wrapper over a store bound to the given identifier.", ctor)
		f.Func().Id(ctor).Params(jen.Id("id").String()).Op("*").Id(name).Block(
			jen.Return(jen.Op("&").Id(name).Values(
				jen.Id("store").Op(":").Qual(rt, "NewStore").Call(jen.Id("id")))))
	}

	f.Line().Commentf("%sFromStore wraps an existing store.", ctor)
	f.Func().Id(ctor+"FromStore").Params(jen.Id("store").Op("*").Qual(rt, "Store")).
		Op("*").Id(name).Block(
		jen.Return(jen.Op("&").Id(name).Values(jen.Id("store").Op(":").Id("store"))))

	f.Line().Comment("Value returns the raw stored value for key.")
	f.Func().Params(jen.Id("s").Op("*").Id(name)).Id("Value").
		Params(jen.Id("key").String()).Params(jen.Any(), jen.Bool()).Block(
		jen.Return(jen.Id("s").Dot("store").Dot("Value").Call(jen.Id("key"))))

	f.Line().Comment("SetValue writes a raw value for key.")
	f.Func().Params(jen.Id("s").Op("*").Id(name)).Id("SetValue").
		Params(jen.Id("key").String(), jen.Id("value").Any()).Error().Block(
		jen.Return(jen.Id("s").Dot("store").Dot("SetValue").Call(jen.Id("key"), jen.Id("value"))))
}

func keyResolution(key *schema.Key, res resolve.Result) KeyResolution {
	kr := KeyResolution{
		Key:       key.Name,
		Signature: key.Signature.String(),
		Decision:  res.Decision.String(),
	}

	if res.Decision == resolve.DecisionGenerate {
		kr.ArgType = res.Context.ArgType
		kr.RetType = res.Context.RetType
	}

	return kr
}
