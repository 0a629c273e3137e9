package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"settings-generator/internal/resolve"
	"settings-generator/internal/schema"
)

// Bundle is the synthesized output for one key: the documentation text
// plus the six operations, rendered onto the generated settings struct.
type Bundle struct {
	Key     *schema.Key
	Context resolve.Context

	docs   string
	getter string
}

// newBundle validates the resolved type mapping and prepares the
// bundle for emission. Invalid type expressions abort synthesis for
// the key, naming the offending string.
func (g *Generator) newBundle(key *schema.Key, ctx resolve.Context) (*Bundle, error) {
	if err := validateTypeExpr(ctx.ArgType); err != nil {
		return nil, fmt.Errorf("key %q: %w", key.Name, err)
	}

	if err := validateTypeExpr(ctx.RetType); err != nil {
		return nil, fmt.Errorf("key %q: %w", key.Name, err)
	}

	return &Bundle{
		Key:     key,
		Context: ctx,
		docs:    Docs(key),
		getter:  g.opts.Style.Format(key.Name),
	}, nil
}

// Method names for the bundle, all derived from the getter name.

func (b *Bundle) setterName() string  { return "Set" + b.getter }
func (b *Bundle) trySetName() string  { return "TrySet" + b.getter }
func (b *Bundle) connectName() string { return "Connect" + b.getter + "Changed" }
func (b *Bundle) bindName() string    { return "Bind" + b.getter }
func (b *Bundle) actionName() string  { return "Create" + b.getter + "Action" }

// appendTo emits the bundle's six operations onto the generated file.
func (b *Bundle) appendTo(f *jen.File, g *Generator) {
	rt := g.opts.RuntimePath
	key := b.Key.Name
	recv := func() *jen.Statement {
		return jen.Id("s").Op("*").Id(g.opts.StructName)
	}

	// get
	b.comment(f)
	f.Func().Params(recv()).Id(b.getter).Params().Id(b.Context.RetType).
		Block(b.getBody(g)...)

	// set
	b.comment(f)
	f.Func().Params(recv()).Id(b.setterName()).
		Params(jen.Id("value").Id(b.Context.ArgType)).Block(
		jen.If(
			jen.Id("err").Op(":=").Id("s").Dot(b.trySetName()).Call(jen.Id("value")),
			jen.Id("err").Op("!=").Nil(),
		).Block(
			jen.Panic(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit("failed to set value for key %q: %v"), jen.Lit(key), jen.Id("err")))))

	// try-set
	b.comment(f)
	f.Func().Params(recv()).Id(b.trySetName()).
		Params(jen.Id("value").Id(b.Context.ArgType)).Error().
		Block(jen.Return(b.storeWrite(g)))

	// connect-changed
	b.comment(f)
	f.Func().Params(recv()).Id(b.connectName()).
		Params(jen.Id("f").Func().Params()).Qual(rt, "HandlerID").Block(
		jen.Return(jen.Id("s").Dot("store").Dot("Connect").Call(jen.Lit(key), jen.Id("f"))))

	// bind
	b.comment(f)
	f.Func().Params(recv()).Id(b.bindName()).
		Params(jen.Id("object").Qual(rt, "Object"), jen.Id("property").String()).
		Op("*").Qual(rt, "Binding").Block(
		jen.Return(jen.Id("s").Dot("store").Dot("Bind").Call(
			jen.Lit(key), jen.Id("object"), jen.Id("property"))))

	// create-action
	b.comment(f)
	f.Func().Params(recv()).Id(b.actionName()).Params().Op("*").Qual(rt, "Action").Block(
		jen.Return(jen.Id("s").Dot("store").Dot("CreateAction").Call(jen.Lit(key))))
}

// getBody builds the getter body. Enum-backed keys decode the stored
// nick; everything else reads the value directly as the return type.
func (b *Bundle) getBody(g *Generator) []jen.Code {
	rt := g.opts.RuntimePath
	key := b.Key.Name

	if b.Context.Enum == nil {
		return []jen.Code{
			jen.Return(jen.Qual(rt, "Get").Index(jen.Id(b.Context.RetType)).
				Call(jen.Id("s").Dot("store"), jen.Lit(key))),
		}
	}

	return []jen.Code{
		jen.List(jen.Id("v"), jen.Id("err")).Op(":=").
			Id(parseFuncName(b.Context.Enum.TypeName)).Call(
			jen.Qual(rt, "Get").Index(jen.String()).Call(jen.Id("s").Dot("store"), jen.Lit(key))),
		jen.If(jen.Id("err").Op("!=").Nil()).Block(
			jen.Panic(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit("failed to get value for key %q: %v"), jen.Lit(key), jen.Id("err")))),
		jen.Return(jen.Id("v")),
	}
}

// storeWrite builds the fallible write expression. Enum-backed keys
// store the nick representation.
func (b *Bundle) storeWrite(g *Generator) *jen.Statement {
	rt := g.opts.RuntimePath
	key := b.Key.Name

	value := jen.Id("value")
	if b.Context.Enum != nil {
		value = jen.Id("value").Dot("nick").Call()
	}

	return jen.Qual(rt, "Set").Call(jen.Id("s").Dot("store"), jen.Lit(key), value)
}

// comment attaches the bundle's documentation text line by line. Lines
// carry their comment markers already so empty doc lines survive
// rendering.
func (b *Bundle) comment(f *jen.File) {
	f.Line()
	for _, line := range strings.Split(b.docs, "\n") {
		if line == "" {
			f.Comment("//")
			continue
		}

		f.Comment("// " + line)
	}
}
