package gen

import (
	"github.com/dave/jennifer/jen"

	"settings-generator/internal/naming"
	"settings-generator/internal/resolve"
)

// appendEnumAux emits the auxiliary declarations for an enum-backed
// mapping: the Go type, one constant per variant carrying its numeric
// value, and the bidirectional conversions between variants and their
// stored nick representation. The two switches are built from the same
// variant table, so encoding then decoding any declared variant yields
// the variant back.
func appendEnumAux(f *jen.File, aux *resolve.EnumAux, style naming.Style) {
	typeName := aux.TypeName

	f.Line().Commentf("%s is generated from the %q enum.", typeName, aux.Enum.Name)
	f.Type().Id(typeName).Int32()

	var consts []jen.Code
	for _, v := range aux.Enum.Values {
		consts = append(consts,
			jen.Id(variantIdent(typeName, v.Nick, style)).Id(typeName).Op("=").Lit(int(v.Value)))
	}

	f.Const().Defs(consts...)

	// variant -> stored nick
	nickCases := make([]jen.Code, 0, len(aux.Enum.Values)+1)
	for _, v := range aux.Enum.Values {
		nickCases = append(nickCases,
			jen.Case(jen.Id(variantIdent(typeName, v.Nick, style))).Block(
				jen.Return(jen.Lit(v.Nick))))
	}

	nickCases = append(nickCases, jen.Default().Block(
		jen.Panic(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("invalid "+typeName+" value %d"), jen.Int32().Call(jen.Id("v"))))))

	f.Line().Commentf("nick returns the stored representation of v.")
	f.Func().Params(jen.Id("v").Id(typeName)).Id("nick").Params().String().Block(
		jen.Switch(jen.Id("v")).Block(nickCases...))

	// stored nick -> variant
	parseCases := make([]jen.Code, 0, len(aux.Enum.Values)+1)
	for _, v := range aux.Enum.Values {
		parseCases = append(parseCases,
			jen.Case(jen.Lit(v.Nick)).Block(
				jen.Return(jen.Id(variantIdent(typeName, v.Nick, style)), jen.Nil())))
	}

	parseCases = append(parseCases, jen.Default().Block(
		jen.Return(jen.Lit(0),
			jen.Qual("fmt", "Errorf").Call(
				jen.Lit("unknown "+typeName+" nick %q"), jen.Id("nick")))))

	f.Line().Commentf("%s parses the stored representation of %s.", parseFuncName(typeName), typeName)
	f.Func().Id(parseFuncName(typeName)).Params(jen.Id("nick").String()).
		Params(jen.Id(typeName), jen.Error()).Block(
		jen.Switch(jen.Id("nick")).Block(parseCases...))
}

// variantIdent derives the constant identifier for one enum variant.
func variantIdent(typeName, nick string, style naming.Style) string {
	return typeName + style.Format(nick)
}

// parseFuncName derives the nick-parse function name for an enum type.
func parseFuncName(typeName string) string {
	return "parse" + typeName
}
