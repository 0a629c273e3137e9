package resolve

import "settings-generator/internal/schema"

// Context describes how to read and write one key's value in Go: the
// setter argument type, the getter return type, and optionally an
// auxiliary declaration set that must be emitted alongside the
// accessors. Arg and ret may differ (an override can accept one type
// and return another); auxiliary data rides along as a side-channel,
// never as a generator subclass.
type Context struct {
	// ArgType is the Go type expression accepted by the setters.
	ArgType string
	// RetType is the Go type expression returned by the getter.
	RetType string
	// Enum carries the auxiliary enum declaration, if this mapping is
	// backed by a schema enum.
	Enum *EnumAux
}

// NewContext returns a mapping using one type for both argument and
// return positions.
func NewContext(goType string) Context {
	return NewDissimilarContext(goType, goType)
}

// NewDissimilarContext returns a mapping with distinct argument and
// return types.
func NewDissimilarContext(argType, retType string) Context {
	return Context{ArgType: argType, RetType: retType}
}

// EnumAux is the auxiliary declaration attached to enum-backed
// mappings: the generated Go type name plus the schema enum whose
// variants it mirrors. The generator emits the type, its constants,
// and bidirectional conversions between variants and their stored
// nick representation.
type EnumAux struct {
	// TypeName is the Go type name generated for the enum.
	TypeName string
	// Enum is the schema definition backing the type.
	Enum *schema.Enum
}
