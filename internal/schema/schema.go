// Package schema provides the in-memory model of a settings schema:
// keys with their type signatures, defaults and ranges, plus the enum
// definitions keys may reference. The XML parser in this package turns
// a schema document into these records; resolution and generation only
// ever see the parsed form.
package schema

import "fmt"

// SignatureKind distinguishes the two forms a key signature can take.
type SignatureKind int

const (
	// SignatureType is a primitive or composite value type code (e.g. "b", "as").
	SignatureType SignatureKind = iota
	// SignatureEnum references an enum definition by name.
	SignatureEnum
)

// String returns a human-readable kind name.
func (k SignatureKind) String() string {
	switch k {
	case SignatureType:
		return "type"
	case SignatureEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// KeySignature classifies how a key's value is stored. It is a small
// comparable value so it can serve both as a map key and as a dispatch
// tag during resolution.
type KeySignature struct {
	// Kind selects between a raw type code and an enum reference.
	Kind SignatureKind
	// Value holds the type code for SignatureType, or the enum name
	// for SignatureEnum.
	Value string
}

// TypeSignature returns a signature for a raw type code.
func TypeSignature(code string) KeySignature {
	return KeySignature{Kind: SignatureType, Value: code}
}

// EnumSignature returns a signature referencing the named enum.
func EnumSignature(name string) KeySignature {
	return KeySignature{Kind: SignatureEnum, Value: name}
}

// String renders the signature for diagnostics.
func (s KeySignature) String() string {
	if s.Kind == SignatureEnum {
		return fmt.Sprintf("enum %q", s.Value)
	}

	return fmt.Sprintf("type %q", s.Value)
}

// Range holds the optional numeric bounds declared on a key. Bounds are
// kept as literal strings; they are documentation metadata, never
// validated against the storage backend.
type Range struct {
	Min string
	Max string
}

// Key is one named, typed value declared in a settings schema.
type Key struct {
	// Name is the key's name as declared in the schema document.
	Name string
	// Signature classifies the key's stored value.
	Signature KeySignature
	// Default is the default value literal, verbatim from the schema.
	Default string
	// Summary is the optional one-line description.
	Summary string
	// Range holds the optional min/max bounds.
	Range *Range
}

// EnumValue is one declared variant of an enum: its nick (the stored
// representation) and its numeric value.
type EnumValue struct {
	Nick  string
	Value int32
}

// Enum is a named enum definition with its ordered variant list.
type Enum struct {
	Name   string
	Values []EnumValue
}

// Schema is a parsed settings schema: its storage identifier, keys in
// declaration order, and the enum set shared by the schema document.
type Schema struct {
	// ID is the storage identifier declared on the schema element.
	ID string
	// Path is the optional storage path.
	Path string
	// Keys lists the schema's keys in declaration order.
	Keys []*Key
	// Enums maps enum name to definition for every enum declared in
	// the document.
	Enums map[string]*Enum
}

// Enum looks up an enum definition by name.
func (s *Schema) Enum(name string) (*Enum, bool) {
	e, ok := s.Enums[name]
	return e, ok
}
