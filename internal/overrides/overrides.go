// Package overrides loads the caller-supplied override tables from
// their YAML form. The file has two sections mirroring the two
// override scopes:
//
//	signatures:
//	  "as": { skip: true }
//	  "(ii)": { arg: "image.Point" }
//	  "enum:org.example.Mode": { arg: "int32", ret: "int32" }
//	keys:
//	  window-width: { arg: "int", ret: "int" }
//	  legacy-flag: { skip: true }
//
// A rule either skips the matching keys or defines a custom type
// mapping; ret defaults to arg when omitted. Type strings are not
// validated here — invalid expressions surface during synthesis.
package overrides

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"settings-generator/internal/resolve"
	"settings-generator/internal/schema"
)

// enumPrefix marks a signature string as an enum reference rather than
// a raw type code.
const enumPrefix = "enum:"

// File represents a parsed override file.
type File struct {
	// Signatures maps signature strings to rules.
	Signatures map[string]Rule `yaml:"signatures,omitempty"`
	// Keys maps key names to rules.
	Keys map[string]Rule `yaml:"keys,omitempty"`
}

// Rule is one override entry: a skip marker or a type definition.
type Rule struct {
	// Skip suppresses generation for the matching keys.
	Skip bool `yaml:"skip,omitempty"`
	// Arg is the setter argument type expression.
	Arg string `yaml:"arg,omitempty"`
	// Ret is the getter return type expression; defaults to Arg.
	Ret string `yaml:"ret,omitempty"`
}

// Parse decodes an override file from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing override file: %w", err)
	}

	return &f, nil
}

// Load reads and decodes an override file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}

	return Parse(data)
}

// Validate checks rule well-formedness and returns all problems found.
func (f *File) Validate() []error {
	var errs []error

	check := func(scope, name string, r Rule) {
		switch {
		case r.Skip && (r.Arg != "" || r.Ret != ""):
			errs = append(errs, fmt.Errorf("%s %q: skip rule must not define types", scope, name))
		case !r.Skip && r.Arg == "":
			errs = append(errs, fmt.Errorf("%s %q: define rule needs an arg type", scope, name))
		}
	}

	for sig, r := range f.Signatures {
		check("signature", sig, r)
	}

	for key, r := range f.Keys {
		check("key", key, r)
	}

	return errs
}

// SignatureOverrides converts the signatures section into registry
// override form.
func (f *File) SignatureOverrides() map[schema.KeySignature]resolve.Override {
	out := make(map[schema.KeySignature]resolve.Override, len(f.Signatures))
	for sig, r := range f.Signatures {
		out[parseSignature(sig)] = r.toOverride()
	}

	return out
}

// KeyOverrides converts the keys section into registry override form.
func (f *File) KeyOverrides() map[string]resolve.Override {
	out := make(map[string]resolve.Override, len(f.Keys))
	for key, r := range f.Keys {
		out[key] = r.toOverride()
	}

	return out
}

// Apply validates the file and merges both override scopes into the
// registry.
func (f *File) Apply(reg *resolve.Registry) error {
	if errs := f.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid override file: %w", errors.Join(errs...))
	}

	reg.AddSignatureOverrides(f.SignatureOverrides())
	reg.AddKeyNameOverrides(f.KeyOverrides())

	return nil
}

func (r Rule) toOverride() resolve.Override {
	if r.Skip {
		return resolve.Skip()
	}

	ret := r.Ret
	if ret == "" {
		ret = r.Arg
	}

	return resolve.Define(r.Arg, ret)
}

func parseSignature(s string) schema.KeySignature {
	if name, ok := strings.CutPrefix(s, enumPrefix); ok {
		return schema.EnumSignature(name)
	}

	return schema.TypeSignature(s)
}
