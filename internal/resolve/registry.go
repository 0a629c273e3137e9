package resolve

import (
	"errors"

	"settings-generator/internal/schema"
)

// ErrMissingEnum is returned when a key references an enum absent from
// the schema's enum set. This is structural schema breakage and aborts
// the whole generation pass.
var ErrMissingEnum = errors.New("missing enum definition")

// Decision is the outcome kind of resolving one key.
type Decision int

const (
	// DecisionGenerate means accessors are generated with the result's Context.
	DecisionGenerate Decision = iota
	// DecisionSkip means the key was explicitly marked skipped.
	DecisionSkip
	// DecisionUnknown means no built-in, override, or specialized
	// generator handles the key's signature. The registry never treats
	// this as fatal; the caller decides.
	DecisionUnknown
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case DecisionGenerate:
		return "generate"
	case DecisionSkip:
		return "skip"
	case DecisionUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Result is the outcome of resolving one key. Context is meaningful
// only when Decision is DecisionGenerate.
type Result struct {
	Decision Decision
	Context  Context
}

// Registry composes the built-in type table, the specialized string and
// enum generators, and the caller override layer into one
// priority-ordered lookup. A registry is built once per generation
// pass and never shared across passes.
type Registry struct {
	signatures     map[schema.KeySignature]Context
	keyNames       map[string]Context
	enums          map[string]*schema.Enum
	signatureSkips map[schema.KeySignature]struct{}
	keyNameSkips   map[string]struct{}
}

// NewRegistry returns a registry seeded with the built-in type table.
// The enum set comes from the parsed schema; enum signatures are
// resolved against it.
func NewRegistry(enums map[string]*schema.Enum) *Registry {
	r := &Registry{
		signatures:     make(map[schema.KeySignature]Context),
		keyNames:       make(map[string]Context),
		enums:          enums,
		signatureSkips: make(map[schema.KeySignature]struct{}),
		keyNameSkips:   make(map[string]struct{}),
	}

	// Built-ins.
	r.insertType("b", NewContext("bool"))
	r.insertType("i", NewContext("int32"))
	r.insertType("u", NewContext("uint32"))
	r.insertType("x", NewContext("int64"))
	r.insertType("t", NewContext("uint64"))
	r.insertType("d", NewContext("float64"))
	r.insertType("(ii)", NewContext("[2]int32"))
	r.insertType("as", NewContext("[]string"))

	return r
}

// AddSignatureOverrides merges per-signature rules into the registry.
// These outrank the built-in table but lose to key-name overrides.
// Later calls for the same signature replace earlier ones.
func (r *Registry) AddSignatureOverrides(overrides map[schema.KeySignature]Override) {
	for sig, o := range overrides {
		switch o.Kind {
		case OverrideDefine:
			r.signatures[sig] = NewDissimilarContext(o.ArgType, o.RetType)
		case OverrideSkip:
			r.signatureSkips[sig] = struct{}{}
		}
	}
}

// AddKeyNameOverrides merges per-key rules into the registry. These
// outrank both the built-in table and signature overrides.
func (r *Registry) AddKeyNameOverrides(overrides map[string]Override) {
	for name, o := range overrides {
		switch o.Kind {
		case OverrideDefine:
			r.keyNames[name] = NewDissimilarContext(o.ArgType, o.RetType)
		case OverrideSkip:
			r.keyNameSkips[name] = struct{}{}
		}
	}
}

// Resolve decides what to do with one key. The returned error is
// reserved for the fatal missing-enum case; every other outcome is
// expressed through the Result.
func (r *Registry) Resolve(key *schema.Key) (Result, error) {
	sig := key.Signature

	if _, ok := r.keyNameSkips[key.Name]; ok {
		return Result{Decision: DecisionSkip}, nil
	}

	if _, ok := r.signatureSkips[sig]; ok {
		return Result{Decision: DecisionSkip}, nil
	}

	if ctx, ok := r.keyNames[key.Name]; ok {
		return Result{Decision: DecisionGenerate, Context: ctx}, nil
	}

	if ctx, ok := r.signatures[sig]; ok {
		return Result{Decision: DecisionGenerate, Context: ctx}, nil
	}

	switch sig.Kind {
	case schema.SignatureType:
		if sig.Value == "s" {
			return Result{Decision: DecisionGenerate, Context: stringContext()}, nil
		}

		return Result{Decision: DecisionUnknown}, nil
	case schema.SignatureEnum:
		ctx, err := r.enumContext(sig.Value)
		if err != nil {
			return Result{}, err
		}

		return Result{Decision: DecisionGenerate, Context: ctx}, nil
	default:
		return Result{Decision: DecisionUnknown}, nil
	}
}

func (r *Registry) insertType(code string, ctx Context) {
	r.signatures[schema.TypeSignature(code)] = ctx
}
