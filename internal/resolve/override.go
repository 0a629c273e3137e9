package resolve

// OverrideKind distinguishes the two override variants.
type OverrideKind int

const (
	// OverrideDefine replaces the resolved type mapping.
	OverrideDefine OverrideKind = iota
	// OverrideSkip suppresses generation entirely.
	OverrideSkip
)

// String returns a human-readable kind name.
func (k OverrideKind) String() string {
	switch k {
	case OverrideDefine:
		return "define"
	case OverrideSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Override is a caller-supplied rule applied by signature or by key
// name: either a custom type mapping or an instruction to skip.
type Override struct {
	Kind    OverrideKind
	ArgType string
	RetType string
}

// Define returns an override that maps to the given types. No
// validation happens here; invalid type expressions surface during
// synthesis, naming the offending string.
func Define(argType, retType string) Override {
	return Override{Kind: OverrideDefine, ArgType: argType, RetType: retType}
}

// Skip returns an override that suppresses generation.
func Skip() Override {
	return Override{Kind: OverrideSkip}
}
