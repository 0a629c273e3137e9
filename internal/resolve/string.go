package resolve

// stringContext handles the single-character "s" signature. Go strings
// are immutable values, so the argument and return types coincide; the
// arg/ret split still exists for overrides that want to differ.
func stringContext() Context {
	return NewContext("string")
}
