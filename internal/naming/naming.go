// Package naming normalizes schema identifiers (dashed key names,
// dotted enum ids) into Go identifiers. It is deliberately small: the
// rest of the generator treats identifier casing as a pluggable
// collaborator and only ever goes through a Style.
package naming

import "strings"

// Style formats a schema identifier into a target-language identifier.
type Style interface {
	Format(name string) string
}

// StyleFunc adapts a plain function to a Style.
type StyleFunc func(name string) string

// Format implements Style.
func (f StyleFunc) Format(name string) string {
	return f(name)
}

// CamelStyle converts dash/underscore/dot separated names to
// UpperCamelCase: "is-maximized" -> "IsMaximized".
var CamelStyle StyleFunc = func(name string) string {
	var b strings.Builder
	for _, w := range splitWords(name) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}

	return b.String()
}

// LowerCamelStyle converts to lowerCamelCase: "is-maximized" ->
// "isMaximized".
var LowerCamelStyle StyleFunc = func(name string) string {
	s := CamelStyle(name)
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// EnumTypeName derives a Go type name from a dotted enum id, using the
// last segment: "io.github.example.PreferredAudioSource" ->
// "PreferredAudioSource".
func EnumTypeName(enumID string) string {
	segs := strings.Split(enumID, ".")
	return CamelStyle(segs[len(segs)-1])
}

func splitWords(name string) []string {
	var words []string

	for _, raw := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	}) {
		if raw != "" {
			words = append(words, raw)
		}
	}

	return words
}
