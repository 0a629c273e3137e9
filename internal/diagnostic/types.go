package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message tied to a schema key.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Key names the schema key this relates to, if any.
	Key string
	// Signature renders the key's signature, if relevant.
	Signature string
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Key != "" {
		prefix = append(prefix, "key "+d.Key)
	}

	if d.Signature != "" {
		prefix = append(prefix, d.Signature)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics accumulates everything reported by one generation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddError records an error diagnostic.
func (d *Diagnostics) AddError(code, message, key, signature string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  Error,
		Code:      code,
		Message:   message,
		Key:       key,
		Signature: signature,
	})
}

// AddWarning records a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, key, signature string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  Warning,
		Code:      code,
		Message:   message,
		Key:       key,
		Signature: signature,
	})
}

// AddInfo records an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, key, signature string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  Info,
		Code:      code,
		Message:   message,
		Key:       key,
		Signature: signature,
	})
}

// HasErrors reports whether any error diagnostics were recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge folds another Diagnostics value into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
