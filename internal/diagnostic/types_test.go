package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity:  Warning,
		Code:      "unknown_signature",
		Message:   "key omitted",
		Key:       "metadata",
		Signature: `type "a{sv}"`,
	}

	assert.Equal(t, `key metadata type "a{sv}": [unknown_signature] key omitted`, d.String())

	bare := Diagnostic{Message: "something happened"}
	assert.Equal(t, "something happened", bare.String())
}

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddInfo("skipped", "explicitly skipped", "theme", "")
	d.AddWarning("unknown_signature", "key omitted", "metadata", "")
	assert.False(t, d.HasErrors())

	d.AddError("bad_type", "invalid type", "count", "")
	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_type")
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("w1", "first", "", "")
	b.AddWarning("w2", "second", "", "")
	b.AddError("e1", "boom", "", "")

	a.Merge(b)
	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Errors, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
}
