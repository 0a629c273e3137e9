package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settings-generator/internal/overrides"
	"settings-generator/internal/resolve"
	"settings-generator/internal/schema"
)

const pipelineSchema = `
<schemalist>
  <schema id="io.github.example">
    <key name="is-maximized" type="b">
      <default>false</default>
    </key>
    <key name="invalid-words" type="as">
      <default>[]</default>
      <summary>Words ignored by the checker</summary>
    </key>
    <key name="window-width" type="i">
      <default>600</default>
    </key>
  </schema>
</schemalist>
`

const pipelineOverrides = `
signatures:
  "as": { skip: true }
keys:
  window-width: { arg: "int", ret: "int" }
`

// End-to-end: schema document plus override file through resolution
// and synthesis.
func TestPipeline(t *testing.T) {
	sch, err := schema.FromXML(strings.NewReader(pipelineSchema))
	require.NoError(t, err)

	of, err := overrides.Parse([]byte(pipelineOverrides))
	require.NoError(t, err)

	reg := resolve.NewRegistry(sch.Enums)
	require.NoError(t, of.Apply(reg))

	out, err := New(Options{Package: "appconf", ID: "io.github.example"}).Generate(sch, reg)
	require.NoError(t, err)

	src, err := Render(out.File, "settings_gen.go")
	require.NoError(t, err)
	text := string(src)

	// The signature-skipped key yields no bundle at all, regardless of
	// its summary and default.
	assert.NotContains(t, text, "InvalidWords")
	require.Len(t, out.Diagnostics.Infos, 1)
	assert.Equal(t, "invalid-words", out.Diagnostics.Infos[0].Key)

	// The key-name override's types replace the built-in int32.
	assert.Contains(t, text, "func (s *Settings) WindowWidth() int {")

	// The untouched key resolves through the built-in table.
	assert.Contains(t, text, "func (s *Settings) IsMaximized() bool {")

	// Fixed identifier: niladic constructor.
	assert.Contains(t, text, "func NewSettings() *Settings {")
}
