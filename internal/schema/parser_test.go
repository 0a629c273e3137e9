package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `
<schemalist>
  <enum id="io.github.example.PreferredAudioSource">
    <value nick="mic" value="0"/>
    <value nick="desktop-audio" value="1"/>
  </enum>
  <schema id="io.github.example" path="/io/github/example/">
    <key name="is-maximized" type="b">
      <default>false</default>
      <summary>Window maximized behaviour</summary>
    </key>
    <key name="window-width" type="i">
      <range min="0" max="30000"/>
      <default>600</default>
    </key>
    <key name="preferred-audio-source" enum="io.github.example.PreferredAudioSource">
      <default>"mic"</default>
    </key>
  </schema>
</schemalist>
`

func TestFromXML(t *testing.T) {
	sch, err := FromXML(strings.NewReader(testDocument))
	require.NoError(t, err)

	assert.Equal(t, "io.github.example", sch.ID)
	assert.Equal(t, "/io/github/example/", sch.Path)
	require.Len(t, sch.Keys, 3)

	maximized := sch.Keys[0]
	assert.Equal(t, "is-maximized", maximized.Name)
	assert.Equal(t, TypeSignature("b"), maximized.Signature)
	assert.Equal(t, "false", maximized.Default)
	assert.Equal(t, "Window maximized behaviour", maximized.Summary)
	assert.Nil(t, maximized.Range)

	width := sch.Keys[1]
	require.NotNil(t, width.Range)
	assert.Equal(t, "0", width.Range.Min)
	assert.Equal(t, "30000", width.Range.Max)

	source := sch.Keys[2]
	assert.Equal(t, EnumSignature("io.github.example.PreferredAudioSource"), source.Signature)
	assert.Equal(t, `"mic"`, source.Default)

	enum, ok := sch.Enum("io.github.example.PreferredAudioSource")
	require.True(t, ok)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, EnumValue{Nick: "mic", Value: 0}, enum.Values[0])
	assert.Equal(t, EnumValue{Nick: "desktop-audio", Value: 1}, enum.Values[1])
}

func TestFromXMLNoSchema(t *testing.T) {
	_, err := FromXML(strings.NewReader(`<schemalist></schemalist>`))
	assert.ErrorIs(t, err, ErrNoSchema)
}

func TestFromXMLKeySignature(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{
			name: "both type and enum",
			key:  `<key name="k" type="b" enum="io.example.E"><default>false</default></key>`,
		},
		{
			name: "neither type nor enum",
			key:  `<key name="k"><default>false</default></key>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<schemalist><schema id="io.example">` + tt.key + `</schema></schemalist>`

			_, err := FromXML(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrKeySignature)
		})
	}
}

func TestSignatureString(t *testing.T) {
	assert.Equal(t, `type "b"`, TypeSignature("b").String())
	assert.Equal(t, `enum "io.example.E"`, EnumSignature("io.example.E").String())
}
