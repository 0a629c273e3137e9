package overrides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settings-generator/internal/resolve"
	"settings-generator/internal/schema"
)

func TestParse(t *testing.T) {
	yaml := `
signatures:
  "as": { skip: true }
  "(ii)": { arg: "image.Point" }
  "enum:io.example.Mode": { arg: "int32", ret: "int32" }
keys:
  window-width: { arg: "int", ret: "int" }
  legacy-flag: { skip: true }
`
	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Empty(t, f.Validate())

	sigs := f.SignatureOverrides()
	require.Len(t, sigs, 3)

	asRule := sigs[schema.TypeSignature("as")]
	assert.Equal(t, resolve.OverrideSkip, asRule.Kind)

	pair := sigs[schema.TypeSignature("(ii)")]
	assert.Equal(t, resolve.OverrideDefine, pair.Kind)
	assert.Equal(t, "image.Point", pair.ArgType)
	assert.Equal(t, "image.Point", pair.RetType, "ret defaults to arg")

	mode := sigs[schema.EnumSignature("io.example.Mode")]
	assert.Equal(t, "int32", mode.ArgType)

	keys := f.KeyOverrides()
	require.Len(t, keys, 2)
	assert.Equal(t, "int", keys["window-width"].ArgType)
	assert.Equal(t, resolve.OverrideSkip, keys["legacy-flag"].Kind)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("signatures: ["))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "skip with types",
			yaml: `keys: { k: { skip: true, arg: "int" } }`,
			want: "skip rule must not define types",
		},
		{
			name: "define without arg",
			yaml: `signatures: { "b": { ret: "int" } }`,
			want: "define rule needs an arg type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			errs := f.Validate()
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}

func TestApply(t *testing.T) {
	yaml := `
signatures:
  "as": { skip: true }
keys:
  window-width: { arg: "int" }
`
	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	reg := resolve.NewRegistry(nil)
	require.NoError(t, f.Apply(reg))

	res, err := reg.Resolve(&schema.Key{Name: "tags", Signature: schema.TypeSignature("as")})
	require.NoError(t, err)
	assert.Equal(t, resolve.DecisionSkip, res.Decision)

	res, err = reg.Resolve(&schema.Key{Name: "window-width", Signature: schema.TypeSignature("i")})
	require.NoError(t, err)
	require.Equal(t, resolve.DecisionGenerate, res.Decision)
	assert.Equal(t, "int", res.Context.RetType)
}

func TestApplyInvalid(t *testing.T) {
	f, err := Parse([]byte(`keys: { k: { skip: true, arg: "int" } }`))
	require.NoError(t, err)

	assert.Error(t, f.Apply(resolve.NewRegistry(nil)))
}
