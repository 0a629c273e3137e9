package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelStyle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"is-maximized", "IsMaximized"},
		{"window-width-64", "WindowWidth64"},
		{"theme", "Theme"},
		{"desktop-audio", "DesktopAudio"},
		{"snake_case_name", "SnakeCaseName"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelStyle(tt.in), "input %q", tt.in)
	}
}

func TestLowerCamelStyle(t *testing.T) {
	assert.Equal(t, "isMaximized", LowerCamelStyle("is-maximized"))
	assert.Equal(t, "", LowerCamelStyle(""))
}

func TestEnumTypeName(t *testing.T) {
	assert.Equal(t, "PreferredAudioSource",
		EnumTypeName("io.github.example.PreferredAudioSource"))
	assert.Equal(t, "Mode", EnumTypeName("Mode"))
}
