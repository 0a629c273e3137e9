package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingBidirectional(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, Set(s, "width", 600))

	obj := NewPropertyObject()
	b := s.Bind("width", obj, "width").Build()
	defer b.Unbind()

	// Build seeds the property from the store.
	v, ok := obj.Property("width")
	require.True(t, ok)
	assert.Equal(t, 600, v)

	// Store to object.
	require.NoError(t, Set(s, "width", 800))
	v, _ = obj.Property("width")
	assert.Equal(t, 800, v)

	// Object to store.
	require.NoError(t, obj.SetProperty("width", 1024))
	assert.Equal(t, 1024, Get[int](s, "width"))
}

func TestBindingGetOnly(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, Set(s, "theme", "light"))

	obj := NewPropertyObject()
	b := s.Bind("theme", obj, "theme").GetOnly().Build()
	defer b.Unbind()

	require.NoError(t, Set(s, "theme", "dark"))
	v, _ := obj.Property("theme")
	assert.Equal(t, "dark", v)

	// Property changes do not flow back.
	require.NoError(t, obj.SetProperty("theme", "solarized"))
	assert.Equal(t, "dark", Get[string](s, "theme"))
}

func TestBindingSetOnly(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, Set(s, "theme", "light"))

	obj := NewPropertyObject()
	b := s.Bind("theme", obj, "theme").SetOnly().Build()
	defer b.Unbind()

	// No initial seed and no store-to-object flow.
	_, ok := obj.Property("theme")
	assert.False(t, ok)

	require.NoError(t, obj.SetProperty("theme", "dark"))
	assert.Equal(t, "dark", Get[string](s, "theme"))
}

func TestBindingTransforms(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, Set(s, "volume", 0.5))

	obj := NewPropertyObject()
	b := s.Bind("volume", obj, "percent").
		TransformTo(func(v any) any { return int(v.(float64) * 100) }).
		TransformFrom(func(v any) any { return float64(v.(int)) / 100 }).
		Build()
	defer b.Unbind()

	v, _ := obj.Property("percent")
	assert.Equal(t, 50, v)

	require.NoError(t, obj.SetProperty("percent", 75))
	assert.Equal(t, 0.75, Get[float64](s, "volume"))
}

func TestBindingUnbind(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, Set(s, "width", 1))

	obj := NewPropertyObject()
	b := s.Bind("width", obj, "width").Build()
	b.Unbind()
	b.Unbind() // safe to repeat

	require.NoError(t, Set(s, "width", 2))
	v, _ := obj.Property("width")
	assert.Equal(t, 1, v)

	require.NoError(t, obj.SetProperty("width", 3))
	assert.Equal(t, 2, Get[int](s, "width"))
}

func TestBindingBuildIdempotent(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, Set(s, "width", 1))

	obj := NewPropertyObject()
	b := s.Bind("width", obj, "width").Build()
	defer b.Unbind()

	assert.Same(t, b, b.Build())
}
