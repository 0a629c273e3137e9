package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionActivate(t *testing.T) {
	s := NewStore("test")
	a := s.CreateAction("is-maximized")

	assert.Equal(t, "is-maximized", a.Name())
	assert.Nil(t, a.State())

	require.NoError(t, a.Activate(true))
	assert.Equal(t, true, a.State())
	assert.True(t, Get[bool](s, "is-maximized"))
}

func TestActionActivateNotWritable(t *testing.T) {
	s := NewStore("test")
	s.MarkReadOnly("locked")

	a := s.CreateAction("locked")
	assert.ErrorIs(t, a.Activate(1), ErrNotWritable)
}

func TestActionFiresSubscribers(t *testing.T) {
	s := NewStore("test")

	var fired int
	s.Connect("theme", func() { fired++ })

	require.NoError(t, s.CreateAction("theme").Activate("dark"))
	assert.Equal(t, 1, fired)
}
