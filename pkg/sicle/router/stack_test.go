package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
)

func TestStackFloor(t *testing.T) {
	s := NewStack("Default")

	for range 5 {
		assert.False(t, s.Pop())
	}
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, binding.PageName("Default"), s.Peek())
	assert.Equal(t, binding.PageName("Default"), s.Base())
}

func TestStackPushIgnoresTopDuplicate(t *testing.T) {
	s := NewStack("Default")

	assert.True(t, s.Push("Menu"))
	assert.False(t, s.Push("Menu"))
	assert.True(t, s.Push("Default"), "only the top entry is compared")

	assert.Equal(t, []binding.PageName{"Default", "Menu", "Default"}, s.Names())
}

func TestStackPopAndReset(t *testing.T) {
	s := NewStack("Default")
	s.Push("A")
	s.Push("B")

	assert.True(t, s.Pop())
	assert.Equal(t, binding.PageName("A"), s.Peek())

	s.Push("C")
	s.Reset()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, binding.PageName("Default"), s.Peek())
}

func TestStackNamesIsACopy(t *testing.T) {
	s := NewStack("Default")
	names := s.Names()
	names[0] = "Other"
	assert.Equal(t, binding.PageName("Default"), s.Base())
}
