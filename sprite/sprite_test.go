package sprite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsOutOfRange(t *testing.T) {
	for _, id := range []int{-1, 10, 42} {
		_, err := New(id)
		assert.ErrorIs(t, err, ErrInvalidID, "id %d", id)
	}
}

func TestNewAcceptsDigits(t *testing.T) {
	for id := 0; id <= 9; id++ {
		s, err := New(id)
		require.NoError(t, err)
		assert.Equal(t, id, s.ID())
		assert.Equal(t, byte('0'+id), s.Line(idLine)[idColumn])
	}
}

func TestDimensions(t *testing.T) {
	s, err := New(7)
	require.NoError(t, err)

	assert.Equal(t, Width, s.Width())
	assert.Equal(t, Height, s.Height())
	require.Len(t, s.Lines(), Height)
	for i, line := range s.Lines() {
		assert.Len(t, line, Width, "line %d", i)
	}
}

func TestTemplateUntouched(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)
	b, err := New(5)
	require.NoError(t, err)

	assert.True(t, strings.Contains(a.Line(idLine), "<>  3  |"))
	assert.True(t, strings.Contains(b.Line(idLine), "<>  5  |"))
	assert.Contains(t, template[idLine], "?")
}

func TestLinesReturnsCopy(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)

	lines := s.Lines()
	lines[0] = "mutated"

	assert.NotEqual(t, "mutated", s.Line(0))
}
