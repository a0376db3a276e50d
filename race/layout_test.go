package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ascii-race/constants"
	"github.com/lixenwraith/ascii-race/terminal"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name      string
		height    int
		requested int
		gap       int
		lanes     int
		wantErr   bool
	}{
		{name: "too short", height: 25, requested: 4, gap: 9, wantErr: true},
		{name: "exactly two", height: 26, requested: 4, gap: 9, lanes: 2},
		{name: "three fit", height: 41, requested: 4, gap: 9, lanes: 3},
		{name: "capped by request", height: 200, requested: 4, gap: 9, lanes: 4},
		{name: "one requested", height: 200, requested: 1, gap: 9, wantErr: true},
		{name: "tight gap", height: 24, requested: 4, gap: 1, lanes: 2},
		{name: "negative gap", height: 200, requested: 4, gap: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := NewLayout(tt.height, tt.requested, tt.gap)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lanes, layout.Lanes)
		})
	}
}

func TestLayoutRows(t *testing.T) {
	layout, err := NewLayout(100, 4, constants.DefaultLaneGap)
	require.NoError(t, err)

	assert.Equal(t, 4, layout.Row(0))
	assert.Equal(t, 19, layout.Row(1))
	assert.Equal(t, 49, layout.Row(3))
}

func TestPalette(t *testing.T) {
	colors := Palette(7)
	require.Len(t, colors, 7)

	for _, c := range colors {
		assert.False(t, c.IsDefault())
	}
	// Lanes past the palette size repeat from the start
	assert.Equal(t, colors[0], colors[5])
	assert.Equal(t, colors[1], colors[6])

	distinct := map[terminal.RGB]bool{}
	for _, c := range colors[:5] {
		distinct[c.RGB] = true
	}
	assert.Len(t, distinct, 5)
}
