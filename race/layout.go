package race

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"

	"github.com/lixenwraith/ascii-race/constants"
	"github.com/lixenwraith/ascii-race/sprite"
	"github.com/lixenwraith/ascii-race/terminal"
)

// lanePalette is the fixed set of car colors, shuffled per race
var lanePalette = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
}

// Layout is the vertical arrangement of lanes on the screen
type Layout struct {
	Lanes int
	Gap   int
}

// NewLayout fits as many of the requested lanes as the screen height allows
// Fails with ErrInvalidConfiguration when fewer than two lanes fit
func NewLayout(height, requested, gap int) (Layout, error) {
	if gap < 0 {
		return Layout{}, fmt.Errorf("%w: lane gap must not be negative, got %d", ErrInvalidConfiguration, gap)
	}

	lanes := 0
	for n := 1; n <= requested; n++ {
		if laneRows(n, gap) > height {
			break
		}
		lanes = n
	}

	if lanes < constants.MinCars {
		return Layout{}, fmt.Errorf("%w: need at least %d cars, %d fit in %d rows",
			ErrInvalidConfiguration, constants.MinCars, lanes, height)
	}
	return Layout{Lanes: lanes, Gap: gap}, nil
}

// Row returns the top row of lane i
func (l Layout) Row(i int) int {
	return constants.HeaderRows + i*(sprite.Height+l.Gap)
}

// laneRows is the total height needed for n lanes including margins
func laneRows(n, gap int) int {
	return constants.HeaderRows + n*sprite.Height + (n-1)*gap + constants.FooterRows
}

// Palette returns n lane colors drawn from a shuffled fixed palette, repeating when n exceeds it
func Palette(n int) []terminal.Color {
	shuffled := lo.Shuffle(append([]tcell.Color(nil), lanePalette...))
	return lo.Times(n, func(i int) terminal.Color {
		return terminal.ColorFromTcell(shuffled[i%len(shuffled)])
	})
}
