// @focus: #race { coordinator } #render { podium }
package race

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/lixenwraith/ascii-race/constants"
	"github.com/lixenwraith/ascii-race/status"
	"github.com/lixenwraith/ascii-race/terminal"
)

// Box drawing and overlay glyphs
const (
	topLeftCorner     = "┌"
	topRightCorner    = "┐"
	bottomLeftCorner  = "└"
	bottomRightCorner = "┘"
	horizontalBar     = "─"
	verticalBar       = "│"
	fullBlock         = "█"
)

// Surface is the drawing target shared by the coordinator and every car
type Surface interface {
	WriteAt(x, y int, text string, fg terminal.Color)
	Blank(x, y, n int)
}

// Result is one finisher's entry on the podium
type Result struct {
	CarID   int
	Elapsed time.Duration
}

// Game coordinates a race: it owns the finish-line and podium overlays and
// collects finish times in the order cars report them
type Game struct {
	mu       sync.Mutex
	results  []Result
	finished map[int]struct{}
	done     chan struct{}

	expected int
	laps     int
	screen   Screen
	surface  Surface

	logger   *zap.Logger
	stats    *status.Registry
	onFinish func(Result)
	podiumFg terminal.Color
}

// GameOption configures optional Game collaborators
type GameOption func(*Game)

// WithLogger attaches a logger; cars derive their own from it
func WithLogger(logger *zap.Logger) GameOption {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithStats shares a counter registry with the caller; cars publish into it
func WithStats(r *status.Registry) GameOption {
	return func(g *Game) {
		if r != nil {
			g.stats = r
		}
	}
}

// WithFinishHook registers fn to run after each recorded finish, outside the results lock
func WithFinishHook(fn func(Result)) GameOption {
	return func(g *Game) {
		g.onFinish = fn
	}
}

// WithWinnerColor sets the highlight used for the first podium entry
func WithWinnerColor(c terminal.Color) GameOption {
	return func(g *Game) {
		g.podiumFg = c
	}
}

// NewGame creates the coordinator for a field of expected cars over laps laps
func NewGame(expected, laps int, screen Screen, surface Surface, opts ...GameOption) (*Game, error) {
	if expected < constants.MinCars {
		return nil, fmt.Errorf("%w: need at least %d cars, got %d",
			ErrInvalidConfiguration, constants.MinCars, expected)
	}
	if laps < 1 {
		return nil, fmt.Errorf("%w: need at least 1 lap, got %d", ErrInvalidConfiguration, laps)
	}

	g := &Game{
		results:  make([]Result, 0, expected),
		finished: make(map[int]struct{}, expected),
		done:     make(chan struct{}),
		expected: expected,
		laps:     laps,
		screen:   screen,
		surface:  surface,
		logger:   zap.NewNop(),
		stats:    status.NewRegistry(),
		podiumFg: terminal.ColorFromTcell(tcell.ColorGold),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Expected returns the field size
func (g *Game) Expected() int {
	return g.expected
}

// Laps returns the number of laps each car drives
func (g *Game) Laps() int {
	return g.laps
}

// Stats returns the race counter registry
func (g *Game) Stats() *status.Registry {
	return g.stats
}

// Screen returns the dimensions the race is drawn on
func (g *Game) Screen() Screen {
	return g.screen
}

// RenderFinishLine draws the checkerboard column near the right edge over the full height
// Idempotent: every car entering its final lap may call it
func (g *Game) RenderFinishLine() {
	col := g.screen.Width - constants.FinishLineInset
	even := strings.Repeat(fullBlock, 2) + "  " + strings.Repeat(fullBlock, 2)
	odd := "  " + strings.Repeat(fullBlock, 2) + "  "

	for row := 0; row < g.screen.Height; row++ {
		if row%2 == 0 {
			g.surface.WriteAt(col, row, even, terminal.ColorDefault)
		} else {
			g.surface.WriteAt(col, row, odd, terminal.ColorDefault)
		}
	}
}

// RecordFinish appends a car's time; safe for concurrent use
// The field closes, and Done fires, exactly when the last expected car reports
func (g *Game) RecordFinish(carID int, elapsed time.Duration) error {
	g.mu.Lock()
	if _, dup := g.finished[carID]; dup || len(g.results) >= g.expected {
		g.mu.Unlock()
		return fmt.Errorf("%w: car %d", ErrDuplicateFinish, carID)
	}

	res := Result{CarID: carID, Elapsed: elapsed}
	g.results = append(g.results, res)
	g.finished[carID] = struct{}{}
	place := len(g.results)
	if place == g.expected {
		close(g.done)
	}
	g.mu.Unlock()

	g.stats.Counters.Get("race.finished").Add(1)
	g.logger.Debug("car finished",
		zap.Int("car", carID),
		zap.Int("place", place),
		zap.Duration("elapsed", elapsed))

	if g.onFinish != nil {
		g.onFinish(res)
	}
	return nil
}

// IsRaceOver reports whether every expected car has finished
func (g *Game) IsRaceOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.results) == g.expected
}

// Done is closed when the last car reports
func (g *Game) Done() <-chan struct{} {
	return g.done
}

// Results returns a copy of the finish order so far
func (g *Game) Results() []Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Result, len(g.results))
	copy(out, g.results)
	return out
}

// RenderPodium draws the ranked results box near the bottom of the screen
// Returns ErrRaceNotOver, without drawing, if any car is still racing
func (g *Game) RenderPodium() error {
	if !g.IsRaceOver() {
		return ErrRaceNotOver
	}
	results := g.Results()

	width := constants.PodiumInnerWidth
	left := g.screen.Width/2 - width/2 - 1
	bottom := g.screen.Height - 1 - constants.PodiumBottomMargin
	top := bottom - (len(results) + 3)

	rule := strings.Repeat(horizontalBar, width)
	spacer := verticalBar + strings.Repeat(" ", width) + verticalBar

	g.surface.WriteAt(left, top, topLeftCorner+rule+topRightCorner, terminal.ColorDefault)
	g.surface.WriteAt(left, top+1, spacer, terminal.ColorDefault)

	rows := lo.Map(results, func(r Result, _ int) string {
		return verticalBar + center(podiumEntry(r), width) + verticalBar
	})
	for i, row := range rows {
		fg := terminal.ColorDefault
		if i == 0 {
			fg = g.podiumFg
		}
		g.surface.WriteAt(left, top+2+i, row, fg)
	}

	g.surface.WriteAt(left, bottom-1, spacer, terminal.ColorDefault)
	g.surface.WriteAt(left, bottom, bottomLeftCorner+rule+bottomRightCorner, terminal.ColorDefault)

	g.logger.Info("podium rendered", zap.Int("cars", len(results)))
	return nil
}

// podiumEntry formats a result with the elapsed seconds rounded to milliseconds
func podiumEntry(r Result) string {
	secs := math.Round(r.Elapsed.Seconds()*1000) / 1000
	return "Car " + strconv.Itoa(r.CarID) + " : " + strconv.FormatFloat(secs, 'f', -1, 64)
}

// center pads s to width, extra padding goes to the right
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
