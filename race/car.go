package race

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ascii-race/constants"
	"github.com/lixenwraith/ascii-race/sprite"
	"github.com/lixenwraith/ascii-race/status"
	"github.com/lixenwraith/ascii-race/terminal"
)

// Car animates one sprite along its lane and reports its time to the Game
// All mutable state is private to the goroutine running Run
type Car struct {
	id     int
	sprite sprite.Sprite
	lane   *Lane
	color  terminal.Color

	game    *Game
	surface Surface
	screen  Screen
	clock   Clock
	jitter  Jitter
	logger  *zap.Logger

	tickCount *atomic.Int64
	lapCount  *atomic.Int64
	state     *status.AtomicString

	start         time.Time
	started       bool
	lapsRemaining int
	ticks         int
}

// CarOption configures optional Car collaborators
type CarOption func(*Car)

// WithColor paints the sprite in c
func WithColor(c terminal.Color) CarOption {
	return func(car *Car) {
		car.color = c
	}
}

// WithClock replaces the wall clock used for lap timing
func WithClock(clock Clock) CarOption {
	return func(car *Car) {
		car.clock = clock
	}
}

// WithJitter replaces the pause source between ticks
func WithJitter(j Jitter) CarOption {
	return func(car *Car) {
		car.jitter = j
	}
}

// NewCar creates the car with identifier id whose band starts at row
// Draws on the game's surface and screen
func NewCar(id, row int, game *Game, opts ...CarOption) (*Car, error) {
	spr, err := sprite.New(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	lane, err := NewLane(row, game.screen.Width, spr.Width())
	if err != nil {
		return nil, err
	}

	c := &Car{
		id:            id,
		sprite:        spr,
		lane:          lane,
		game:          game,
		surface:       game.surface,
		screen:        game.screen,
		clock:         NewTimeProvider(),
		jitter:        RandomJitter(constants.MaxTickJitter),
		logger:        game.logger.With(zap.Int("car", id)),
		lapsRemaining: game.laps,
		tickCount:     game.stats.Counters.Get(status.CarKey(id, "ticks")),
		lapCount:      game.stats.Counters.Get(status.CarKey(id, "laps")),
		state:         game.stats.Labels.Get(status.CarKey(id, "state")),
	}
	c.state.Store("grid")
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ID returns the car's identifier digit
func (c *Car) ID() int {
	return c.id
}

// LapsRemaining returns the laps not yet driven; read it only after Run returns
func (c *Car) LapsRemaining() int {
	return c.lapsRemaining
}

// Run drives every lap then reports the elapsed time to the game exactly once
// Returns ErrInterrupted if ctx is cancelled while waiting between ticks
func (c *Car) Run(ctx context.Context) error {
	laps := c.game.Laps()
	passTicks := c.screen.Width + 2
	c.state.Store("racing")

	for lap := 0; lap < laps; lap++ {
		final := lap == laps-1
		for i := 0; i < passTicks; i++ {
			if final {
				if i == 0 {
					c.game.RenderFinishLine()
				} else if c.lane.AtFinish() {
					break
				}
			}

			c.tick()
			if err := c.forward(ctx); err != nil {
				c.logger.Debug("car interrupted", zap.Int("lap", lap), zap.Int("ticks", c.ticks))
				c.state.Store("interrupted")
				return err
			}
		}
		c.lapsRemaining--
		c.lapCount.Add(1)
		c.logger.Debug("lap complete", zap.Int("lap", lap+1), zap.Int("ticks", c.ticks))
	}

	c.state.Store("finished")
	return c.game.RecordFinish(c.id, c.clock.Now().Sub(c.start))
}

// tick erases the previous footprint and redraws the sprite at its new position
func (c *Car) tick() {
	if !c.started {
		c.start = c.clock.Now()
		c.started = true
	}

	erase, draw := c.lane.Step()
	for i := 0; i < c.sprite.Height(); i++ {
		row := c.lane.Row + i
		for _, seg := range erase {
			c.surface.Blank(seg.Col, row, seg.Len)
		}
	}
	for i := 0; i < c.sprite.Height(); i++ {
		row := c.lane.Row + i
		line := c.sprite.Line(i)
		for _, seg := range draw {
			c.surface.WriteAt(seg.Col, row, line[seg.Start:seg.Start+seg.Len], c.color)
		}
	}
	c.ticks++
	c.tickCount.Add(1)
}

// forward advances the lane and pauses for a jittered interval
func (c *Car) forward(ctx context.Context) error {
	c.lane.Advance()
	return sleep(ctx, c.jitter())
}
