package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ascii-race/audio"
	"github.com/lixenwraith/ascii-race/config"
	"github.com/lixenwraith/ascii-race/constants"
	"github.com/lixenwraith/ascii-race/core"
	"github.com/lixenwraith/ascii-race/race"
	"github.com/lixenwraith/ascii-race/status"
	"github.com/lixenwraith/ascii-race/terminal"
)

// session is one race on one output
type session struct {
	cfg    config.Config
	out    io.Writer
	width  int
	height int
	logger *zap.Logger
	sound  *audio.SoundManager

	// Applied to every car after the defaults
	carOpts []race.CarOption
	// Poll period for race completion, constants.PollInterval when zero
	poll time.Duration
}

// run lays out the lanes, races every car to the finish and draws the podium
// Returns ErrInterrupted without a podium when ctx is cancelled first
func (s *session) run(ctx context.Context) error {
	layout, err := race.NewLayout(s.height, s.cfg.Cars, s.cfg.LaneGap)
	if err != nil {
		return err
	}
	if layout.Lanes < s.cfg.Cars {
		s.logger.Info("field trimmed to fit terminal",
			zap.Int("requested", s.cfg.Cars), zap.Int("lanes", layout.Lanes), zap.Int("height", s.height))
	}

	colorMode := terminal.ParseColorMode(s.cfg.Color)
	canvas := terminal.NewCanvas(s.out, s.width, s.height, colorMode)
	screen := race.Screen{Width: s.width, Height: s.height}

	stats := status.NewRegistry()
	var places atomic.Int32
	gameOpts := []race.GameOption{
		race.WithLogger(s.logger),
		race.WithStats(stats),
		race.WithFinishHook(func(r race.Result) {
			s.sound.PlayFinish(int(places.Add(1)))
		}),
	}
	if s.cfg.NoColor {
		gameOpts = append(gameOpts, race.WithWinnerColor(terminal.ColorDefault))
	}
	game, err := race.NewGame(layout.Lanes, s.cfg.Laps, screen, canvas, gameOpts...)
	if err != nil {
		return err
	}

	colors := race.Palette(layout.Lanes)
	cars := make([]*race.Car, layout.Lanes)
	for i := range cars {
		var opts []race.CarOption
		if !s.cfg.NoColor {
			opts = append(opts, race.WithColor(colors[i]))
		}
		opts = append(opts, s.carOpts...)
		if cars[i], err = race.NewCar(i, layout.Row(i), game, opts...); err != nil {
			return err
		}
	}

	canvas.Clear()
	canvas.HideCursor()
	core.RegisterCrashTerminal(canvas)
	defer func() {
		canvas.Restore()
		core.RegisterCrashTerminal(nil)
	}()

	s.logger.Info("race started",
		zap.Int("cars", layout.Lanes), zap.Int("laps", s.cfg.Laps),
		zap.Int("width", s.width), zap.Int("height", s.height), zap.Stringer("color", colorMode))

	raceCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	for _, car := range cars {
		wg.Add(1)
		core.Go(func() {
			defer wg.Done()
			if err := car.Run(raceCtx); err != nil && !errors.Is(err, race.ErrInterrupted) {
				s.logger.Error("car stopped", zap.Int("car", car.ID()), zap.Error(err))
			}
		})
	}

	s.sound.PlayEngine()
	defer s.sound.StopEngine()

	if err := s.waitForFinish(ctx, game); err != nil {
		s.logger.Info("race interrupted", stats.Fields()...)
		return err
	}
	s.sound.StopEngine()

	s.logger.Debug("race stats", stats.Fields()...)
	for place, r := range game.Results() {
		s.logger.Info("result", zap.Int("place", place+1), zap.Int("car", r.CarID), zap.Duration("elapsed", r.Elapsed))
	}
	return game.RenderPodium()
}

// waitForFinish polls the game until every car has reported
func (s *session) waitForFinish(ctx context.Context, game *race.Game) error {
	interval := s.poll
	if interval <= 0 {
		interval = constants.PollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !game.IsRaceOver() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", race.ErrInterrupted, ctx.Err())
		case <-ticker.C:
		}
	}
	return nil
}
