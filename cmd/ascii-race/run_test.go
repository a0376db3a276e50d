package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/ascii-race/audio"
	"github.com/lixenwraith/ascii-race/config"
	"github.com/lixenwraith/ascii-race/race"
)

const restoreTail = "\x1b[0m\x1b[30;1H\x1b[?25h"

func newTestSession(out *bytes.Buffer, width, height int, mutate func(*config.Config)) *session {
	cfg := config.Default()
	cfg.Cars = 2
	cfg.Laps = 1
	cfg.Color = "256"
	if mutate != nil {
		mutate(&cfg)
	}
	return &session{
		cfg:     cfg,
		out:     out,
		width:   width,
		height:  height,
		logger:  zap.NewNop(),
		sound:   audio.NewSoundManager(),
		carOpts: []race.CarOption{race.WithJitter(race.NoJitter)},
		poll:    5 * time.Millisecond,
	}
}

func TestRunCompletesWithPodium(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, 80, 30, nil)

	require.NoError(t, s.run(context.Background()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "\x1b[2J\x1b[H\x1b[?25l"), "screen cleared and cursor hidden first")
	assert.Contains(t, text, "Car 0 : ")
	assert.Contains(t, text, "Car 1 : ")
	assert.Contains(t, text, "┌────────────────────┐")
	assert.Contains(t, text, "██  ██")
	assert.True(t, strings.HasSuffix(text, restoreTail), "cursor restored last")
}

func TestRunLogsResults(t *testing.T) {
	var out bytes.Buffer
	core, logs := observer.New(zap.InfoLevel)
	s := newTestSession(&out, 80, 30, nil)
	s.logger = zap.New(core)

	require.NoError(t, s.run(context.Background()))

	assert.Equal(t, 1, logs.FilterMessage("race started").Len())
	results := logs.FilterMessage("result").All()
	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].ContextMap()["place"])
	assert.Equal(t, int64(2), results[1].ContextMap()["place"])
}

func TestRunInterrupted(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(&out, 80, 30, func(c *config.Config) { c.Laps = 50 })
	s.carOpts = nil

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.run(ctx)
	require.ErrorIs(t, err, race.ErrInterrupted)
	assert.Equal(t, exitInterrupted, exitCode(err))

	text := out.String()
	assert.NotContains(t, text, "┌")
	assert.True(t, strings.HasSuffix(text, restoreTail), "cursor restored on interrupt")
}

func TestRunTrimsFieldToHeight(t *testing.T) {
	var out bytes.Buffer
	core, logs := observer.New(zap.InfoLevel)
	s := newTestSession(&out, 80, 30, func(c *config.Config) { c.Cars = 6 })
	s.logger = zap.New(core)

	require.NoError(t, s.run(context.Background()))

	entries := logs.FilterMessage("field trimmed to fit terminal").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["lanes"])
	assert.Len(t, logs.FilterMessage("result").All(), 2)
}

func TestRunRejectsConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "too short for two lanes", width: 80, height: 20},
		{name: "too narrow for the sprite", width: 30, height: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := newTestSession(&out, tt.width, tt.height, nil)

			err := s.run(context.Background())
			require.ErrorIs(t, err, race.ErrInvalidConfiguration)
			assert.Equal(t, exitInvalidConfig, exitCode(err))
			assert.Zero(t, out.Len(), "nothing drawn before the race can start")
		})
	}
}
