package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ascii-race/config"
	"github.com/lixenwraith/ascii-race/race"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitInterrupted, exitCode(race.ErrInterrupted))
	assert.Equal(t, exitInvalidConfig, exitCode(race.ErrInvalidConfiguration))
	assert.Equal(t, exitInterrupted, exitCode(errors.New("boom")))
}

func executeRoot(t *testing.T, args ...string) (*viper.Viper, error) {
	t.Helper()
	// Keep a stray .ascii-race.yml in the working tree out of the test
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	cmd := newRootCmd(v)
	cmd.SetArgs(args)
	return v, cmd.Execute()
}

func TestRootRejectsFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "one car", args: []string{"--cars", "1"}},
		{name: "eleven cars", args: []string{"--cars", "11"}},
		{name: "zero laps", args: []string{"--laps", "0"}},
		{name: "negative gap", args: []string{"--lane-gap", "-3"}},
		{name: "unknown flag", args: []string{"--turbo"}},
		{name: "malformed value", args: []string{"--cars", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, tt.args...)
			assert.ErrorIs(t, err, race.ErrInvalidConfiguration)
		})
	}
}

func TestRootReadsEnvironment(t *testing.T) {
	t.Setenv("RACE_LANE_GAP", "-1")

	v, err := executeRoot(t)
	require.ErrorIs(t, err, race.ErrInvalidConfiguration)
	assert.Equal(t, -1, v.GetInt(config.KeyLaneGap))
}

func TestRootReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yml")
	require.NoError(t, os.WriteFile(path, []byte("cars: 1\nlaps: 7\n"), 0o644))

	v, err := executeRoot(t, "--config", path)
	require.ErrorIs(t, err, race.ErrInvalidConfiguration)
	assert.Equal(t, 1, v.GetInt(config.KeyCars))
	assert.Equal(t, 7, v.GetInt(config.KeyLaps))
}

func TestRootFlagOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yml")
	require.NoError(t, os.WriteFile(path, []byte("cars: 5\nlaps: 0\n"), 0o644))

	v, err := executeRoot(t, "--config", path, "--cars", "12")
	require.ErrorIs(t, err, race.ErrInvalidConfiguration)
	assert.Equal(t, 12, v.GetInt(config.KeyCars))
}

func TestRootMissingConfigFile(t *testing.T) {
	_, err := executeRoot(t, "--config", filepath.Join(t.TempDir(), "absent.yml"))
	assert.ErrorIs(t, err, race.ErrInvalidConfiguration)
}
