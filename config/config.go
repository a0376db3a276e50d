// Package config holds the run settings resolved from flags, environment and config file.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/ascii-race/constants"
	racelog "github.com/lixenwraith/ascii-race/log"
	"github.com/lixenwraith/ascii-race/race"
)

// EnvPrefix namespaces environment overrides, e.g. RACE_CARS
const EnvPrefix = "RACE"

// Flag and config keys
const (
	KeyCars    = "cars"
	KeyLaps    = "laps"
	KeyLaneGap = "lane-gap"
	KeyColor   = "color"
	KeyNoColor = "no-color"
	KeySound   = "sound"
	KeyDebug   = "debug"
	KeyLogDir  = "log-dir"
)

// Config is the resolved run configuration
type Config struct {
	Cars    int
	Laps    int
	LaneGap int
	Color   string
	NoColor bool
	Sound   bool
	Debug   bool
	LogDir  string
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Cars:    constants.DefaultCars,
		Laps:    constants.DefaultLaps,
		LaneGap: constants.DefaultLaneGap,
		Color:   "auto",
		LogDir:  racelog.DefaultDir,
	}
}

// AddFlags registers every setting on fs with its default
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(KeyCars, d.Cars, "Number of cars to race (2-10, fewer if the terminal is short)")
	fs.Int(KeyLaps, d.Laps, "Number of laps")
	fs.Int(KeyLaneGap, d.LaneGap, "Empty rows between lanes")
	fs.String(KeyColor, d.Color, "Color mode: auto, truecolor, 256")
	fs.Bool(KeyNoColor, d.NoColor, "Draw cars in the terminal's default color")
	fs.Bool(KeySound, d.Sound, "Play engine and finish sounds")
	fs.Bool(KeyDebug, d.Debug, "Write a debug log")
	fs.String(KeyLogDir, d.LogDir, "Directory for the debug log")
}

// FromViper reads the settings bound in v
func FromViper(v *viper.Viper) Config {
	return Config{
		Cars:    v.GetInt(KeyCars),
		Laps:    v.GetInt(KeyLaps),
		LaneGap: v.GetInt(KeyLaneGap),
		Color:   v.GetString(KeyColor),
		NoColor: v.GetBool(KeyNoColor),
		Sound:   v.GetBool(KeySound),
		Debug:   v.GetBool(KeyDebug),
		LogDir:  v.GetString(KeyLogDir),
	}
}

// Validate rejects settings no race can start with
func (c Config) Validate() error {
	if c.Cars < constants.MinCars {
		return fmt.Errorf("%w: need at least %d cars, got %d", race.ErrInvalidConfiguration, constants.MinCars, c.Cars)
	}
	if c.Cars > constants.MaxCars {
		return fmt.Errorf("%w: at most %d cars, got %d", race.ErrInvalidConfiguration, constants.MaxCars, c.Cars)
	}
	if c.Laps < 1 {
		return fmt.Errorf("%w: need at least 1 lap, got %d", race.ErrInvalidConfiguration, c.Laps)
	}
	if c.LaneGap < 0 {
		return fmt.Errorf("%w: lane gap must not be negative, got %d", race.ErrInvalidConfiguration, c.LaneGap)
	}
	return nil
}
