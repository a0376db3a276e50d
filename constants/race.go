package constants

import "time"

// Race Defaults
const (
	// DefaultCars is the lane count requested when none is configured
	DefaultCars = 4

	// DefaultLaps is the number of full traversals each car drives
	DefaultLaps = 3

	// MinCars is the smallest field that makes a race
	MinCars = 2

	// MaxCars is bounded by the single digit painted on each car
	MaxCars = 10
)

// Lane Layout Constants (terminal rows)
const (
	// HeaderRows are kept clear above the first lane
	HeaderRows = 4

	// FooterRows are kept clear below the last lane for the parked cursor
	FooterRows = 1

	// DefaultLaneGap is the number of empty rows between two lanes
	DefaultLaneGap = 9
)

// Overlay Geometry
const (
	// FinishLineInset is the distance of the checkerboard's left edge from the right screen edge
	FinishLineInset = 6

	// PodiumInnerWidth is the usable interior width of the podium box
	PodiumInnerWidth = 20

	// PodiumBottomMargin is the number of rows left below the podium's bottom border
	PodiumBottomMargin = 1
)

// Timing Constants
const (
	// MaxTickJitterMs bounds the random pause between two ticks of one car
	MaxTickJitterMs = 30

	// MaxTickJitter is the duration form of MaxTickJitterMs
	MaxTickJitter = MaxTickJitterMs * time.Millisecond

	// PollInterval is how often the orchestrator checks for the end of the race
	PollInterval = 500 * time.Millisecond
)
