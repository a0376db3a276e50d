package race

import "errors"

var (
	// ErrInvalidConfiguration covers setup problems detected before any car starts
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInterrupted is returned when the race context is cancelled during a wait
	ErrInterrupted = errors.New("interrupted")

	// ErrRaceNotOver guards podium rendering before every car has reported
	ErrRaceNotOver = errors.New("race is not over")

	// ErrDuplicateFinish rejects a second report from one car or a report past the field size
	ErrDuplicateFinish = errors.New("duplicate finish")
)
