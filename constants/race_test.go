package constants

import (
	"testing"
	"time"
)

// TestLaneFootprintFitsTwoCars verifies the default layout admits a two car race on a 26 row terminal
func TestLaneFootprintFitsTwoCars(t *testing.T) {
	const laneHeight = 6
	rows := HeaderRows + MinCars*laneHeight + (MinCars-1)*DefaultLaneGap + FooterRows
	if rows != 26 {
		t.Errorf("Expected two lanes to need 26 rows, got %d", rows)
	}
}

func TestTimingConstants(t *testing.T) {
	if MaxTickJitter != 30*time.Millisecond {
		t.Errorf("Expected 30ms max jitter, got %v", MaxTickJitter)
	}
	if PollInterval <= MaxTickJitter {
		t.Errorf("Poll interval %v should exceed tick jitter %v", PollInterval, MaxTickJitter)
	}
}
