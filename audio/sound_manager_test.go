package audio

import (
	"math"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEngine()
	sm.StopEngine()
	sm.PlayFinish(1)
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	sm.PlayEngine()
	sm.PlayFinish(2)
	sm.StopEngine()
	sm.Cleanup()
}

func TestFinishPitch(t *testing.T) {
	if got := FinishPitch(1); got != 880 {
		t.Errorf("Expected winner pitch 880Hz, got %v", got)
	}
	if got := FinishPitch(0); got != 880 {
		t.Errorf("Expected clamped pitch 880Hz, got %v", got)
	}
	if got := FinishPitch(13); math.Abs(got-440) > 1e-9 {
		t.Errorf("Expected 13th place an octave down at 440Hz, got %v", got)
	}
	if FinishPitch(3) >= FinishPitch(2) {
		t.Error("Expected later places to sound lower")
	}
}

func TestEngineGeneratorBounded(t *testing.T) {
	g := NewEngineGenerator(sampleRate)
	buf := make([][2]float64, 4096)

	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Expected full stream, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if math.Abs(s[0]) > 0.11 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or unbalanced: %v", i, s)
		}
	}
	if g.Err() != nil {
		t.Errorf("Expected nil error, got %v", g.Err())
	}
}
