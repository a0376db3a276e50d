// @focus: #sys { audio }
// Package audio plays optional race sound cues; every call is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all race audio
type SoundManager struct {
	mu             sync.Mutex
	engineStreamer *beep.Ctrl
	mixer          *beep.Mixer
	initialized    bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.engineStreamer != nil {
		sm.engineStreamer.Paused = true
	}

	// beep has no speaker Close, clearing the mixer silences everything
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEngine starts the looping engine drone heard while cars are on track
func (sm *SoundManager) PlayEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.engineStreamer != nil && !sm.engineStreamer.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, NewEngineGenerator(sampleRate)), Paused: false}
	sm.engineStreamer = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopEngine silences the engine drone
func (sm *SoundManager) StopEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.engineStreamer != nil {
		speaker.Lock()
		sm.engineStreamer.Paused = true
		speaker.Unlock()
	}
}

// PlayFinish plays a two-note chime, pitched down for every later place
func (sm *SoundManager) PlayFinish(place int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	base := FinishPitch(place)
	first, err := generators.SineTone(sampleRate, base)
	if err != nil {
		return
	}
	second, err := generators.SineTone(sampleRate, base*1.5)
	if err != nil {
		return
	}

	note := sampleRate.N(time.Millisecond * 90)
	chime := beep.Seq(beep.Take(note, first), beep.Take(note*2, second))
	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
}

// FinishPitch is the chime base frequency for a 1-indexed finishing place
func FinishPitch(place int) float64 {
	if place < 1 {
		place = 1
	}
	// One semitone lower per place
	return 880 * math.Pow(2, -float64(place-1)/12)
}

// EngineGenerator generates a low, slowly wavering engine drone
type EngineGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewEngineGenerator creates an engine drone generator
func NewEngineGenerator(sr beep.SampleRate) *EngineGenerator {
	return &EngineGenerator{
		sr:      sr,
		samples: sr.N(time.Second), // 1 second rev cycle
	}
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Rev between 70Hz and 110Hz
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := 70 + 40*math.Sin(cyclePos*math.Pi)

		// Fundamental plus a rough second harmonic
		sample := 0.08*math.Sin(2*math.Pi*freq*t) + 0.03*math.Sin(4*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}
