package race

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Clock supplies wall-clock readings for lap timing
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Jitter yields the pause before a car's next tick
type Jitter func() time.Duration

// RandomJitter returns pauses uniformly distributed in [0, limit)
// Each car should own its jitter so lanes drift apart
func RandomJitter(limit time.Duration) Jitter {
	if limit <= 0 {
		return NoJitter
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return func() time.Duration {
		return time.Duration(rng.Int64N(int64(limit)))
	}
}

// NoJitter never pauses; used for deterministic stepping
func NoJitter() time.Duration {
	return 0
}

// sleep waits for d or until ctx is cancelled
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	case <-timer.C:
		return nil
	}
}
