package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/shooter/internal/config"
)

// Shake jolts the rendered viewport for a short time after the player
// loses a life. It never moves entities; front ends ask for the current
// perturbation once per rendered frame.
type Shake struct {
	Duration  time.Duration
	Amplitude int

	active  bool
	started time.Time
	rng     *rand.Rand
}

// NewShake creates an idle shake drawing jitter from rng.
func NewShake(rng *rand.Rand) *Shake {
	return &Shake{
		Duration:  config.ShakeDuration,
		Amplitude: config.ShakeAmplitude,
		rng:       rng,
	}
}

// Start begins (or restarts) shaking at now.
func (s *Shake) Start(now time.Time) {
	s.active = true
	s.started = now
}

// Active reports whether the shake is running.
func (s *Shake) Active() bool {
	return s.active
}

// Viewport returns the logical size perturbation for the frame rendered
// at now. Once more than Duration has passed since Start the shake goes
// idle and (0, 0), the nominal viewport, is returned.
func (s *Shake) Viewport(now time.Time) (dw, dh int) {
	if !s.active {
		return 0, 0
	}
	if now.Sub(s.started) > s.Duration {
		s.active = false
		return 0, 0
	}
	return s.jitter(), s.jitter()
}

func (s *Shake) jitter() int {
	return s.rng.Intn(2*s.Amplitude+1) - s.Amplitude
}
