package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/shooter/internal/config"
)

// Spawner releases waves of enemies at the top of the playfield.
// With ramping enabled, waves come faster, grow and descend quicker as
// the session ages.
type Spawner struct {
	ramp  bool
	width int // Playfield width
	start time.Time
	last  time.Time
	rng   *rand.Rand
}

// NewSpawner creates a spawner for a session that began at start.
func NewSpawner(start time.Time, width int, ramp bool, rng *rand.Rand) *Spawner {
	return &Spawner{
		ramp:  ramp,
		width: width,
		start: start,
		last:  start,
		rng:   rng,
	}
}

// Threshold is the time that must pass between waves after elapsed
// session time.
func (s *Spawner) Threshold(elapsed time.Duration) time.Duration {
	if !s.ramp {
		return config.SpawnInterval
	}
	steps := time.Duration(elapsed / config.SpeedupPeriod)
	t := config.SpawnInterval - steps*config.SpawnIntervalCut
	if t < config.SpawnIntervalMin {
		t = config.SpawnIntervalMin
	}
	return t
}

// WaveSize is the number of enemies in a wave after elapsed session time.
func (s *Spawner) WaveSize(elapsed time.Duration) int {
	if !s.ramp {
		return 1
	}
	return min(config.MaxWaveSize, 1+int(elapsed/config.WaveGrowthPeriod))
}

// EnemySpeed is the descent speed of enemies spawned after elapsed
// session time.
func (s *Spawner) EnemySpeed(elapsed time.Duration) int {
	if !s.ramp {
		return config.EnemyBaseSpeed
	}
	return config.EnemyBaseSpeed + int(elapsed/config.SpeedupPeriod)
}

// Update spawns a wave when more than the current threshold has passed
// since the last one. Each enemy gets its own sprite from assets.
func (s *Spawner) Update(now time.Time, assets Assets) []*Enemy {
	elapsed := now.Sub(s.start)
	if now.Sub(s.last) <= s.Threshold(elapsed) {
		return nil
	}
	s.last = now

	n := s.WaveSize(elapsed)
	speed := s.EnemySpeed(elapsed)
	wave := make([]*Enemy, 0, n)
	for i := 0; i < n; i++ {
		x := 0
		if span := s.width - config.EnemyWidth; span > 0 {
			x = s.rng.Intn(span)
		}
		wave = append(wave, NewEnemy(x, 0, speed, Acquire(assets, SpriteEnemy)))
	}
	return wave
}

// Acquire asks assets for the named sprite, tolerating a nil source.
func Acquire(assets Assets, name string) Sprite {
	if assets == nil {
		return nil
	}
	return assets.Sprite(name)
}
