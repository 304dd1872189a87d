package config

import "time"

// Playfield resolution in logical pixels.
// Terminal and desktop front ends scale this to their output.
const (
	ScreenWidth  = 480
	ScreenHeight = 640
	WindowTitle  = "Space Shooter"
)

// Session
const (
	InitialLives = 5
	ScorePerKill = 100
)

// Player
const (
	PlayerWidth    = 50
	PlayerHeight   = 50
	PlayerSpeed    = 5   // Pixels per tick
	PlayerBaseline = 80  // Distance from the bottom edge to the ship's top
	FireCooldown   = 300 * time.Millisecond
)

// Bullets
const (
	BulletWidth  = 10
	BulletHeight = 20
	BulletSpeed  = 8
)

// Enemies and the wave spawner.
const (
	EnemyWidth     = 40
	EnemyHeight    = 40
	EnemyBaseSpeed = 1

	SpawnInterval    = 1000 * time.Millisecond // Starting (and classic) threshold
	SpawnIntervalMin = 500 * time.Millisecond
	SpawnIntervalCut = 50 * time.Millisecond // Removed per SpeedupPeriod elapsed
	SpeedupPeriod    = 10 * time.Second      // Also adds 1 to enemy speed
	WaveGrowthPeriod = 5 * time.Second       // Adds 1 enemy per wave
	MaxWaveSize      = 5
)

// Screen shake
const (
	ShakeDuration  = 300 * time.Millisecond
	ShakeAmplitude = 5 // Jitter is uniform in [-ShakeAmplitude, ShakeAmplitude]
)

// HUD
const (
	HeartSize    = 30
	HeartSpacing = 40
	HeartMargin  = 10
)

// Frame pacing
const (
	FrameDelay       = 16 * time.Millisecond
	TicksPerSecond   = 60
	GameOverDuration = 3 * time.Second
)
