package config

import (
	"fmt"
	"strings"
)

// Environment variables read by the game binaries.
const (
	EnvMode     = "SHOOTER_MODE"
	EnvMultiHit = "SHOOTER_MULTIHIT"
	EnvAssets   = "SHOOTER_ASSETS"
	EnvLogLevel = "SHOOTER_LOG_LEVEL"
)

// Mode selects one of the game variants.
type Mode struct {
	Name    string
	Players int  // 1 or 2
	Scoring bool // Award ScorePerKill per destroyed enemy
	Ramp    bool // Spawn faster, bigger, quicker waves as the session ages

	// MultiHit resolves every bullet/enemy overlap each tick instead of
	// stopping after the first pair per bullet collection.
	MultiHit bool
}

// Built-in variants.
var (
	Classic = Mode{Name: "classic", Players: 1}
	Duel    = Mode{Name: "duel", Players: 2, Scoring: true, Ramp: true}
	Scored  = Mode{Name: "scored", Players: 1, Scoring: true, Ramp: true}
)

// Modes lists the built-in variants in menu order.
var Modes = []Mode{Classic, Duel, Scored}

// ParseMode returns the built-in mode with the given name (case-insensitive).
// An empty name selects Classic.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Classic, nil
	}
	for _, m := range Modes {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("unknown mode %q", name)
}

// ModeFromEnv reads the mode from SHOOTER_MODE and SHOOTER_MULTIHIT.
func ModeFromEnv() (Mode, error) {
	m, err := ParseMode(GetEnv(EnvMode, ""))
	if err != nil {
		return Mode{}, err
	}
	m.MultiHit = GetBool(EnvMultiHit, false)
	return m, nil
}
