package object

import (
	"time"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/physics"
)

// Controls is one player's input for a tick.
type Controls struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
}

// Player is a ship steered by one set of controls.
type Player struct {
	Body
	Index int // 0 for player one, 1 for player two

	FireCooldown time.Duration
	lastFire     time.Time
	fired        bool // lastFire is valid
}

// NewPlayer creates a ship with its top-left corner at (x, y).
func NewPlayer(index, x, y int, sprite Sprite) *Player {
	r := physics.Rect{X: x, Y: y, W: config.PlayerWidth, H: config.PlayerHeight}
	return &Player{
		Body:         NewBody(r, config.PlayerSpeed, sprite),
		Index:        index,
		FireCooldown: config.FireCooldown,
	}
}

// Move applies directional controls and keeps the ship inside bounds.
func (p *Player) Move(c Controls, bounds physics.Rect) {
	if c.Left {
		p.X -= p.Speed
	}
	if c.Right {
		p.X += p.Speed
	}
	if c.Up {
		p.Y -= p.Speed
	}
	if c.Down {
		p.Y += p.Speed
	}
	p.Rect = p.Rect.ClampInto(bounds)
}

// CanFire reports whether the cooldown has elapsed at now.
// The first shot of a session is always allowed.
func (p *Player) CanFire(now time.Time) bool {
	if !p.fired {
		return true
	}
	return now.Sub(p.lastFire) > p.FireCooldown
}

// Fire creates a bullet at the ship's nose and restarts the cooldown.
// The caller must check CanFire first.
func (p *Player) Fire(now time.Time, sprite Sprite) *Bullet {
	p.lastFire = now
	p.fired = true
	return NewBullet(p.Index, p.CenterX()-config.BulletWidth/2, p.Y, sprite)
}
