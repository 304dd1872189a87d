package object

import (
	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/physics"
)

// Bullet travels straight up from the ship that fired it.
type Bullet struct {
	Body
	Owner int // Index of the firing player
}

// NewBullet creates a bullet with its top-left corner at (x, y).
func NewBullet(owner, x, y int, sprite Sprite) *Bullet {
	r := physics.Rect{X: x, Y: y, W: config.BulletWidth, H: config.BulletHeight}
	return &Bullet{
		Body:  NewBody(r, config.BulletSpeed, sprite),
		Owner: owner,
	}
}

// Update moves the bullet up. Returns true once it has left the top edge.
func (b *Bullet) Update() (remove bool) {
	b.Y -= b.Speed
	return b.Y < 0
}
