package object

import (
	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/physics"
)

// Enemy descends from the top of the playfield.
type Enemy struct {
	Body
}

// NewEnemy creates an enemy with its top-left corner at (x, y).
func NewEnemy(x, y, speed int, sprite Sprite) *Enemy {
	r := physics.Rect{X: x, Y: y, W: config.EnemyWidth, H: config.EnemyHeight}
	return &Enemy{Body: NewBody(r, speed, sprite)}
}

// Update moves the enemy down. Returns true once its bottom edge has
// reached floor.
func (e *Enemy) Update(floor int) (landed bool) {
	e.Y += e.Speed
	return e.Bottom() >= floor
}
