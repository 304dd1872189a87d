// Package object defines the playfield entities and the wave spawner.
package object

import (
	"github.com/tomz197/shooter/internal/physics"
)

// Sprite names requested from Assets.
const (
	SpritePlayer     = "player"
	SpriteBullet     = "bullet"
	SpriteEnemy      = "enemy"
	SpriteHeart      = "heart"
	SpriteBackground = "background"
)

// Sprite is a drawable handle. Each handle is owned by exactly one entity
// and released exactly once, when that entity leaves its collection.
type Sprite interface {
	Release()
}

// Assets hands out sprite handles by name. A nil Sprite is tolerated and
// drawn as a no-op by the front ends.
type Assets interface {
	Sprite(name string) Sprite
}

// Releasable is implemented by entities that own a Sprite.
type Releasable interface {
	// Release frees the owned sprite. Calling it again is a no-op.
	Release()
}

// Body is the shared part of every entity: a rectangle, a per-tick speed
// and the sprite it owns.
type Body struct {
	physics.Rect
	Speed int

	sprite   Sprite
	released bool
}

// NewBody creates a body owning sprite.
func NewBody(r physics.Rect, speed int, sprite Sprite) Body {
	return Body{Rect: r, Speed: speed, sprite: sprite}
}

// Sprite returns the owned handle, or nil once released.
func (b *Body) Sprite() Sprite {
	if b.released {
		return nil
	}
	return b.sprite
}

// Released reports whether the body's sprite has been freed.
func (b *Body) Released() bool {
	return b.released
}

// Release frees the owned sprite once.
func (b *Body) Release() {
	if b.released {
		return
	}
	b.released = true
	if b.sprite != nil {
		b.sprite.Release()
	}
	b.sprite = nil
}

// Sweep removes every item for which drop returns true, releasing it.
// Order of the kept items is preserved and the backing array is reused.
func Sweep[T Releasable](items []T, drop func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if drop(it) {
			it.Release()
			continue
		}
		kept = append(kept, it)
	}
	// Clear the tail so dropped entities are not retained by the array.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

// RemoveAt releases items[i] and removes it, preserving order.
func RemoveAt[T Releasable](items []T, i int) []T {
	items[i].Release()
	copy(items[i:], items[i+1:])
	var zero T
	items[len(items)-1] = zero
	return items[:len(items)-1]
}

// ReleaseAll releases every item and returns an empty slice.
func ReleaseAll[T Releasable](items []T) []T {
	return Sweep(items, func(T) bool { return true })
}
