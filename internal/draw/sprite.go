package draw

import (
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// Palette hands out terminal sprites: a named entity drawn as a solid
// block of one color.
type Palette map[string]Ink

// DefaultPalette colors the game's sprites.
var DefaultPalette = Palette{
	object.SpritePlayer: 45,  // cyan
	object.SpriteBullet: 226, // yellow
	object.SpriteEnemy:  196, // red
	object.SpriteHeart:  204, // pink
}

// Sprite is a terminal drawable handle.
type Sprite struct {
	Name     string
	Ink      Ink
	released bool
}

// Release marks the handle as freed. Freed sprites draw nothing.
func (s *Sprite) Release() {
	s.released = true
}

// Released reports whether Release has been called.
func (s *Sprite) Released() bool {
	return s.released
}

// Sprite implements object.Assets. Unknown names yield nil, which draws as
// a no-op.
func (p Palette) Sprite(name string) object.Sprite {
	ink, ok := p[name]
	if !ok {
		return nil
	}
	return &Sprite{Name: name, Ink: ink}
}

// DrawSprite fills the rectangle of an entity with its sprite's color.
func (c *Canvas) DrawSprite(s object.Sprite, r physics.Rect) {
	ts, ok := s.(*Sprite)
	if !ok || ts == nil || ts.released {
		return
	}
	c.FillRect(r, ts.Ink)
}
