package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	_ "image/png" // register PNG format
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/object"
)

// Image files looked up in the asset directory.
var imageFiles = map[string]string{
	object.SpritePlayer:     "player.png",
	object.SpriteBullet:     "bullet.png",
	object.SpriteEnemy:      "enemy.png",
	object.SpriteHeart:      "heart.png",
	object.SpriteBackground: "background.png",
}

const fontFile = "Arial.ttf"

// Placeholder colors used when no asset directory is configured.
var placeholderColors = map[string]color.RGBA{
	object.SpritePlayer:     {0x4f, 0xc3, 0xf7, 0xff},
	object.SpriteBullet:     {0xff, 0xeb, 0x3b, 0xff},
	object.SpriteEnemy:      {0xe5, 0x39, 0x35, 0xff},
	object.SpriteHeart:      {0xf0, 0x62, 0x92, 0xff},
	object.SpriteBackground: {0x0b, 0x0d, 0x21, 0xff},
}

// Library owns the decoded images and fonts. Sprites handed out by the
// library share its images; releasing a sprite never disposes the image.
type Library struct {
	images map[string]*ebiten.Image

	// HUD is used for the score readout, Title for the game over screen.
	HUD   text.Face
	Title text.Face
}

// LoadLibrary decodes every sprite image from dir. A missing or broken
// image is an error. The title font is optional: without it the built-in
// bitmap font is scaled up instead.
func LoadLibrary(dir string) (*Library, error) {
	lib := newLibrary()
	for name, file := range imageFiles {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		lib.images[name] = img
	}

	if data, err := os.ReadFile(filepath.Join(dir, fontFile)); err == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", fontFile, err)
		}
		lib.Title = &text.GoTextFace{Source: src, Size: 48}
	}
	return lib, nil
}

// PlaceholderLibrary builds solid-color sprites sized like the entities
// that use them.
func PlaceholderLibrary() *Library {
	lib := newLibrary()
	sizes := map[string][2]int{
		object.SpritePlayer:     {config.PlayerWidth, config.PlayerHeight},
		object.SpriteBullet:     {config.BulletWidth, config.BulletHeight},
		object.SpriteEnemy:      {config.EnemyWidth, config.EnemyHeight},
		object.SpriteHeart:      {config.HeartSize, config.HeartSize},
		object.SpriteBackground: {config.ScreenWidth, config.ScreenHeight},
	}
	for name, size := range sizes {
		img := ebiten.NewImage(size[0], size[1])
		img.Fill(placeholderColors[name])
		lib.images[name] = img
	}
	return lib
}

func newLibrary() *Library {
	return &Library{
		images: make(map[string]*ebiten.Image, len(imageFiles)),
		HUD:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Sprite implements object.Assets.
func (l *Library) Sprite(name string) object.Sprite {
	img, ok := l.images[name]
	if !ok {
		return nil
	}
	return &Sprite{img: img}
}

// Sprite is a handle on a shared image.
type Sprite struct {
	img      *ebiten.Image
	released bool
}

// Release detaches the handle. A released sprite draws nothing.
func (s *Sprite) Release() {
	s.released = true
	s.img = nil
}

// Image returns the sprite's image, or nil once released.
func (s *Sprite) Image() *ebiten.Image {
	if s == nil || s.released {
		return nil
	}
	return s.img
}

var _ object.Assets = (*Library)(nil)
