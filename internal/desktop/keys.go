package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/shooter/internal/object"
)

type keyMap struct {
	left, right, up, down, fire ebiten.Key
}

var (
	arrowsSpace = keyMap{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeySpace}
	wasdSpace   = keyMap{ebiten.KeyA, ebiten.KeyD, ebiten.KeyW, ebiten.KeyS, ebiten.KeySpace}
	arrowsEnter = keyMap{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyEnter}
)

// Controls maps the keyboard to one player's controls. A lone player uses
// arrows and space; in a duel player 1 takes WASD and space, player 2 the
// arrows and enter.
func Controls(player, players int, pressed func(ebiten.Key) bool) object.Controls {
	km := arrowsSpace
	if players > 1 {
		km = wasdSpace
		if player == 1 {
			km = arrowsEnter
		}
	}
	return object.Controls{
		Left:  pressed(km.left),
		Right: pressed(km.right),
		Up:    pressed(km.up),
		Down:  pressed(km.down),
		Fire:  pressed(km.fire),
	}
}
