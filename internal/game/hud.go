package game

import (
	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/physics"
)

// HeartRects returns where the life indicators are drawn, one per
// remaining life, left to right along the top edge.
func HeartRects(lives int) []physics.Rect {
	rects := make([]physics.Rect, 0, max(lives, 0))
	for i := 0; i < lives; i++ {
		rects = append(rects, physics.Rect{
			X: config.HeartMargin + i*config.HeartSpacing,
			Y: config.HeartMargin,
			W: config.HeartSize,
			H: config.HeartSize,
		})
	}
	return rects
}
