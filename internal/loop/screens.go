package loop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/draw"
	"github.com/tomz197/shooter/internal/game"
	"github.com/tomz197/shooter/internal/object"
)

// view draws a session onto a terminal canvas.
type view struct {
	session  *game.Session
	canvas   *draw.Canvas
	termSize draw.TermSizeFunc
	heart    object.Sprite

	hudStyle  lipgloss.Style
	overStyle lipgloss.Style
}

func newView(session *game.Session, opts Options) *view {
	return &view{
		session:  session,
		canvas:   draw.NewScaledCanvas(1, 1, config.ScreenWidth, config.ScreenHeight),
		termSize: opts.TermSizeFunc,
		heart:    draw.DefaultPalette.Sprite(object.SpriteHeart),
		hudStyle: opts.Renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")),
		overStyle: opts.Renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4).
			Align(lipgloss.Center),
	}
}

func (v *view) close() {
	if v.heart != nil {
		v.heart.Release()
	}
}

// fit resizes the canvas to the terminal, keeping the playfield's shape.
func (v *view) fit() error {
	termWidth, termHeight, err := v.termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	cols, rows, offCol, offRow := draw.FitArea(termWidth, termHeight, config.ScreenWidth, config.ScreenHeight)
	v.canvas.Resize(cols, rows)
	v.canvas.SetOffset(offCol, offRow)
	return nil
}

// drawFrame renders the playfield, entities and HUD for the frame at now.
func (v *view) drawFrame(f *draw.Frame, now time.Time) error {
	if err := v.fit(); err != nil {
		return err
	}

	// Shake perturbs the logical viewport for this frame only.
	dw, dh := v.session.Shake().Viewport(now)
	v.canvas.SetLogicalSize(float64(config.ScreenWidth+dw), float64(config.ScreenHeight+dh))
	defer v.canvas.SetLogicalSize(config.ScreenWidth, config.ScreenHeight)

	f.Clear()
	v.canvas.Clear()

	for _, p := range v.session.Players() {
		v.canvas.DrawSprite(p.Sprite(), p.Rect)
	}
	for i := range v.session.Players() {
		for _, b := range v.session.Bullets(i) {
			v.canvas.DrawSprite(b.Sprite(), b.Rect)
		}
	}
	for _, e := range v.session.Enemies() {
		v.canvas.DrawSprite(e.Sprite(), e.Rect)
	}
	for _, r := range game.HeartRects(v.session.Lives()) {
		v.canvas.DrawSprite(v.heart, r)
	}

	v.canvas.Render(f)
	v.canvas.RenderBorder(f)
	v.drawHUD(f)

	return f.Flush()
}

// drawHUD writes the score readout in scoring modes.
func (v *view) drawHUD(f *draw.Frame) {
	if !v.session.Mode().Scoring {
		return
	}
	text := v.hudStyle.Render(fmt.Sprintf("Score: %d", v.session.Score()))
	col, row := v.canvas.LogicalToTerminal(config.ScreenWidth, 0)
	f.WriteAt(col-lipgloss.Width(text)-1, row, text)
}

// drawGameOver shows the final panel centered on the terminal.
func (v *view) drawGameOver(f *draw.Frame) error {
	if err := v.fit(); err != nil {
		return err
	}
	msg := "GAME OVER"
	if v.session.Mode().Scoring {
		msg += fmt.Sprintf("\n\nScore: %d", v.session.Score())
	}
	panel := v.overStyle.Render(msg)

	termWidth, termHeight, err := v.termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	col := (termWidth-lipgloss.Width(panel))/2 + 1
	row := (termHeight-lipgloss.Height(panel))/2 + 1

	f.Clear()
	f.WriteAt(col, row, panel)
	return f.Flush()
}
