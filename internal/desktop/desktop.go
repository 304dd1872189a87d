// Package desktop runs a game session in an Ebitengine window.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/game"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// Options configures a desktop game.
type Options struct {
	Mode   config.Mode
	Assets string // Asset directory; empty selects built-in placeholders
	Logger *log.Logger
	Now    func() time.Time // Defaults to time.Now
}

// Game adapts a Session to ebiten.Game.
type Game struct {
	session *game.Session
	lib     *Library
	mixer   *Mixer
	logger  *log.Logger
	now     func() time.Time

	world      *ebiten.Image // Playfield drawn at logical size, then fitted to the screen
	background object.Sprite
	heart      object.Sprite
	overAt     time.Time // Zero while playing
}

// New loads the assets and starts a session. Any loading failure is
// returned and nothing is left running.
func New(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Mode.Players == 0 {
		opts.Mode = config.Classic
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	var (
		lib   *Library
		mixer *Mixer
		err   error
	)
	if opts.Assets == "" {
		lib = PlaceholderLibrary()
		mixer = BeepMixer(ctx, opts.Logger)
	} else {
		if lib, err = LoadLibrary(opts.Assets); err != nil {
			return nil, fmt.Errorf("images: %w", err)
		}
		if mixer, err = LoadMixer(ctx, opts.Assets, opts.Logger); err != nil {
			return nil, fmt.Errorf("sounds: %w", err)
		}
	}

	g := &Game{
		lib:        lib,
		mixer:      mixer,
		logger:     opts.Logger,
		now:        opts.Now,
		world:      ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		background: lib.Sprite(object.SpriteBackground),
		heart:      lib.Sprite(object.SpriteHeart),
	}
	g.session = game.NewSession(opts.Now(), game.Options{
		Mode:   opts.Mode,
		Assets: lib,
		Audio:  mixer,
		Logger: opts.Logger,
	})
	return g, nil
}

// Run opens the window and blocks until the game over screen has been
// shown or the window is closed.
func (g *Game) Run() error {
	defer g.close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - " + g.session.Mode().Name)
	ebiten.SetTPS(config.TicksPerSecond)
	// Closing the window quits the session; Update then holds the game
	// over screen before terminating.
	ebiten.SetWindowClosingHandled(true)

	g.mixer.StartMusic()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func (g *Game) close() {
	g.session.Close()
	for _, s := range []object.Sprite{g.background, g.heart} {
		if s != nil {
			s.Release()
		}
	}
	if err := g.mixer.Close(); err != nil {
		g.logger.Warn("failed to stop music", "err", err)
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	quit := ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
	return g.step(g.now(), quit, ebiten.IsKeyPressed)
}

// step runs one tick at now. quit stops the session as losing would, so
// the game over screen is held either way.
func (g *Game) step(now time.Time, quit bool, pressed func(ebiten.Key) bool) error {
	if !g.overAt.IsZero() {
		if now.Sub(g.overAt) >= config.GameOverDuration {
			return ebiten.Termination
		}
		return nil
	}

	if quit {
		g.session.Quit()
	}
	players := len(g.session.Players())
	for i := 0; i < players; i++ {
		g.session.Steer(i, Controls(i, players, pressed), now)
	}
	g.session.Advance(now)

	if !g.session.Running() {
		g.overAt = now
		g.logger.Info("game over", "score", g.session.Score())
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.overAt.IsZero() {
		g.drawGameOver(screen)
		return
	}

	g.world.Clear()
	g.drawSprite(g.world, g.background, physics.Rect{W: config.ScreenWidth, H: config.ScreenHeight})
	for i, p := range g.session.Players() {
		g.drawSprite(g.world, p.Sprite(), p.Rect)
		for _, b := range g.session.Bullets(i) {
			g.drawSprite(g.world, b.Sprite(), b.Rect)
		}
	}
	for _, e := range g.session.Enemies() {
		g.drawSprite(g.world, e.Sprite(), e.Rect)
	}
	for _, r := range game.HeartRects(g.session.Lives()) {
		g.drawSprite(g.world, g.heart, r)
	}
	if g.session.Mode().Scoring {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.HeartMargin, float64(config.HeartMargin+config.HeartSize+8))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(g.world, fmt.Sprintf("SCORE %d", g.session.Score()), g.lib.HUD, op)
	}

	dw, dh := g.session.Shake().Viewport(g.now())
	sx, sy := ViewportScale(dw, dh)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(g.world, op)
}

func (g *Game) drawSprite(dst *ebiten.Image, s object.Sprite, r physics.Rect) {
	sprite, ok := s.(*Sprite)
	if !ok {
		return
	}
	img := sprite.Image()
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, op)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	screen.Fill(color.Black)

	lines := []string{"GAME OVER"}
	if g.session.Mode().Scoring {
		lines = append(lines, fmt.Sprintf("Score: %d", g.session.Score()))
	}

	face, scale := g.lib.Title, 1.0
	if face == nil {
		face, scale = g.lib.HUD, 4.0
	}
	_, lineHeight := text.Measure("M", face, 0)
	y := (config.ScreenHeight - lineHeight*scale*float64(len(lines))) / 2
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(config.ScreenWidth/2, y)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(color.RGBA{0xff, 0xff, 0xff, 0xff})
		text.Draw(screen, line, face, op)
		y += lineHeight * scale
	}
}

// Layout implements ebiten.Game. The playfield has a fixed logical size.
func (g *Game) Layout(int, int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// ViewportScale converts a logical viewport perturbation into the scale
// applied to the playfield. A larger logical viewport shows the playfield
// smaller.
func ViewportScale(dw, dh int) (sx, sy float64) {
	return float64(config.ScreenWidth) / float64(config.ScreenWidth+dw),
		float64(config.ScreenHeight) / float64(config.ScreenHeight+dh)
}
