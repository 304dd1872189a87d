// Package loop runs a game session in a terminal.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/draw"
	"github.com/tomz197/shooter/internal/game"
	"github.com/tomz197/shooter/internal/input"
	"github.com/tomz197/shooter/internal/object"
)

// Options configures a terminal game.
type Options struct {
	Mode         config.Mode
	TermSizeFunc draw.TermSizeFunc   // Defaults to the size of os.Stdout
	Renderer     *lipgloss.Renderer  // Defaults to lipgloss.DefaultRenderer()
	Logger       *log.Logger         // Defaults to log.Default()
	Sleep        func(time.Duration) // Defaults to time.Sleep
}

// Run plays one session with the standard Input → Update → Draw cycle,
// then shows the game over screen. It returns when the session has
// ended, either by losing every life or by quitting.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	opts = withDefaults(opts)
	stream := input.StartStream(r)
	defer stream.Stop()
	frame := draw.NewFrame(w)

	draw.EnterScreen(w)
	defer draw.LeaveScreen(w)

	session := game.NewSession(time.Now(), game.Options{
		Mode:   opts.Mode,
		Assets: draw.DefaultPalette,
		Audio:  &bell{frame: frame, logger: opts.Logger},
		Logger: opts.Logger,
	})
	defer session.Close()

	v := newView(session, opts)
	defer v.close()

	for session.Running() {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if inp.Quit {
			session.Quit()
			break
		}
		players := len(session.Players())
		for i := 0; i < players; i++ {
			session.Steer(i, inp.Controls(i, players), frameStart)
		}

		// ===== UPDATE PHASE =====
		session.Advance(frameStart)

		// ===== DRAW PHASE =====
		if err := v.drawFrame(frame, frameStart); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.FrameDelay {
			opts.Sleep(config.FrameDelay - elapsed)
		}
	}

	if err := v.drawGameOver(frame); err != nil {
		return fmt.Errorf("draw game over: %w", err)
	}
	opts.Sleep(config.GameOverDuration)
	return nil
}

func withDefaults(opts Options) Options {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Mode.Players == 0 {
		opts.Mode = config.Classic
	}
	return opts
}

// bell is the terminal's audio: explosions ring the terminal bell.
type bell struct {
	frame  *draw.Frame
	logger *log.Logger
}

func (b *bell) Play(name string) {
	b.logger.Debug("sound", "name", name)
	if name == game.SoundExplosion {
		b.frame.WriteString("\a")
	}
}

// Ensure the terminal palette and bell satisfy the session's collaborators.
var (
	_ object.Assets = draw.DefaultPalette
	_ game.Audio    = (*bell)(nil)
)
