package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/draw"
	shlog "github.com/tomz197/shooter/internal/logging"
	"github.com/tomz197/shooter/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := shlog.New("ssh", log.InfoLevel)

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	defaultMode, err := config.ModeFromEnv()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "mode", defaultMode.Name)

	g := &games{logger: logger, defaultMode: defaultMode}
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			g.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Error("failed to create server", "err", err)
		return
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Error("server error", "err", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	logger.Info("Shutting down server...", "active", g.active())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("shutdown error", "err", err)
	}
}

// games runs one independent game per SSH session. Sessions share
// nothing but the logger.
type games struct {
	logger      *log.Logger
	defaultMode config.Mode

	mu      sync.Mutex
	running int
}

func (g *games) active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *games) track(delta int) {
	g.mu.Lock()
	g.running += delta
	g.mu.Unlock()
}

// modeFor picks the variant from the SSH user name ("ssh duel@host"),
// falling back to the server default.
func (g *games) modeFor(user string) config.Mode {
	if m, err := config.ParseMode(user); err == nil && user != "" {
		m.MultiHit = g.defaultMode.MultiHit
		return m
	}
	return g.defaultMode
}

// middleware handles SSH sessions and runs the game.
func (g *games) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		mode := g.modeFor(sess.User())
		logger := g.logger.With("user", sess.User(), "mode", mode.Name)
		logger.Info("New game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		renderer := lipgloss.NewRenderer(sess)
		renderer.SetColorProfile(termenv.ANSI256)

		g.track(1)
		err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
			Mode:         mode,
			TermSizeFunc: sizeTracker.getSize,
			Renderer:     renderer,
			Logger:       logger,
		})
		g.track(-1)
		if err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
