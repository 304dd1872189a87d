// Package game implements the per-frame simulation shared by every
// variant of the shooter.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// Sound and music names requested from Audio.
const (
	SoundShoot      = "shoot"
	SoundExplosion  = "explosion"
	MusicBackground = "background_music"
)

// Audio plays named sound effects.
type Audio interface {
	Play(name string)
}

type silence struct{}

func (silence) Play(string) {}

// Options configures a Session.
type Options struct {
	Mode   config.Mode
	Assets object.Assets
	Audio  Audio
	Rand   *rand.Rand  // Defaults to a time-seeded source
	Logger *log.Logger // Defaults to log.Default()
}

// Session holds everything that changes while a game is played: ships,
// both bullet collections, enemies, lives, score and the shake effect.
// It is driven from a single goroutine.
type Session struct {
	mode   config.Mode
	bounds physics.Rect
	assets object.Assets
	audio  Audio
	logger *log.Logger

	players []*object.Player
	bullets [][]*object.Bullet // Indexed by owning player
	enemies []*object.Enemy
	spawner *object.Spawner
	shake   *Shake

	start   time.Time
	lives   int
	score   int
	running bool
	closed  bool
}

// NewSession starts a game at start. Ships are placed near the bottom of
// the playfield, one per player in the mode.
func NewSession(start time.Time, opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	audio := opts.Audio
	if audio == nil {
		audio = silence{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	players := opts.Mode.Players
	if players < 1 {
		players = 1
	}

	s := &Session{
		mode:    opts.Mode,
		bounds:  physics.Rect{W: config.ScreenWidth, H: config.ScreenHeight},
		assets:  opts.Assets,
		audio:   audio,
		logger:  logger,
		bullets: make([][]*object.Bullet, players),
		spawner: object.NewSpawner(start, config.ScreenWidth, opts.Mode.Ramp, rng),
		shake:   NewShake(rng),
		start:   start,
		lives:   config.InitialLives,
		running: true,
	}
	y := config.ScreenHeight - config.PlayerBaseline
	for i := 0; i < players; i++ {
		x := config.ScreenWidth*(i+1)/(players+1) - config.PlayerWidth/2
		s.players = append(s.players, object.NewPlayer(i, x, y, object.Acquire(s.assets, object.SpritePlayer)))
	}

	logger.Debug("session started", "mode", opts.Mode.Name, "players", players, "multihit", opts.Mode.MultiHit)
	return s
}

// Steer applies one player's controls for the tick at now: movement,
// clamped to the playfield, and a rate-limited shot.
func (s *Session) Steer(player int, c object.Controls, now time.Time) {
	if !s.running || player < 0 || player >= len(s.players) {
		return
	}
	p := s.players[player]
	p.Move(c, s.bounds)

	if c.Fire && p.CanFire(now) {
		b := p.Fire(now, object.Acquire(s.assets, object.SpriteBullet))
		s.bullets[player] = append(s.bullets[player], b)
		s.audio.Play(SoundShoot)
	}
}

// Advance moves every entity one tick forward at now, spawns waves,
// resolves hits and charges lives for enemies that got through.
// It returns true exactly once: on the tick the last life is lost.
// After the session has stopped Advance does nothing.
func (s *Session) Advance(now time.Time) (ended bool) {
	if !s.running {
		return false
	}

	for i := range s.bullets {
		s.bullets[i] = object.Sweep(s.bullets[i], (*object.Bullet).Update)
	}

	s.enemies = object.Sweep(s.enemies, func(e *object.Enemy) bool {
		if !e.Update(s.bounds.H) {
			return false
		}
		s.lives--
		s.shake.Start(now)
		s.logger.Debug("enemy got through", "lives", s.lives)
		return true
	})

	s.enemies = append(s.enemies, s.spawner.Update(now, s.assets)...)

	for owner := range s.bullets {
		s.resolveHits(owner)
	}

	if s.lives <= 0 {
		s.running = false
		s.logger.Info("game over", "mode", s.mode.Name, "score", s.score, "survived", now.Sub(s.start).Round(time.Millisecond))
		return true
	}
	return false
}

// resolveHits removes bullet/enemy pairs from one player's collection.
// Without MultiHit only the first overlapping pair, scanning bullets then
// enemies in order, is resolved this tick.
func (s *Session) resolveHits(owner int) {
	for i := 0; i < len(s.bullets[owner]); i++ {
		b := s.bullets[owner][i]
		for j, e := range s.enemies {
			if !b.Intersects(e.Rect) {
				continue
			}
			s.bullets[owner] = object.RemoveAt(s.bullets[owner], i)
			s.enemies = object.RemoveAt(s.enemies, j)
			s.audio.Play(SoundExplosion)
			if s.mode.Scoring {
				s.score += config.ScorePerKill
			}
			if !s.mode.MultiHit {
				return
			}
			i--
			break
		}
	}
}

// Quit stops the session before the next tick.
func (s *Session) Quit() {
	s.running = false
}

// Close releases every sprite still owned by the session. The session
// must not be advanced afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.running = false
	for i := range s.bullets {
		s.bullets[i] = object.ReleaseAll(s.bullets[i])
	}
	s.enemies = object.ReleaseAll(s.enemies)
	for _, p := range s.players {
		p.Release()
	}
}

// Running reports whether the session still accepts ticks.
func (s *Session) Running() bool { return s.running }

// Mode returns the variant being played.
func (s *Session) Mode() config.Mode { return s.mode }

// Lives returns the remaining lives. It may go negative on the final tick
// when several enemies land at once.
func (s *Session) Lives() int { return s.lives }

// Score returns the score. It stays zero in modes without scoring.
func (s *Session) Score() int { return s.score }

// Elapsed returns the session age at now.
func (s *Session) Elapsed(now time.Time) time.Duration { return now.Sub(s.start) }

// Players returns the ships in player order.
func (s *Session) Players() []*object.Player { return s.players }

// Bullets returns the live bullets fired by player.
func (s *Session) Bullets(player int) []*object.Bullet {
	if player < 0 || player >= len(s.bullets) {
		return nil
	}
	return s.bullets[player]
}

// Enemies returns the live enemies in spawn order.
func (s *Session) Enemies() []*object.Enemy { return s.enemies }

// Shake returns the session's screen shake.
func (s *Session) Shake() *Shake { return s.shake }
