package game

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/object"
)

type fakeSprite struct {
	name     string
	releases int
}

func (s *fakeSprite) Release() { s.releases++ }

type fakeAssets struct {
	handed []*fakeSprite
}

func (a *fakeAssets) Sprite(name string) object.Sprite {
	s := &fakeSprite{name: name}
	a.handed = append(a.handed, s)
	return s
}

func (a *fakeAssets) count(name string) int {
	n := 0
	for _, s := range a.handed {
		if s.name == name {
			n++
		}
	}
	return n
}

type fakeAudio struct {
	played map[string]int
}

func (a *fakeAudio) Play(name string) {
	if a.played == nil {
		a.played = make(map[string]int)
	}
	a.played[name]++
}

var epoch = time.Unix(1000, 0)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestSession(t *testing.T, mode config.Mode) (*Session, *fakeAssets, *fakeAudio) {
	t.Helper()
	assets := &fakeAssets{}
	audio := &fakeAudio{}
	s := NewSession(epoch, Options{
		Mode:   mode,
		Assets: assets,
		Audio:  audio,
		Rand:   rand.New(rand.NewSource(42)),
		Logger: log.New(io.Discard),
	})
	return s, assets, audio
}

func TestNewSessionPlacesShips(t *testing.T) {
	s, assets, _ := newTestSession(t, config.Classic)
	if len(s.Players()) != 1 {
		t.Fatalf("players = %d, want 1", len(s.Players()))
	}
	p := s.Players()[0].Rect
	if p.X != config.ScreenWidth/2-25 || p.Y != config.ScreenHeight-80 {
		t.Errorf("ship at (%d,%d), want (%d,%d)", p.X, p.Y, config.ScreenWidth/2-25, config.ScreenHeight-80)
	}
	if s.Lives() != 5 || !s.Running() || s.Score() != 0 {
		t.Errorf("fresh session: lives=%d running=%v score=%d", s.Lives(), s.Running(), s.Score())
	}
	if assets.count(object.SpritePlayer) != 1 {
		t.Errorf("player sprites = %d, want 1", assets.count(object.SpritePlayer))
	}

	duel, _, _ := newTestSession(t, config.Duel)
	if len(duel.Players()) != 2 {
		t.Fatalf("duel players = %d, want 2", len(duel.Players()))
	}
	if duel.Players()[0].X >= duel.Players()[1].X {
		t.Errorf("player one should start left of player two")
	}
}

func TestBulletsLeavingTopAreRemoved(t *testing.T) {
	s, _, _ := newTestSession(t, config.Classic)
	low := &fakeSprite{}
	high := &fakeSprite{}
	s.bullets[0] = append(s.bullets[0],
		object.NewBullet(0, 10, 7, high), // y becomes -1
		object.NewBullet(0, 50, 8, low),  // y becomes 0
	)

	s.Advance(at(0))

	got := s.Bullets(0)
	if len(got) != 1 || got[0].X != 50 || got[0].Y != 0 {
		t.Fatalf("bullets after tick = %+v, want only the one at y=0", got)
	}
	if high.releases != 1 || low.releases != 0 {
		t.Fatalf("releases high=%d low=%d, want 1 and 0", high.releases, low.releases)
	}
}

func TestEnemiesLandingCostLives(t *testing.T) {
	s, _, _ := newTestSession(t, config.Classic)
	floor := config.ScreenHeight - config.EnemyHeight
	sprites := []*fakeSprite{{}, {}, {}}
	s.enemies = []*object.Enemy{
		object.NewEnemy(0, floor-1, 1, sprites[0]),  // lands
		object.NewEnemy(100, floor-2, 1, sprites[1]), // one short
		object.NewEnemy(200, floor-3, 3, sprites[2]), // lands
	}

	s.Advance(at(0))

	if s.Lives() != 3 {
		t.Fatalf("lives = %d, want 3", s.Lives())
	}
	if len(s.Enemies()) != 1 || s.Enemies()[0].X != 100 {
		t.Fatalf("remaining enemies = %+v", s.Enemies())
	}
	if sprites[0].releases != 1 || sprites[1].releases != 0 || sprites[2].releases != 1 {
		t.Fatalf("unexpected releases %d %d %d", sprites[0].releases, sprites[1].releases, sprites[2].releases)
	}
	if !s.Shake().Active() {
		t.Fatalf("landing should start the shake")
	}
}

func TestOneHitPerCollectionPerTick(t *testing.T) {
	s, _, audio := newTestSession(t, config.Scored)
	e1 := object.NewEnemy(100, 100, 1, &fakeSprite{})
	e2 := object.NewEnemy(300, 100, 1, &fakeSprite{})
	b1 := object.NewBullet(0, 110, 120, &fakeSprite{})
	b2 := object.NewBullet(0, 310, 120, &fakeSprite{})
	s.enemies = []*object.Enemy{e1, e2}
	s.bullets[0] = []*object.Bullet{b1, b2}

	s.Advance(at(0))

	if len(s.Enemies()) != 1 || s.Enemies()[0] != e2 {
		t.Fatalf("enemies after tick = %v, want only e2", s.Enemies())
	}
	if len(s.Bullets(0)) != 1 || s.Bullets(0)[0] != b2 {
		t.Fatalf("bullets after tick = %v, want only b2", s.Bullets(0))
	}
	if !b1.Released() || !e1.Released() || b2.Released() || e2.Released() {
		t.Fatalf("only the resolved pair should be released")
	}
	if s.Score() != 100 {
		t.Fatalf("score = %d, want 100", s.Score())
	}
	if audio.played[SoundExplosion] != 1 {
		t.Fatalf("explosions = %d, want 1", audio.played[SoundExplosion])
	}

	// The surviving pair resolves on the next tick.
	s.Advance(at(16))
	if len(s.Enemies()) != 0 || len(s.Bullets(0)) != 0 || s.Score() != 200 {
		t.Fatalf("second tick: enemies=%d bullets=%d score=%d", len(s.Enemies()), len(s.Bullets(0)), s.Score())
	}
}

func TestMultiHitResolvesAllPairs(t *testing.T) {
	mode := config.Scored
	mode.MultiHit = true
	s, _, audio := newTestSession(t, mode)
	s.enemies = []*object.Enemy{
		object.NewEnemy(100, 100, 1, nil),
		object.NewEnemy(300, 100, 1, nil),
	}
	// Two bullets on the first enemy: only one of them may take it.
	s.bullets[0] = []*object.Bullet{
		object.NewBullet(0, 110, 120, nil),
		object.NewBullet(0, 115, 120, nil),
		object.NewBullet(0, 310, 120, nil),
	}

	s.Advance(at(0))

	if len(s.Enemies()) != 0 {
		t.Fatalf("enemies left = %d, want 0", len(s.Enemies()))
	}
	if len(s.Bullets(0)) != 1 || s.Bullets(0)[0].X != 115 {
		t.Fatalf("bullets left = %+v, want the second bullet only", s.Bullets(0))
	}
	if s.Score() != 200 || audio.played[SoundExplosion] != 2 {
		t.Fatalf("score=%d explosions=%d, want 200 and 2", s.Score(), audio.played[SoundExplosion])
	}
}

func TestDuelCollectionsResolveIndependently(t *testing.T) {
	s, _, _ := newTestSession(t, config.Duel)
	target := object.NewEnemy(100, 100, 1, nil)
	other := object.NewEnemy(300, 100, 1, nil)
	s.enemies = []*object.Enemy{target, other}
	p1 := object.NewBullet(0, 110, 120, nil)
	p2 := object.NewBullet(1, 112, 120, nil) // also on target
	p2b := object.NewBullet(1, 310, 120, nil)
	s.bullets[0] = []*object.Bullet{p1}
	s.bullets[1] = []*object.Bullet{p2, p2b}

	s.Advance(at(0))

	// Player one's pass takes target. Player two's pass then finds p2 has
	// nothing to hit and p2b takes other.
	if !p1.Released() || !target.Released() {
		t.Fatalf("player one should resolve against target")
	}
	if p2.Released() {
		t.Fatalf("player two's first bullet lost its target and should survive")
	}
	if !p2b.Released() || !other.Released() {
		t.Fatalf("player two should still get its own hit this tick")
	}
	if s.Score() != 200 {
		t.Fatalf("score = %d, want 200", s.Score())
	}
}

func TestClassicHasNoScore(t *testing.T) {
	s, _, _ := newTestSession(t, config.Classic)
	s.enemies = []*object.Enemy{object.NewEnemy(100, 100, 1, nil)}
	s.bullets[0] = []*object.Bullet{object.NewBullet(0, 110, 120, nil)}

	s.Advance(at(0))

	if len(s.Enemies()) != 0 {
		t.Fatalf("hit was not resolved")
	}
	if s.Score() != 0 {
		t.Fatalf("classic score = %d, want 0", s.Score())
	}
}

func TestSpawnCadence(t *testing.T) {
	s, _, _ := newTestSession(t, config.Scored)

	for ms := 0; ms <= 1000; ms += 250 {
		s.Advance(at(ms))
		if len(s.Enemies()) != 0 {
			t.Fatalf("enemy spawned at %dms, want none before 1000ms", ms)
		}
	}
	s.Advance(at(1001))
	if len(s.Enemies()) != 1 || s.Enemies()[0].Speed != 1 {
		t.Fatalf("first wave = %+v, want one enemy with speed 1", s.Enemies())
	}

	if got := s.spawner.Threshold(20 * time.Second); got != 900*time.Millisecond {
		t.Fatalf("threshold at 20s = %v, want 900ms", got)
	}

	s2, _, _ := newTestSession(t, config.Scored)
	s2.spawner = object.NewSpawner(epoch, config.ScreenWidth, true, rand.New(rand.NewSource(1)))
	s2.Advance(at(20000))
	if len(s2.Enemies()) != 5 {
		t.Fatalf("wave at 20s = %d enemies, want 5", len(s2.Enemies()))
	}
	for _, e := range s2.Enemies() {
		if e.Speed != 3 {
			t.Fatalf("enemy speed at 20s = %d, want 3", e.Speed)
		}
	}
}

func TestSteerFiresWithCooldown(t *testing.T) {
	s, assets, audio := newTestSession(t, config.Classic)
	fire := object.Controls{Fire: true}

	s.Steer(0, fire, at(0))
	s.Steer(0, fire, at(100))
	s.Steer(0, fire, at(300))
	s.Steer(0, fire, at(301))

	if len(s.Bullets(0)) != 2 {
		t.Fatalf("bullets = %d, want 2", len(s.Bullets(0)))
	}
	if audio.played[SoundShoot] != 2 {
		t.Fatalf("shoot sounds = %d, want 2", audio.played[SoundShoot])
	}
	if assets.count(object.SpriteBullet) != 2 {
		t.Fatalf("bullet sprites = %d, want 2", assets.count(object.SpriteBullet))
	}

	// Out of range players are ignored.
	s.Steer(1, fire, at(1000))
	if s.Bullets(1) != nil {
		t.Fatalf("classic has no second player")
	}
}

func TestSteerMovesOnlyThatPlayer(t *testing.T) {
	s, _, _ := newTestSession(t, config.Duel)
	x0, x1 := s.Players()[0].X, s.Players()[1].X

	s.Steer(1, object.Controls{Left: true}, at(0))

	if s.Players()[0].X != x0 {
		t.Fatalf("player one moved")
	}
	if s.Players()[1].X != x1-config.PlayerSpeed {
		t.Fatalf("player two x = %d, want %d", s.Players()[1].X, x1-config.PlayerSpeed)
	}
}

func TestGameOverWithoutPlayerAction(t *testing.T) {
	s, assets, _ := newTestSession(t, config.Classic)

	ends := 0
	lives := s.Lives()
	tick := 0
	for ; s.Running() && tick < 100000; tick++ {
		if s.Advance(at(tick * 16)) {
			ends++
		}
		if s.Lives() > lives {
			t.Fatalf("lives went up at tick %d", tick)
		}
		if s.Running() && s.Lives() < 0 {
			t.Fatalf("negative lives while running")
		}
		lives = s.Lives()
	}

	if s.Running() {
		t.Fatalf("session still running after %d ticks", tick)
	}
	if ends != 1 {
		t.Fatalf("game over reported %d times, want 1", ends)
	}
	if s.Lives() != 0 {
		t.Fatalf("lives = %d, want 0", s.Lives())
	}
	if s.Advance(at(tick * 16)) {
		t.Fatalf("Advance after game over reported another end")
	}

	s.Close()
	for _, sp := range assets.handed {
		if sp.releases != 1 {
			t.Fatalf("%s sprite released %d times, want 1", sp.name, sp.releases)
		}
	}
}

func TestQuitStopsTicks(t *testing.T) {
	s, _, _ := newTestSession(t, config.Classic)
	s.enemies = []*object.Enemy{object.NewEnemy(0, 0, 1, nil)}
	s.Quit()

	if s.Advance(at(5000)) {
		t.Fatalf("quit session reported game over")
	}
	if s.Enemies()[0].Y != 0 {
		t.Fatalf("quit session kept simulating")
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	s, assets, _ := newTestSession(t, config.Duel)
	s.Steer(0, object.Controls{Fire: true}, at(0))
	s.Steer(1, object.Controls{Fire: true}, at(0))
	s.Advance(at(1001))

	s.Close()
	s.Close()

	if len(assets.handed) < 4 {
		t.Fatalf("expected ships, bullets and an enemy to be handed out, got %d", len(assets.handed))
	}
	for _, sp := range assets.handed {
		if sp.releases != 1 {
			t.Fatalf("%s released %d times, want 1", sp.name, sp.releases)
		}
	}
	if s.Running() {
		t.Fatalf("closed session still running")
	}
}
