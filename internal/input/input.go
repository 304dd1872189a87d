// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"

	"github.com/tomz197/shooter/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 30 * time.Millisecond

// Keys is one cluster of directional keys.
type Keys struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Space  bool
	Enter  bool
	Arrows Keys // Arrow keys and IJKL
	WASD   Keys
}

// Controls maps the frame's keys to the controls of one player.
// A lone player may use either key cluster and fires with space.
// With two players, player one has WASD and space, player two has the
// arrows (or IJKL) and enter.
func (in Input) Controls(player, players int) object.Controls {
	var keys Keys
	var fire bool
	switch {
	case players < 2:
		keys = Keys{
			Left:  in.Arrows.Left || in.WASD.Left,
			Right: in.Arrows.Right || in.WASD.Right,
			Up:    in.Arrows.Up || in.WASD.Up,
			Down:  in.Arrows.Down || in.WASD.Down,
		}
		fire = in.Space
	case player == 0:
		keys, fire = in.WASD, in.Space
	default:
		keys, fire = in.Arrows, in.Enter
	}
	return object.Controls{
		Left:  keys.Left,
		Right: keys.Right,
		Up:    keys.Up,
		Down:  keys.Down,
		Fire:  fire,
	}
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	space time.Time
	enter time.Time

	arrowLeft  time.Time
	arrowRight time.Time
	arrowUp    time.Time
	arrowDown  time.Time

	wasdLeft  time.Time
	wasdRight time.Time
	wasdUp    time.Time
	wasdDown  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool

	done     chan struct{} // Closed by Stop
	stopOnce sync.Once
	exited   chan struct{} // Closed when the reader goroutine returns
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// Call Stop once the stream is no longer drained.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:     make(chan byte, 128),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(s.exited)
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine. It returns at its next byte or at
// EOF, whichever comes first. Stop may be called more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// A closed stream (EOF on the reader) reports Quit.
func ReadInput(s *Stream) Input {
	now := time.Now()
	s.apply(s.drain(), now)
	return s.snapshot(now)
}

// drain collects every byte that is ready without blocking.
func (s *Stream) drain() []byte {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// apply parses buf and stamps the keys it contains with now.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.arrowUp = now
			case 'B':
				s.state.arrowDown = now
			case 'C':
				s.state.arrowRight = now
			case 'D':
				s.state.arrowLeft = now
			}
			i += 2
			continue
		}

		applyByteToState(&s.state, b, now)
	}
}

// snapshot builds the frame's input: keys are "pressed" if seen within
// the hold duration.
func (s *Stream) snapshot(now time.Time) Input {
	held := func(t time.Time) bool {
		return now.Sub(t) < keyHoldDuration
	}
	return Input{
		Quit:  s.closed || held(s.state.quit),
		Space: held(s.state.space),
		Enter: held(s.state.enter),
		Arrows: Keys{
			Left:  held(s.state.arrowLeft),
			Right: held(s.state.arrowRight),
			Up:    held(s.state.arrowUp),
			Down:  held(s.state.arrowDown),
		},
		WASD: Keys{
			Left:  held(s.state.wasdLeft),
			Right: held(s.state.wasdRight),
			Up:    held(s.state.wasdUp),
			Down:  held(s.state.wasdDown),
		},
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A':
		state.wasdLeft = now
	case 'd', 'D':
		state.wasdRight = now
	case 'w', 'W':
		state.wasdUp = now
	case 's', 'S':
		state.wasdDown = now
	case 'j', 'J':
		state.arrowLeft = now
	case 'l', 'L':
		state.arrowRight = now
	case 'i', 'I':
		state.arrowUp = now
	case 'k', 'K':
		state.arrowDown = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
