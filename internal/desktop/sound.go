package desktop

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/tomz197/shooter/internal/game"
)

const sampleRate = 44100

// Sound files looked up in the asset directory.
var soundFiles = map[string]string{
	game.SoundShoot:     "shoot.wav",
	game.SoundExplosion: "explosion.wav",
}

var musicFile = game.MusicBackground + ".mp3"

// Mixer plays short effects and loops the background music.
type Mixer struct {
	ctx     *audio.Context
	effects map[string][]byte // Decoded 16-bit stereo PCM
	music   *audio.Player
	logger  *log.Logger
}

// LoadMixer decodes the effects in dir. Effects are required; the music
// file is optional, as a missing track only means silence.
func LoadMixer(ctx *audio.Context, dir string, logger *log.Logger) (*Mixer, error) {
	m := &Mixer{ctx: ctx, effects: make(map[string][]byte), logger: logger}
	for name, file := range soundFiles {
		pcm, err := decodeWav(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		m.effects[name] = pcm
	}

	data, err := os.ReadFile(filepath.Join(dir, musicFile))
	if err != nil {
		logger.Warn("no background music", "err", err)
		return m, nil
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", musicFile, err)
	}
	m.music, err = ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	return m, nil
}

// BeepMixer synthesizes effects instead of loading them.
func BeepMixer(ctx *audio.Context, logger *log.Logger) *Mixer {
	return &Mixer{
		ctx: ctx,
		effects: map[string][]byte{
			game.SoundShoot:     Beep(950, 0.07),
			game.SoundExplosion: Beep(240, 0.12),
		},
		logger: logger,
	}
}

func decodeWav(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// Play starts an effect. Effects overlap; unknown names are ignored.
func (m *Mixer) Play(name string) {
	pcm, ok := m.effects[name]
	if !ok {
		m.logger.Debug("unknown sound", "name", name)
		return
	}
	m.ctx.NewPlayerFromBytes(pcm).Play()
}

// StartMusic loops the background track, if one was loaded.
func (m *Mixer) StartMusic() {
	if m.music != nil {
		m.music.Play()
	}
}

// Close stops the music.
func (m *Mixer) Close() error {
	if m.music == nil {
		return nil
	}
	return m.music.Close()
}

// Beep returns a sine tone as 16-bit little-endian stereo PCM.
func Beep(freq, seconds float64) []byte {
	n := int(sampleRate * seconds)
	pcm := make([]byte, n*4)
	const amp = 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		s := int16(v * amp * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			pcm[4*i+2*ch] = byte(s)
			pcm[4*i+2*ch+1] = byte(s >> 8)
		}
	}
	return pcm
}

var _ game.Audio = (*Mixer)(nil)
