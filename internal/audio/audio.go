package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Sounds plays the game's sound effects. The zero value is silent.
type Sounds struct {
	enabled bool
}

// Init opens the speaker. On failure the returned Sounds is silent and
// the error says why.
func Init() (*Sounds, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return &Sounds{}, errors.Wrap(err, "init speaker")
	}
	return &Sounds{enabled: true}, nil
}

// Close shuts down the speaker
func (s *Sounds) Close() {
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
}

// Enabled reports whether sounds are audible
func (s *Sounds) Enabled() bool {
	return s.enabled
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// note is one step of a jingle
type note struct {
	freq     float64
	duration time.Duration
}

// jingle plays notes back to back with a short gap between them
func jingle(notes ...note) beep.Streamer {
	gap := sampleRate.N(20 * time.Millisecond)
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for i, n := range notes {
		if i > 0 {
			parts = append(parts, beep.Silence(gap))
		}
		parts = append(parts, squareWave(n.freq, n.duration))
	}
	return beep.Seq(parts...)
}

var (
	paddleHit  = []note{{880, 50 * time.Millisecond}}
	wallBounce = []note{{440, 30 * time.Millisecond}}
	point      = []note{
		{660, 100 * time.Millisecond},
		{440, 100 * time.Millisecond},
		{330, 150 * time.Millisecond},
	}
	gameOver = []note{
		{523, 120 * time.Millisecond},
		{392, 120 * time.Millisecond},
		{330, 120 * time.Millisecond},
		{262, 300 * time.Millisecond},
	}
)

func (s *Sounds) play(notes []note) {
	if !s.enabled {
		return
	}
	speaker.Play(jingle(notes...))
}

// PaddleHit plays the sound for ball hitting a paddle
func (s *Sounds) PaddleHit() { s.play(paddleHit) }

// WallBounce plays the sound for ball hitting top/bottom wall
func (s *Sounds) WallBounce() { s.play(wallBounce) }

// Point plays the descending tone when either side scores
func (s *Sounds) Point() { s.play(point) }

// GameOver plays the closing jingle
func (s *Sounds) GameOver() { s.play(gameOver) }
