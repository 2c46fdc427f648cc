package audio

import (
	"testing"
	"time"
)

// drain reads a streamer to the end and returns every sample
func drain(t *testing.T, notes []note) [][2]float64 {
	t.Helper()
	s := jingle(notes...)

	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestSquareWave_Length(t *testing.T) {
	samples := drain(t, []note{{440, 10 * time.Millisecond}})

	want := sampleRate.N(10 * time.Millisecond)
	if len(samples) != want {
		t.Errorf("expected %d samples, got %d", want, len(samples))
	}
}

func TestSquareWave_Levels(t *testing.T) {
	samples := drain(t, []note{{440, 20 * time.Millisecond}})

	var high, low int
	for _, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("expected mono output, got %v", s)
		}
		switch s[0] {
		case volume:
			high++
		case -volume:
			low++
		default:
			t.Fatalf("unexpected level %f", s[0])
		}
	}
	if high == 0 || low == 0 {
		t.Errorf("expected both levels, got high=%d low=%d", high, low)
	}
}

func TestJingle_IncludesGaps(t *testing.T) {
	samples := drain(t, point)

	want := 0
	for _, n := range point {
		want += sampleRate.N(n.duration)
	}
	want += (len(point) - 1) * sampleRate.N(20*time.Millisecond)

	if len(samples) != want {
		t.Errorf("expected %d samples, got %d", want, len(samples))
	}
}

func TestSounds_ZeroValueIsSilent(t *testing.T) {
	var s Sounds

	if s.Enabled() {
		t.Error("zero value should be disabled")
	}

	// Must not touch the speaker
	s.PaddleHit()
	s.WallBounce()
	s.Point()
	s.GameOver()
	s.Close()
}
