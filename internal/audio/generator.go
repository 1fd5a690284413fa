// internal/audio/generator.go
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// toneStreamer synthesizes a single decaying sine tone. All game sounds are
// generated procedurally; there are no audio assets.
type toneStreamer struct {
	freq   float64
	gain   float64
	pos    int
	length int
	sr     beep.SampleRate
}

// newTone creates a tone of the given frequency and duration in seconds.
func newTone(sr beep.SampleRate, freq, duration, gain float64) *toneStreamer {
	return &toneStreamer{
		freq:   freq,
		gain:   gain,
		length: int(float64(sr) * duration),
		sr:     sr,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}
		phase := float64(t.pos) / float64(t.sr)
		// Exponential decay envelope; -6 puts the tail ~50dB down.
		env := math.Exp(-6 * float64(t.pos) / float64(t.length))
		v := math.Sin(2*math.Pi*t.freq*phase) * env * t.gain
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

// mergeFreq pitches the merge ding by the resulting tier: each tier raises
// the tone by a major third.
func mergeFreq(tier int) float64 {
	return 392 * math.Pow(2, float64(tier-2)/3)
}
