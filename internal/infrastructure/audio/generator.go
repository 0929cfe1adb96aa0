package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// toneStreamer synthesizes a sine blip with a short attack/release envelope,
// so menu feedback needs no audio assets.
type toneStreamer struct {
	freq    float64
	volume  float64
	pos     int
	total   int
	attack  int
	release int
	sr      beep.SampleRate
}

// newTone creates a finite sine tone at the given frequency and duration in
// samples.
func newTone(sr beep.SampleRate, freq float64, samples int, volume float64) *toneStreamer {
	env := samples / 8
	if env < 1 {
		env = 1
	}
	return &toneStreamer{
		freq:    freq,
		volume:  volume,
		total:   samples,
		attack:  env,
		release: env,
		sr:      sr,
	}
}

// Stream implements beep.Streamer.
func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		phase := float64(t.pos) * t.freq / float64(t.sr)
		v := math.Sin(2*math.Pi*phase) * t.volume * t.envelope()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (t *toneStreamer) Err() error { return nil }

// envelope returns the gain at the current position: linear attack in,
// linear release out, unity in between.
func (t *toneStreamer) envelope() float64 {
	if t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if rem := t.total - t.pos; rem < t.release {
		return float64(rem) / float64(t.release)
	}
	return 1
}
