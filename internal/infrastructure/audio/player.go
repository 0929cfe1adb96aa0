// Package audio plays short synthesized feedback sounds for menu navigation
// through the beep mixer. A nil *Player is valid and silent, so screens can
// take sounds as an optional collaborator.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and a mixer that short tones are queued into.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player; call Initialize before use.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer.
func (p *Player) Cleanup() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// MenuMove plays the selection-moved blip.
func (p *Player) MenuMove() {
	p.play(660, time.Millisecond*40, 0.4)
}

// MenuSelect plays the confirm blip.
func (p *Player) MenuSelect() {
	p.play(880, time.Millisecond*80, 0.5)
}

// MenuCancel plays the cancel/back blip.
func (p *Player) MenuCancel() {
	p.play(330, time.Millisecond*80, 0.5)
}

func (p *Player) play(freq float64, d time.Duration, volume float64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	// The speaker goroutine streams from the mixer; mutations must hold the
	// speaker lock, not just our own.
	speaker.Lock()
	p.mixer.Add(newTone(sampleRate, freq, sampleRate.N(d), volume))
	speaker.Unlock()
}
