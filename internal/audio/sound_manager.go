// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and mixes the game's procedural sounds.
// Initialization failure leaves the manager in silent mode; every Play call
// is then a no-op, so audio can never take the game down.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close call in beep.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayMerge plays the merge ding, pitched by the resulting tier.
func (sm *SoundManager) PlayMerge(tier int) {
	sm.play(newTone(sampleRate, mergeFreq(tier), 0.28, 0.25))
}

// PlayCoin plays a short high blip for coin gains.
func (sm *SoundManager) PlayCoin() {
	sm.play(newTone(sampleRate, 1318, 0.08, 0.15))
}

// PlayPlace plays a low thud for a successful placement.
func (sm *SoundManager) PlayPlace() {
	sm.play(newTone(sampleRate, 180, 0.1, 0.2))
}

// PlayError plays a buzz for a rejected placement.
func (sm *SoundManager) PlayError() {
	sm.play(newTone(sampleRate, 110, 0.15, 0.2))
}
