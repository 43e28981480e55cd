// internal/termui/sound.go
package termui

import (
	"sync"
	"time"

	"castle-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var eventTones = map[event.EventType]Tone{
	event.TowerPlaced:   {Freq: 660, Duration: 40 * time.Millisecond},
	event.EnemyKilled:   {Freq: 880, Duration: 50 * time.Millisecond},
	event.EnemyBreached: {Freq: 220, Duration: 150 * time.Millisecond},
	event.GameOver:      {Freq: 110, Duration: 600 * time.Millisecond},
}

// ToneFor returns the tone played for an event type, if any.
func ToneFor(t event.EventType) (Tone, bool) {
	tone, ok := eventTones[t]
	return tone, ok
}

// SoundManager plays event tones through a shared mixer.
// Without Initialize every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. The game runs fine if this fails.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a tone on the mixer.
func (sm *SoundManager) Play(tone Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(tone.Duration), sine))
	speaker.Unlock()
}

// OnEvent makes SoundManager an event listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if tone, ok := ToneFor(e.Type); ok {
		sm.Play(tone)
	}
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
