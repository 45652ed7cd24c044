package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ashenfell/brawlarc/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cues maps simulation events to short synthesized stingers. Audio is a
// pure observer: initialization failure or muting degrades to silence,
// the simulation never notices.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCues creates a silent cue player; call Initialize to open the device.
func NewCues(muted bool) *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker. Failure leaves the player disabled.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || c.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences and releases the mixer.
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

// HandleEvent plays the stinger for a simulation event, if any.
func (c *Cues) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventHitLanded:
		c.playHit()
	case event.EventEntityKilled:
		c.playKill()
	case event.EventAbilityActivated:
		c.playAbility()
	case event.EventWaveStarted:
		c.playWave()
	case event.EventBossSpawned, event.EventBossPhase:
		c.playBoss()
	case event.EventPurchaseResolved:
		if p, ok := ev.Payload.(*event.PurchasePayload); ok {
			if p.Accepted {
				c.playPurchase()
			} else {
				c.playReject()
			}
		}
	case event.EventSessionEnded:
		c.playGameOver()
	}
}

func (c *Cues) add(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.mixer.Add(s)
}

func (c *Cues) playHit() {
	d := time.Millisecond * 60
	c.add(NewEnvelope(NewOscillator(220, d, WaveSquare, sampleRate), d, time.Millisecond*2, time.Millisecond*40, sampleRate))
}

func (c *Cues) playKill() {
	d := time.Millisecond * 140
	c.add(NewEnvelope(NewSweep(440, 110, d, sampleRate), d, time.Millisecond*4, time.Millisecond*80, sampleRate))
}

func (c *Cues) playAbility() {
	d := time.Millisecond * 220
	c.add(NewEnvelope(NewSweep(330, 990, d, sampleRate), d, time.Millisecond*10, time.Millisecond*90, sampleRate))
}

func (c *Cues) playWave() {
	d := time.Millisecond * 180
	c.add(NewEnvelope(NewOscillator(660, d, WaveSine, sampleRate), d, time.Millisecond*10, time.Millisecond*100, sampleRate))
}

func (c *Cues) playBoss() {
	d := time.Millisecond * 400
	c.add(NewEnvelope(NewSweep(160, 80, d, sampleRate), d, time.Millisecond*20, time.Millisecond*200, sampleRate))
}

func (c *Cues) playPurchase() {
	d := time.Millisecond * 120
	c.add(NewEnvelope(NewOscillator(880, d, WaveSine, sampleRate), d, time.Millisecond*5, time.Millisecond*70, sampleRate))
}

func (c *Cues) playReject() {
	d := time.Millisecond * 150
	c.add(NewEnvelope(NewOscillator(120, d, WaveSaw, sampleRate), d, time.Millisecond*2, time.Millisecond*90, sampleRate))
}

func (c *Cues) playGameOver() {
	d := time.Millisecond * 700
	c.add(NewEnvelope(NewSweep(440, 55, d, sampleRate), d, time.Millisecond*10, time.Millisecond*350, sampleRate))
}
