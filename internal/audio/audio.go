// Package audio plays the short blips of the terminal and window hosts.
// Sound is optional: when the speaker cannot start, every call is a no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	blipLength = 60 * time.Millisecond
	baseFreq   = 440.0
)

type Player struct {
	mu    sync.Mutex
	ready bool
	mixer *beep.Mixer
}

func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init starts the speaker. Callers should log the error and carry on
// without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Collect plays a blip pitched by how many points the item was worth.
func (p *Player) Collect(points int) {
	p.play(Freq(points), blipLength)
}

// GameOver plays a low tone.
func (p *Player) GameOver() {
	p.play(baseFreq/2, 4*blipLength)
}

func (p *Player) play(freq float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	s, err := Blip(freq, d)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// Freq maps an item's points to a pitch, a fifth higher per point.
func Freq(points int) float64 {
	f := baseFreq
	for i := 1; i < points; i++ {
		f *= 1.5
	}
	return f
}

// Blip is a quiet sine tone of length d.
func Blip(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}
