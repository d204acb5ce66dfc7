package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/Zachkp/folio/internal/audio"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/cursor"
	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/game"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/scene"
	"github.com/Zachkp/folio/internal/store"
)

const counterSpan = 2 * time.Second

// startSound opens the speaker; tests replace it.
var startSound = (*audio.Player).Init

// rig is one scene plus what both hosts draw around it: the cursor, the
// rotating tagline, the counter and the sound.
type rig struct {
	pump    *frame.Pump
	scene   scene.Scene
	hud     *frame.Driver
	joke    *content.Rotator
	counter *content.Counter
	label   string
	cursor  *cursor.Follower
	pointer input.State
	seen    bool
	sound   *audio.Player
	scores  *store.Store
	ended   bool
}

func newRig(ctx context.Context, o options, surface scene.Surface) (*rig, error) {
	r := &rig{
		pump:   frame.NewPump(),
		cursor: cursor.NewFollower(o.fps),
		sound:  audio.New(),
	}

	scores, err := store.Open(ctx, o.db)
	if err != nil {
		return nil, fmt.Errorf("open high score store: %w", err)
	}
	r.scores = scores

	r.scene, err = scene.New(o.scene, scene.Options{
		Context:     ctx,
		Scheduler:   r.pump,
		Surface:     surface,
		Rand:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		Scores:      scores,
		ModelPath:   o.model,
		AfterRender: r.afterRender,
		OnCollect:   func(it game.Item) { r.sound.Collect(it.Points()) },
	})
	if err != nil {
		scores.Close()
		return nil, err
	}
	if err := r.configure(o); err != nil {
		scores.Close()
		return nil, err
	}

	// The speaker starts last so no failure above leaves it open.
	if !o.mute {
		if err := startSound(r.sound); err != nil {
			log.Printf("Audio unavailable, continuing without sound: %v", err)
		}
	}

	r.hud = frame.NewDriver(r.pump, frame.Hooks{})
	r.hud.Mount()
	r.joke = content.NewRotator(content.Jokes)
	r.joke.Start(r.hud, content.JokeEvery)
	stat := content.Stats[0]
	r.label = stat.Label
	r.counter = content.NewCounter(stat.Value, stat.Suffix)
	r.counter.Start(r.hud, counterSpan)
	return r, nil
}

// configure applies the particle flags to a toy scene.
func (r *rig) configure(o options) error {
	if r.scene.Name() != "particles" {
		return nil
	}
	if o.mode != "" {
		if err := r.scene.Command("mode", o.mode); err != nil {
			return err
		}
	}
	if o.palette != "" {
		if err := r.scene.Command("palette", o.palette); err != nil {
			return err
		}
	}
	if o.count > 0 {
		if err := r.scene.Command("count", strconv.Itoa(o.count)); err != nil {
			return err
		}
	}
	return nil
}

// afterRender plays the game-over tune once per finished round.
func (r *rig) afterRender() {
	g, ok := r.scene.(*scene.Game)
	if !ok {
		return
	}
	ended := g.Session().State() == game.Ended
	if ended && !r.ended {
		r.sound.GameOver()
	}
	r.ended = ended
}

// handle forwards a host event to the scene and tracks the pointer for
// the cursor.
func (r *rig) handle(ev input.Event) {
	switch ev.Type {
	case input.EventMove, input.EventEnter, input.EventDown, input.EventUp:
		r.seen = true
	case input.EventLeave:
		r.seen = false
	}
	r.pointer.Apply(ev)
	r.scene.Handle(ev)
}

func (r *rig) hudLines() []string {
	return []string{
		r.scene.Status(),
		fmt.Sprintf("%s: %s · %s", r.label, r.counter, r.joke.Current()),
	}
}

func (r *rig) close() {
	r.scene.Unmount()
	r.hud.Unmount()
	if n := r.pump.Pending(); n != 0 {
		log.Printf("Scene %s left %d scheduled callbacks behind", r.scene.Name(), n)
	}
	r.sound.Close()
	if err := r.scores.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
}
