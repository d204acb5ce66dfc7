package main

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
	"github.com/Zachkp/folio/internal/termcanvas"
)

const (
	hudRows = 2
	// keyHold is how long a tapped key counts as held; terminal key
	// repeat arrives well inside it.
	keyHold = 150 * time.Millisecond
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run a scene in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	// Restore the terminal even if a scene panics
	defer func() {
		if p := recover(); p != nil {
			screen.Fini()
			panic(p)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	canvas := termcanvas.New(screen, hudRows)
	r, err := newRig(cmd.Context(), opts, canvas)
	if err != nil {
		return err
	}
	defer r.close()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	interval := frame.Interval(opts.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.scene.Mount(canvas.Size())
	latch := termcanvas.NewKeyLatch(keyHold)
	held := false
	hudColor := particle.MustHex("#94a3b8")

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				r.scene.Resize(canvas.Size())
				continue
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			}
			for _, in := range canvas.Translate(ev, held) {
				switch in.Type {
				case input.EventDown:
					held = true
				case input.EventUp:
					held = false
				case input.EventKeyDown:
					used, err := r.control(in.Key)
					if errors.Is(err, errQuit) {
						return nil
					}
					if err != nil {
						log.Printf("Key %q: %v", in.Key, err)
					}
					if used {
						continue
					}
					latch.Tap(in.Key, r.pump.Elapsed())
				}
				r.handle(in)
			}
		case <-ticker.C:
			r.pump.Advance(interval)
			for _, k := range latch.Expired(r.pump.Elapsed()) {
				r.handle(input.Event{Type: input.EventKeyUp, Key: k})
			}
			r.cursor.Step(r.pointer.Pointer(), r.seen)
			// Idle scenes are not repainted, so a moving cursor would smear.
			if r.scene.Driver().State() == frame.Running {
				r.cursor.Draw(canvas)
			}
			for i, line := range r.hudLines() {
				canvas.HUD(i, line, hudColor)
			}
			screen.Show()
		}
	}
}
