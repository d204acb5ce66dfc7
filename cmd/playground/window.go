package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/wincanvas"
)

var windowSize struct{ w, h int }

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run a scene in a desktop window",
	Args:  cobra.NoArgs,
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.Flags().IntVar(&windowSize.w, "width", 960, "window width")
	windowCmd.Flags().IntVar(&windowSize.h, "height", 640, "window height")
}

func runWindow(cmd *cobra.Command, args []string) error {
	canvas := wincanvas.New()
	r, err := newRig(cmd.Context(), opts, canvas)
	if err != nil {
		return err
	}
	defer r.close()

	host := &wincanvas.Host{
		Scene:  r.scene,
		Pump:   r.pump,
		Canvas: canvas,
		Cursor: r.cursor,
		HUD:    r.hudLines,
		Tick:   frame.Interval(opts.fps),
		Hotkey: func(k input.Key) (bool, error) {
			used, err := r.control(k)
			if errors.Is(err, errQuit) {
				return true, ebiten.Termination
			}
			if err != nil {
				log.Printf("Key %q: %v", k, err)
			}
			return used, nil
		},
	}

	ebiten.SetWindowSize(windowSize.w, windowSize.h)
	ebiten.SetWindowTitle("folio · " + r.scene.Name())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.fps)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
