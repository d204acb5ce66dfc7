package main

import (
	"errors"
	"slices"
	"strconv"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
	"github.com/Zachkp/folio/internal/scene"
)

var errQuit = errors.New("quit")

// control applies the playground hotkeys shared by both hosts:
//
//	1-4    particle mode
//	c      next palette
//	p      pause / resume
//	s      start the game
//	r      restart the game, reseed the particles or reset the model
//	a      model auto-rotate
//	z x    model zoom in / out
//	q Esc  quit
//
// It reports whether the key was consumed; unused keys go to the scene.
func (r *rig) control(k input.Key) (bool, error) {
	switch k {
	case "q", input.KeyEscape:
		return true, errQuit
	case "p":
		if r.scene.Name() == "game" {
			return true, r.scene.Command("toggle", "")
		}
		d := r.scene.Driver()
		switch d.State() {
		case frame.Running:
			d.Pause()
		case frame.Paused:
			d.Resume()
		}
		return true, nil
	case "s":
		if r.scene.Name() == "game" {
			return true, r.scene.Command("start", "")
		}
	case "r":
		switch r.scene.Name() {
		case "game":
			return true, r.scene.Command("restart", "")
		case "particles", "model":
			return true, r.scene.Command("reset", "")
		}
	case "a":
		if r.scene.Name() == "model" {
			return true, r.scene.Command("rotate", "")
		}
	case "z", "x":
		if r.scene.Name() == "model" {
			arg := "in"
			if k == "x" {
				arg = "out"
			}
			return true, r.scene.Command("zoom", arg)
		}
	case "c":
		if toy, ok := r.scene.(*scene.Toy); ok {
			names := particle.PaletteNames()
			next := (slices.Index(names, toy.Palette()) + 1) % len(names)
			return true, toy.SetPalette(names[next])
		}
	}

	if r.scene.Name() == "particles" {
		if n, err := strconv.Atoi(string(k)); err == nil && n >= 1 && n <= len(particle.Modes) {
			return true, r.scene.Command("mode", particle.Modes[n-1].String())
		}
	}
	return false, nil
}
