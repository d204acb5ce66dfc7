package scene

import (
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/model"
	"github.com/Zachkp/folio/internal/particle"
)

// Viewer limits and camera.
const (
	MinScale     = 0.5
	MaxScale     = 5
	defaultScale = 2

	cameraDistance = 5
	fieldOfView    = 50 * math.Pi / 180
	// one orbit every 30 s at 60 fps
	autoRotateStep = 2 * math.Pi / (30 * 60)
	dragSpeed      = 0.01
	maxPitch       = math.Pi / 2
)

var (
	modelColor = particle.MustHex("#3b82f6")
	errorColor = particle.MustHex("#3b82f6")
	hintColor  = particle.MustHex("#9ca3af")
)

// Viewer is the wireframe 3D model toy: it spins on its own and follows
// pointer drags. A model that fails to load leaves the viewer showing the
// error with its driver never started.
type Viewer struct {
	opts   Options
	in     *input.State
	driver *frame.Driver
	mesh   *model.Mesh
	err    error
	w, h   float64

	yaw, pitch float64
	scale      float64
	color      colorful.Color
	auto       bool
	last       input.Pointer
	dragging   bool
}

func NewViewer(opts Options) *Viewer {
	opts.defaults()
	v := &Viewer{opts: opts, in: input.New()}
	v.reset()
	v.driver = frame.NewDriver(opts.Scheduler, frame.Hooks{
		Update:   v.update,
		Render:   v.render,
		Teardown: v.teardown,
	})
	return v
}

func (v *Viewer) Name() string          { return "model" }
func (v *Viewer) Driver() *frame.Driver { return v.driver }

// Err is the load failure, if any.
func (v *Viewer) Err() error { return v.err }

func (v *Viewer) Mount(w, h float64) {
	v.w, v.h = w, h
	v.mesh, v.err = model.Load(v.opts.ModelPath)
	if v.err != nil {
		log.Printf("3D viewer disabled: %v", v.err)
		v.render()
		return
	}
	v.driver.Mount()
}

func (v *Viewer) Resize(w, h float64) {
	v.w, v.h = w, h
	if v.err != nil {
		v.render()
	}
}

func (v *Viewer) Unmount() { v.driver.Unmount() }

func (v *Viewer) Handle(ev input.Event) {
	if v.err != nil {
		return
	}
	v.in.Apply(ev)
}

func (v *Viewer) Command(name, arg string) error {
	if v.err != nil {
		return fmt.Errorf("3D model unavailable: %w", v.err)
	}
	switch name {
	case "scale":
		s, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(s) {
			return fmt.Errorf("scale: bad value %q", arg)
		}
		v.SetScale(s)
	case "zoom":
		switch arg {
		case "in":
			v.SetScale(v.scale + 0.5)
		case "out":
			v.SetScale(v.scale - 0.5)
		default:
			return fmt.Errorf("zoom: want in or out, got %q", arg)
		}
	case "color":
		c, err := colorful.Hex(arg)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		v.color = c
	case "rotate":
		v.auto = !v.auto
	case "reset":
		v.yaw, v.pitch = 0, 0
	default:
		return &ErrUnknownCommand{Scene: v.Name(), Name: name}
	}
	return nil
}

func (v *Viewer) SetScale(s float64) {
	v.scale = max(MinScale, min(MaxScale, s))
}

func (v *Viewer) Status() string {
	if v.err != nil {
		return "model · failed to load"
	}
	rotate := "off"
	if v.auto {
		rotate = "on"
	}
	name := ""
	if v.mesh != nil {
		name = v.mesh.Name
	}
	return fmt.Sprintf("model · %s · scale %.1f · auto-rotate %s", name, v.scale, rotate)
}

func (v *Viewer) reset() {
	v.yaw, v.pitch = 0, 0
	v.scale = defaultScale
	v.color = modelColor
	v.auto = true
	v.dragging = false
}

func (v *Viewer) update() {
	p := v.in.Pointer()
	if !p.Active {
		v.dragging = false
		if v.auto {
			v.yaw = math.Mod(v.yaw+autoRotateStep, 2*math.Pi)
		}
		return
	}
	if v.dragging {
		v.yaw += (p.X - v.last.X) * dragSpeed
		v.pitch = max(-maxPitch, min(maxPitch, v.pitch+(p.Y-v.last.Y)*dragSpeed))
	}
	v.last = p
	v.dragging = true
}

// project maps a model-space point to canvas pixels with a pinhole camera
// on the +Z axis.
func (v *Viewer) project(p model.Vec3) (x, y float64, ok bool) {
	p = p.RotateY(v.yaw).RotateX(v.pitch)
	k := v.scale / 2
	depth := cameraDistance - p.Z*k
	if depth < 0.1 {
		return 0, 0, false
	}
	f := min(v.w, v.h) / 2 / math.Tan(fieldOfView/2)
	return v.w/2 + f*p.X*k/depth, v.h/2 - f*p.Y*k/depth, true
}

func (v *Viewer) render() {
	c := v.opts.Surface
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	c.Clear()

	if v.err != nil {
		c.Glyph(w/2, h/2, "Failed to load 3D model: "+v.err.Error(), errorColor, 1)
		c.Glyph(w/2, h/2+24, "Please try refreshing the page", hintColor, 1)
		v.opts.flushed()
		return
	}
	if v.mesh == nil {
		return
	}
	for _, e := range v.mesh.Edges {
		x1, y1, ok1 := v.project(v.mesh.Vertices[e[0]])
		x2, y2, ok2 := v.project(v.mesh.Vertices[e[1]])
		if ok1 && ok2 {
			c.Line(x1, y1, x2, y2, v.color, 1)
		}
	}
	v.opts.flushed()
}

func (v *Viewer) teardown() {
	v.mesh = nil
	v.in.Reset()
	v.reset()
}
