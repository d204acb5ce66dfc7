// Package wire is the JSON protocol between a browser canvas and a
// server-side scene: the browser sends input and commands, the server
// answers with batches of draw operations.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/input"
)

// Client message types.
const (
	TypeResize  = "resize"
	TypeInput   = "input"
	TypeCommand = "command"
)

// Server message types.
const (
	TypeFrame  = "frame"
	TypeStatus = "status"
	TypeError  = "error"
)

// ClientMessage is anything the browser sends.
type ClientMessage struct {
	Type string  `json:"type"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`

	Event *input.Event `json:"event,omitempty"`

	Name string `json:"name,omitempty"`
	Arg  string `json:"arg,omitempty"`
}

// MaxSurface bounds either side of a resized surface, in pixels.
const MaxSurface = 16384

// Decode parses and checks a client message.
func Decode(data []byte) (ClientMessage, error) {
	var m ClientMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decode message: %w", err)
	}
	switch m.Type {
	case TypeResize:
		if !finite(m.W) || !finite(m.H) || m.W < 0 || m.H < 0 || m.W > MaxSurface || m.H > MaxSurface {
			return m, fmt.Errorf("bad resize %vx%v", m.W, m.H)
		}
	case TypeInput:
		if m.Event == nil {
			return m, errors.New("input message without event")
		}
	case TypeCommand:
		if m.Name == "" {
			return m, errors.New("command message without name")
		}
	default:
		return m, fmt.Errorf("unknown message type %q", m.Type)
	}
	return m, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Op is one draw call. Coordinates are rounded to tenths of a pixel to
// keep frames small.
type Op struct {
	Op    string  `json:"op"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	X2    float64 `json:"x2,omitempty"`
	Y2    float64 `json:"y2,omitempty"`
	R     float64 `json:"r,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Text  string  `json:"text,omitempty"`
	Color string  `json:"color,omitempty"`
	Alpha float64 `json:"alpha,omitempty"`
}

// Frame is one painted frame.
type Frame struct {
	Type string `json:"type"`
	Seq  uint64 `json:"seq"`
	Ops  []Op   `json:"ops"`
}

// Status carries scene state for page widgets outside the canvas.
type Status struct {
	Type  string `json:"type"`
	Scene string `json:"scene"`
	Text  string `json:"text"`
}

// Error reports a rejected client message.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(err error) Error {
	return Error{Type: TypeError, Message: err.Error()}
}

// Recorder is a canvas that records draw calls into frames.
type Recorder struct {
	w, h float64
	seq  uint64
	ops  []Op
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Resize(w, h float64) { r.w, r.h = w, h }

func (r *Recorder) Size() (float64, float64) { return r.w, r.h }

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.ops = append(r.ops, Op{Op: "clear"})
}

func (r *Recorder) Circle(x, y, rad float64, c colorful.Color, alpha float64) {
	r.add(Op{Op: "circle", X: round(x), Y: round(y), R: round(rad), Color: c.Hex(), Alpha: alpha})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c colorful.Color, alpha float64) {
	r.add(Op{Op: "line", X: round(x1), Y: round(y1), X2: round(x2), Y2: round(y2), Color: c.Hex(), Alpha: alpha})
}

func (r *Recorder) Glyph(x, y float64, text string, c colorful.Color, alpha float64) {
	r.add(Op{Op: "text", X: round(x), Y: round(y), Text: text, Color: c.Hex(), Alpha: alpha})
}

func (r *Recorder) Rect(x, y, w, h float64, c colorful.Color, alpha float64) {
	r.add(Op{Op: "rect", X: round(x), Y: round(y), W: round(w), H: round(h), Color: c.Hex(), Alpha: alpha})
}

func (r *Recorder) add(op Op) {
	op.Alpha = math.Round(clamp01(op.Alpha)*1000) / 1000
	if op.Alpha == 0 {
		return
	}
	r.ops = append(r.ops, op)
}

// Len is the number of ops recorded for the current frame.
func (r *Recorder) Len() int { return len(r.ops) }

// Flush returns the recorded frame and starts an empty one. The returned
// ops are a copy.
func (r *Recorder) Flush() Frame {
	r.seq++
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	r.ops = r.ops[:0]
	return Frame{Type: TypeFrame, Seq: r.seq, Ops: ops}
}

func round(v float64) float64 { return math.Round(v*10) / 10 }

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
