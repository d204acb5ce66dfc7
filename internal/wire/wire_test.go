package wire

import (
	"encoding/json"
	"testing"

	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"resize", `{"type":"resize","w":640,"h":480}`, false},
		{"negative resize", `{"type":"resize","w":-1,"h":480}`, true},
		{"largest resize", `{"type":"resize","w":16384,"h":16384}`, false},
		{"oversized resize", `{"type":"resize","w":40000,"h":40000}`, true},
		{"input", `{"type":"input","event":{"type":"down","x":3,"y":4}}`, false},
		{"input without event", `{"type":"input"}`, true},
		{"command", `{"type":"command","name":"mode","arg":"vortex"}`, false},
		{"command without name", `{"type":"command"}`, true},
		{"unknown type", `{"type":"launch"}`, true},
		{"not json", `{`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("Decode(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeInputEvent(t *testing.T) {
	m, err := Decode([]byte(`{"type":"input","event":{"type":"keydown","key":"ArrowLeft"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Event.Type != input.EventKeyDown || m.Event.Key != input.KeyLeft {
		t.Errorf("Unexpected event %+v", *m.Event)
	}
}

func TestRecorderFrames(t *testing.T) {
	r := NewRecorder(100, 50)
	red := particle.MustHex("#ff0000")

	r.Clear()
	r.Circle(10.04, 20.06, 3, red, 0.5)
	r.Line(0, 0, 1, 1, red, 0)
	r.Glyph(5, 5, "JS", red, 2)

	f := r.Flush()
	if f.Type != TypeFrame || f.Seq != 1 {
		t.Errorf("Unexpected frame header %+v", f)
	}
	if len(f.Ops) != 3 {
		t.Fatalf("Expected clear, circle and text (invisible line dropped), got %+v", f.Ops)
	}
	c := f.Ops[1]
	if c.X != 10 || c.Y != 20.1 || c.Color != "#ff0000" || c.Alpha != 0.5 {
		t.Errorf("Unexpected circle op %+v", c)
	}
	if f.Ops[2].Alpha != 1 {
		t.Errorf("Expected alpha clamped to 1, got %v", f.Ops[2].Alpha)
	}
	if r.Len() != 0 {
		t.Error("Expected Flush to empty the recorder")
	}

	r.Clear()
	r.Rect(1, 2, 3, 4, red, 1)
	f2 := r.Flush()
	if f2.Seq != 2 || len(f2.Ops) != 2 {
		t.Errorf("Unexpected second frame %+v", f2)
	}
	if len(f.Ops) != 3 {
		t.Error("Flushed frames must not share storage with later ones")
	}
}

func TestFrameJSON(t *testing.T) {
	r := NewRecorder(10, 10)
	r.Clear()
	data, err := json.Marshal(r.Flush())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"frame","seq":1,"ops":[{"op":"clear"}]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}
