package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/game"
	"github.com/Zachkp/folio/internal/particle"
	"github.com/Zachkp/folio/internal/scene"
	"github.com/Zachkp/folio/internal/wire"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 15,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	sendBuffer   = 16
	inboxBuffer  = 32
	writeTimeout = 5 * time.Second
	maxMessage   = 4096
)

// sessions counts live canvas streams per scene.
type sessions struct {
	mu     sync.Mutex
	max    int
	live   map[string]int
	served atomic.Int64
	frames atomic.Int64
	drops  atomic.Int64
}

func newSessions(max int) *sessions {
	return &sessions{max: max, live: make(map[string]int)}
}

func (s *sessions) acquire(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.live {
		total += n
	}
	if s.max > 0 && total >= s.max {
		return false
	}
	s.live[name]++
	s.served.Add(1)
	return true
}

func (s *sessions) release(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live[name]--; s.live[name] <= 0 {
		delete(s.live, name)
	}
}

// SessionStats is the admin view of the streams.
type SessionStats struct {
	Live    map[string]int `json:"live"`
	Total   int            `json:"total"`
	Served  int64          `json:"served"`
	Frames  int64          `json:"frames"`
	Dropped int64          `json:"dropped"`
}

func (s *sessions) stats() SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := SessionStats{
		Live:    make(map[string]int, len(s.live)),
		Served:  s.served.Load(),
		Frames:  s.frames.Load(),
		Dropped: s.drops.Load(),
	}
	for k, v := range s.live {
		st.Live[k] = v
		st.Total += v
	}
	return st
}

// session is one scene bound to one socket. Everything except send runs
// on the goroutine pumping the scene's scheduler.
type session struct {
	scene   scene.Scene
	rec     *wire.Recorder
	send    chan []byte
	stats   *sessions
	mounted bool
}

// out queues a message for the writer, dropping it when the client is
// not keeping up.
func (ss *session) out(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error encoding %T: %v", v, err)
		return
	}
	select {
	case ss.send <- data:
	default:
		ss.stats.drops.Add(1)
	}
}

func (ss *session) flush() {
	ss.stats.frames.Add(1)
	ss.out(ss.rec.Flush())
}

func (ss *session) status() {
	ss.out(wire.Status{Type: wire.TypeStatus, Scene: ss.scene.Name(), Text: ss.scene.Status()})
}

func (ss *session) handle(m wire.ClientMessage) {
	switch m.Type {
	case wire.TypeResize:
		ss.rec.Resize(m.W, m.H)
		if !ss.mounted {
			ss.scene.Mount(m.W, m.H)
			ss.mounted = true
			ss.status()
		} else {
			ss.scene.Resize(m.W, m.H)
		}
	case wire.TypeInput:
		ss.scene.Handle(*m.Event)
	case wire.TypeCommand:
		if err := ss.scene.Command(m.Name, m.Arg); err != nil {
			ss.out(wire.NewError(err))
			return
		}
		ss.status()
	}
}

func (s *site) streamScene(c *gin.Context) {
	name := c.Param("scene")
	if !slices.Contains(scene.Names, name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown scene"})
		return
	}
	if !s.sessions.acquire(name) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Too many live canvases, try again soon"})
		return
	}
	defer s.sessions.release(name)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessage)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pump := frame.NewPump()
	ss := &session{
		rec:   wire.NewRecorder(0, 0),
		send:  make(chan []byte, sendBuffer),
		stats: s.sessions,
	}
	ss.scene, err = scene.New(name, scene.Options{
		Context:     ctx,
		Scheduler:   pump,
		Surface:     ss.rec,
		Scores:      s.scores,
		ModelPath:   s.cfg.ModelPath,
		AfterRender: ss.flush,
		OnCollect:   func(game.Item) { ss.status() },
	})
	if err != nil {
		log.Printf("Error creating scene %s: %v", name, err)
		return
	}

	log.Printf("Scene %s connected", name)
	inbox := make(chan func(), inboxBuffer)
	go writePump(conn, ss.send, cancel)
	go readPump(ctx, conn, ss, inbox, cancel)

	frame.Run(ctx, pump, frame.Interval(s.cfg.FrameRate), inbox)

	ss.scene.Unmount()
	if n := pump.Pending(); n != 0 {
		log.Printf("Scene %s left %d scheduled callbacks behind", name, n)
	}
	close(ss.send)
	log.Printf("Scene %s disconnected", name)
}

// readPump decodes client messages and hands them to the scene goroutine.
func readPump(ctx context.Context, conn *websocket.Conn, ss *session, inbox chan<- func(), cancel context.CancelFunc) {
	defer cancel()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Read failed: %v", err)
			}
			return
		}

		var fn func()
		if m, err := wire.Decode(data); err != nil {
			fn = func() { ss.out(wire.NewError(err)) }
		} else {
			fn = func() { ss.handle(m) }
		}

		select {
		case inbox <- fn:
		case <-ctx.Done():
			return
		}
	}
}

func writePump(conn *websocket.Conn, send <-chan []byte, cancel context.CancelFunc) {
	for msg := range send {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("Write to client failed: %v", err)
			cancel()
			return
		}
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

func paletteNames() []string { return particle.PaletteNames() }

func modeNames() []string {
	names := make([]string, len(particle.Modes))
	for i, m := range particle.Modes {
		names[i] = m.String()
	}
	return names
}
