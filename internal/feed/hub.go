// Package feed streams engine events to websocket clients.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"go-wave-tick/internal/event"
)

const writeTimeout = 5 * time.Second

// Message is the JSON frame sent for each event.
type Message struct {
	Type event.EventType `json:"type"`
	Data any             `json:"data,omitempty"`
	Time time.Time       `json:"time"`
}

type client struct {
	send chan []byte
}

// Hub is an event.Listener that fans events out to connected clients. A client that
// falls behind by more than the buffer loses frames.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	buffer  int
	origins []string
}

// NewHub returns a hub. Browser clients must come from the serving host or match one of
// originPatterns (host patterns as in path.Match, e.g. "*.example.com").
func NewHub(buffer int, originPatterns ...string) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		buffer:  max(buffer, 1),
		origins: originPatterns,
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) OnEvent(ev event.Event) {
	frame, err := json.Marshal(Message{Type: ev.Type, Data: ev.Data, Time: time.Now()})
	if err != nil {
		slog.Warn("failed to encode event", "type", ev.Type, "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			slog.Debug("feed client is slow, dropping frame", "type", ev.Type)
		}
	}
}

func (h *Hub) register() *client {
	c := &client{send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// ServeHTTP upgrades the request and streams frames until the client leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	c := h.register()
	defer h.unregister(c)
	slog.DebugContext(ctx, "feed client connected", "remote", r.RemoteAddr)

	// clients only listen; CloseRead handles control frames and cancels on close
	ctx = conn.CloseRead(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.DebugContext(ctx, "feed client left", "remote", r.RemoteAddr)
			return
		case frame := <-c.send:
			if err := write(ctx, conn, frame); err != nil {
				slog.DebugContext(ctx, "feed write failed", "err", err)
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, frame)
}
