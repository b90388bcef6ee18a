// Package stream pushes live session activity to websocket observers.
// Consumers are read-only: nothing in the engine depends on the stream, and
// a slow or absent client never blocks request handling.
package stream

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/titanx/halo-core/internal/halo"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, 64),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (c *client) close() {
	close(c.send)
}

// Broadcaster fans session activity out to connected clients. Events are
// coalesced under a short throttle before flushing; periodic full snapshots
// let late or lossy clients resynchronize.
type Broadcaster struct {
	mu       sync.RWMutex
	clients  map[*client]bool
	registry *halo.Registry
	log      *slog.Logger

	throttle       time.Duration
	snapshotTicker *time.Ticker
	pending        []Message
	flushTimer     *time.Timer
	flushMu        sync.Mutex
}

func NewBroadcaster(registry *halo.Registry, log *slog.Logger, throttle, snapshotInterval time.Duration) *Broadcaster {
	b := &Broadcaster{
		clients:  make(map[*client]bool),
		registry: registry,
		log:      log,
		throttle: throttle,
	}

	b.snapshotTicker = time.NewTicker(snapshotInterval)
	go b.snapshotLoop()

	return b
}

// AddClient registers a websocket connection and sends it an immediate
// snapshot of every known session.
func (b *Broadcaster) AddClient(conn *websocket.Conn) *client {
	c := newClient(conn)

	b.mu.Lock()
	b.clients[c] = true
	b.mu.Unlock()

	snapshot := Message{
		Type:    MsgSnapshot,
		Payload: SnapshotPayload{Sessions: b.registry.Snapshot()},
	}
	data, _ := json.Marshal(snapshot)

	select {
	case c.send <- data:
	default:
		// Client too slow, drop the snapshot; the periodic one catches up.
	}

	return c
}

func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

// SessionStarted queues a session_started message.
func (b *Broadcaster) SessionStarted(sessionID string) {
	b.queue(Message{
		Type:    MsgSessionStarted,
		Payload: SessionStartedPayload{SessionID: sessionID},
	})
}

// EventRecorded queues an event_recorded message carrying the post-update
// rolling summary.
func (b *Broadcaster) EventRecorded(sessionID, eventType string, summary halo.Summary) {
	b.queue(Message{
		Type:    MsgEventRecorded,
		Payload: EventRecordedPayload{SessionID: sessionID, EventType: eventType, Summary: summary},
	})
}

// SessionEnded queues a session_ended message.
func (b *Broadcaster) SessionEnded(sessionID string, summary halo.Summary) {
	b.queue(Message{
		Type:    MsgSessionEnded,
		Payload: SessionEndedPayload{SessionID: sessionID, Summary: summary},
	})
}

func (b *Broadcaster) queue(msg Message) {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	b.pending = append(b.pending, msg)

	if b.flushTimer == nil {
		b.flushTimer = time.AfterFunc(b.throttle, b.flush)
	}
}

func (b *Broadcaster) flush() {
	b.flushMu.Lock()
	pending := b.pending
	b.pending = nil
	b.flushTimer = nil
	b.flushMu.Unlock()

	for _, msg := range pending {
		b.broadcast(msg)
	}
}

func (b *Broadcaster) snapshotLoop() {
	for range b.snapshotTicker.C {
		b.broadcast(Message{
			Type:    MsgSnapshot,
			Payload: SnapshotPayload{Sessions: b.registry.Snapshot()},
		})
	}
}

func (b *Broadcaster) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("broadcast marshal failed", "error", err)
		return
	}

	b.mu.RLock()
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			// Client can't keep up, disconnect it
			b.log.Warn("stream client too slow, disconnecting")
			b.RemoveClient(c)
		}
	}
}

func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
