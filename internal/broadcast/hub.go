package broadcast

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/metrics"
)

const (
	commandTimeout = 5 * time.Second
	stopTimeout    = 10 * time.Second
)

// hubCmd is the command interface for the Hub actor.
type hubCmd interface{ isHubCmd() }

type baseHubCmd struct{}

func (baseHubCmd) isHubCmd() {}

type registerCmd struct {
	baseHubCmd
	connection   *websocket.Conn
	welcome      func(clients int) []byte
	errorChannel chan error
}

type unregisterCmd struct {
	baseHubCmd
	connection *websocket.Conn
}

type publishCmd struct {
	baseHubCmd
	eventType string
	data      []byte
}

type sendCmd struct {
	baseHubCmd
	connection *websocket.Conn
	data       []byte
}

type countCmd struct {
	baseHubCmd
	replyChannel chan int
}

type stopCmd struct {
	baseHubCmd
}

// Hub maintains the set of live subscribers and fans published events out to
// all of them. Failed subscribers are collected during the broadcast pass and
// removed after it completes, so one broken connection never blocks or skips
// delivery to the others.
type Hub struct {
	cmdCh      chan hubCmd
	clock      clockwork.Clock
	clients    map[*websocket.Conn]*clientWriter
	maxClients int
	done       chan struct{}
}

// NewHub creates the hub and starts its actor goroutine.
// maxClients bounds concurrent subscribers (prevents resource exhaustion).
func NewHub(clock clockwork.Clock, maxClients int) *Hub {
	h := &Hub{
		cmdCh:      make(chan hubCmd, 256),
		clock:      clock,
		clients:    make(map[*websocket.Conn]*clientWriter),
		maxClients: maxClients,
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

// Register adds a subscriber. The welcome factory is invoked inside the actor
// with the authoritative subscriber count (including this one) and its payload
// is queued before any subsequently published event. The factory must not
// call back into the hub. Returns an error if the subscriber limit is reached
// or the hub is stopped; the connection is closed in the limit case.
func (h *Hub) Register(conn *websocket.Conn, welcome func(clients int) []byte) error {
	errCh := make(chan error, 1)
	select {
	case h.cmdCh <- registerCmd{connection: conn, welcome: welcome, errorChannel: errCh}:
	case <-h.done:
		return fmt.Errorf("hub is stopped")
	}

	timer := h.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case err := <-errCh:
		return err
	case <-h.done:
		return fmt.Errorf("hub is stopped")
	case <-timer.Chan():
		return fmt.Errorf("register command timed out after %v", commandTimeout)
	}
}

// Unregister removes a subscriber. Idempotent; no-op if already removed.
func (h *Hub) Unregister(conn *websocket.Conn) {
	select {
	case h.cmdCh <- unregisterCmd{connection: conn}:
	case <-h.done:
	}
}

// Publish serializes the event once and fans it out to every live subscriber.
func (h *Hub) Publish(event domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal broadcast event", "type", event.EventType(), "error", err)
		return
	}
	select {
	case h.cmdCh <- publishCmd{eventType: event.EventType(), data: data}:
	case <-h.done:
	}
}

// Send queues a payload for a single subscriber (keep-alive replies). Writes
// go through the client's writer so they never race with broadcasts.
func (h *Hub) Send(conn *websocket.Conn, data []byte) {
	select {
	case h.cmdCh <- sendCmd{connection: conn, data: data}:
	case <-h.done:
	}
}

// Count returns the current subscriber count. Returns 0 after Stop and -1 if
// the command times out.
func (h *Hub) Count() int {
	replyCh := make(chan int, 1)
	select {
	case h.cmdCh <- countCmd{replyChannel: replyCh}:
	case <-h.done:
		return 0
	}

	timer := h.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case count := <-replyCh:
		return count
	case <-h.done:
		return 0
	case <-timer.Chan():
		slog.Warn("Count timed out", "timeout", commandTimeout)
		return -1
	}
}

// Stop shuts down the hub, closing all subscriber connections.
// Blocks until the actor goroutine has exited or the timeout is reached.
func (h *Hub) Stop() {
	select {
	case h.cmdCh <- stopCmd{}:
	case <-h.done:
		return
	}

	timer := h.clock.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case <-h.done:
		slog.Info("Broadcast hub stopped gracefully")
	case <-timer.Chan():
		slog.Warn("Broadcast hub stop timeout exceeded", "timeout", stopTimeout)
	}
}

func (h *Hub) run() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Broadcast hub panic recovered", "panic", r)
			metrics.HubPanicsTotal.Inc()
			h.closeAllClients()
		}
	}()
	defer close(h.done)

	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case registerCmd:
			h.handleRegister(c)
		case unregisterCmd:
			h.handleUnregister(c.connection)
		case publishCmd:
			h.handlePublish(c)
		case sendCmd:
			h.handleSend(c)
		case countCmd:
			c.replyChannel <- len(h.clients)
		case stopCmd:
			h.handleStop()
			return
		default:
			slog.Warn("Broadcast hub received unknown command type", "command_type", fmt.Sprintf("%T", cmd))
		}
	}
}

func (h *Hub) handleRegister(c registerCmd) {
	if len(h.clients) >= h.maxClients {
		slog.Warn("Rejecting subscriber: max clients reached", "max_clients", h.maxClients)
		_ = c.connection.Close()
		c.errorChannel <- fmt.Errorf("max clients (%d) reached", h.maxClients)
		return
	}

	conn := c.connection
	cw := newClientWriter(conn, h.clock, func() {
		// Writer goroutine context: never block the actor.
		select {
		case h.cmdCh <- unregisterCmd{connection: conn}:
		default:
		}
	})
	h.clients[conn] = cw

	// The factory sees the post-registration count, so concurrent joiners
	// each get the number that was true when they were admitted.
	if c.welcome != nil {
		if payload := c.welcome(len(h.clients)); len(payload) > 0 {
			cw.sendChannel <- payload
		}
	}

	metrics.ConnectedClients.Set(float64(len(h.clients)))
	slog.Debug("Subscriber registered", "total_clients", len(h.clients))
	c.errorChannel <- nil
}

func (h *Hub) handleUnregister(conn *websocket.Conn) {
	cw, exists := h.clients[conn]
	if !exists {
		return
	}

	cw.stop()
	delete(h.clients, conn)

	metrics.ConnectedClients.Set(float64(len(h.clients)))
	slog.Debug("Subscriber unregistered", "remaining_clients", len(h.clients))
}

func (h *Hub) handlePublish(c publishCmd) {
	var broken []*websocket.Conn
	for conn, cw := range h.clients {
		if cw.failed() {
			broken = append(broken, conn)
			continue
		}
		select {
		case cw.sendChannel <- c.data:
		default:
			// Send buffer full: subscriber is too slow to keep up.
			broken = append(broken, conn)
		}
	}

	// Collect-then-remove: the subscriber set is never mutated mid-iteration.
	for _, conn := range broken {
		slog.Warn("Evicting broken or slow subscriber")
		metrics.SlowClientsEvictedTotal.Inc()
		h.handleUnregister(conn)
	}

	metrics.EventsPublishedTotal.WithLabelValues(c.eventType).Inc()
}

func (h *Hub) handleSend(c sendCmd) {
	cw, exists := h.clients[c.connection]
	if !exists || cw.failed() {
		return
	}
	select {
	case cw.sendChannel <- c.data:
	default:
	}
}

func (h *Hub) handleStop() {
	slog.Info("Broadcast hub shutting down", "clients", len(h.clients))
	h.closeAllClients()
}

func (h *Hub) closeAllClients() {
	for conn, cw := range h.clients {
		cw.stop()
		delete(h.clients, conn)
	}
	metrics.ConnectedClients.Set(0)
}
