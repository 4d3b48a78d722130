package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for embedded dashboards
	},
}

var pongMessage = []byte(`{"type":"pong"}`)

// handleLiveWebSocket upgrades the connection, registers it with the hub and
// runs the read pump until the client disconnects. The only inbound message
// clients send is "ping", answered with a pong on this connection alone.
func (s *Server) handleLiveWebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Warn("Failed to upgrade WebSocket", "error", err)
		return nil
	}

	// The factory runs inside the hub actor, which supplies the authoritative
	// client count. It must not call back into other actors from there, so
	// the stream state is snapshotted up front.
	state := s.controller.State()
	welcome := func(clients int) []byte {
		payload, err := json.Marshal(domain.NewConnectedEvent(state.Running, state.Stats, clients))
		if err != nil {
			return nil
		}
		return payload
	}

	if err := s.hub.Register(conn, welcome); err != nil {
		slog.Warn("Failed to register WebSocket client", "error", err)
		conn.Close()
		return nil
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if strings.TrimSpace(string(message)) == "ping" {
			s.hub.Send(conn, pongMessage)
		}
	}

	s.hub.Unregister(conn)
	return nil
}
