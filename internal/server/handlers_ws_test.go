package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/analysis"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/broadcast"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
)

func newWebSocketTestServer(t *testing.T, maxClients int) (*httptest.Server, *broadcast.Hub) {
	t.Helper()

	deps := defaultDeps()
	hub := broadcast.NewHub(clockwork.NewRealClock(), maxClients)
	t.Cleanup(hub.Stop)

	srv, err := NewServer(deps.config, analysis.NewAnalyzer(), deps.controller, deps.jobs, deps.reports, hub, deps.pinger)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.echo)
	t.Cleanup(ts.Close)
	return ts, hub
}

func dialLive(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestLiveWebSocket_WelcomeSnapshot(t *testing.T) {
	ts, _ := newWebSocketTestServer(t, 4)
	conn := dialLive(t, ts)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var welcome domain.ConnectedEvent
	require.NoError(t, json.Unmarshal(payload, &welcome))
	assert.Equal(t, domain.EventTypeConnected, welcome.Type)
	assert.True(t, welcome.Running)
	assert.Equal(t, uint64(3), welcome.Stats.Total)
	assert.Equal(t, 1, welcome.Clients)
}

func TestLiveWebSocket_PingPong(t *testing.T) {
	ts, _ := newWebSocketTestServer(t, 4)
	conn := dialLive(t, ts)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage() // welcome
	require.NoError(t, err)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))

	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pong"}`, string(payload))
}

func TestLiveWebSocket_DisconnectUnregisters(t *testing.T) {
	ts, hub := newWebSocketTestServer(t, 4)
	conn := dialLive(t, ts)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage() // welcome
	require.NoError(t, err)
	require.Equal(t, 1, hub.Count())

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.Count() == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestLiveWebSocket_MaxClients(t *testing.T) {
	ts, hub := newWebSocketTestServer(t, 1)

	first := dialLive(t, ts)
	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := first.ReadMessage() // welcome
	require.NoError(t, err)
	require.Equal(t, 1, hub.Count())

	second := dialLive(t, ts)
	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = second.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 1, hub.Count())
}
