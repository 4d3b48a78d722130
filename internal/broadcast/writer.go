package broadcast

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
)

const (
	writeDeadline     = 5 * time.Second
	pingInterval      = 30 * time.Second
	messageBufferSize = 16
)

// clientWriter owns all writes to one connection. The hub enqueues messages
// on sendChannel; a failed write marks the writer dead and notifies the hub
// so the subscriber can be evicted without disturbing the broadcast pass.
type clientWriter struct {
	connection    *websocket.Conn
	clock         clockwork.Clock
	sendChannel   chan []byte
	doneChannel   chan struct{}
	failedChannel chan struct{}
	onFail        func()
	stopOnce      sync.Once
	failOnce      sync.Once
}

func newClientWriter(connection *websocket.Conn, clock clockwork.Clock, onFail func()) *clientWriter {
	cw := &clientWriter{
		connection:    connection,
		clock:         clock,
		sendChannel:   make(chan []byte, messageBufferSize),
		doneChannel:   make(chan struct{}),
		failedChannel: make(chan struct{}),
		onFail:        onFail,
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	ticker := cw.clock.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-cw.sendChannel:
			if !ok {
				return
			}
			_ = cw.connection.SetWriteDeadline(cw.clock.Now().Add(writeDeadline))
			if err := cw.connection.WriteMessage(websocket.TextMessage, msg); err != nil {
				cw.markFailed()
				return
			}
		case <-ticker.Chan():
			_ = cw.connection.SetWriteDeadline(cw.clock.Now().Add(writeDeadline))
			if err := cw.connection.WriteMessage(websocket.PingMessage, nil); err != nil {
				cw.markFailed()
				return
			}
		case <-cw.doneChannel:
			return
		}
	}
}

func (cw *clientWriter) markFailed() {
	cw.failOnce.Do(func() {
		close(cw.failedChannel)
		if cw.onFail != nil {
			cw.onFail()
		}
	})
}

func (cw *clientWriter) failed() bool {
	select {
	case <-cw.failedChannel:
		return true
	default:
		return false
	}
}

func (cw *clientWriter) stop() {
	cw.stopOnce.Do(func() {
		close(cw.doneChannel)
		message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "server shutting down")
		_ = cw.connection.SetWriteDeadline(cw.clock.Now().Add(writeDeadline))
		_ = cw.connection.WriteMessage(websocket.CloseMessage, message)
		_ = cw.connection.Close()
	})
}
