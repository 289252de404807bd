package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// connection is one browser tab. Writes come from the reader goroutine and from timers, so they are serialized.
type connection struct {
	sessionID string
	conn      *websocket.Conn
	timers    *timerSet

	writeMu sync.Mutex
}

func newConnection(sessionID string, conn *websocket.Conn) *connection {
	return &connection{
		sessionID: sessionID,
		conn:      conn,
		timers:    newTimerSet(),
	}
}

func (that *connection) send(action string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return that.write(Message{Action: action, Payload: data})
}

func (that *connection) sendError(action, reason string) error {
	return that.write(Message{Action: action, Error: reason})
}

func (that *connection) write(message Message) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) close() {
	that.timers.stopAll()
	_ = that.conn.Close()
}
