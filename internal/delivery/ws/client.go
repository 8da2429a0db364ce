package ws

import (
	"encoding/json"
	"sync"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	sendBufferSize = 64
	maxMessageSize = 64 << 10
)

// client is one authenticated websocket connection.
type client struct {
	identity  entity.Identity
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	writeWait time.Duration
}

func newClient(identity entity.Identity, conn *websocket.Conn, writeWait time.Duration) *client {
	return &client{
		identity:  identity,
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		done:      make(chan struct{}),
		writeWait: writeWait,
	}
}

// enqueue hands a frame to the write pump without blocking. It reports
// false when the buffer is full or the client is gone.
func (c *client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

// emit encodes and enqueues one event.
func (c *client) emit(event string, payload any) bool {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		return false
	}

	return c.enqueue(frame)
}

// close ends the connection once. A non-zero code is sent as a close frame first.
func (c *client) close(code int, text string) {
	c.closeOnce.Do(func() {
		close(c.done)
		if code != 0 {
			msg := websocket.FormatCloseMessage(code, text)
			_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.writeWait))
		}
		_ = c.conn.Close()
	})
}

// writePump is the only writer of data frames on the connection.
func (c *client) writePump(pingPeriod time.Duration) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.close(0, "")

				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeWait)); err != nil {
				c.close(0, "")

				return
			}
		}
	}
}

func encodeFrame(event string, payload any) ([]byte, error) {
	var data json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s payload", event)
		}
		data = raw
	}

	frame, err := json.Marshal(service.Envelope{Event: event, Data: data})
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s frame", event)
	}

	return frame, nil
}
