package server

import (
	"context"

	"github.com/coder/websocket"
)

// wsConn adapts a websocket connection to the session's frame-oriented
// Conn interface. Non-text frames are skipped.
type wsConn struct {
	conn *websocket.Conn
}

func (c wsConn) ReadFrame(ctx context.Context) ([]byte, error) {
	for {
		typ, data, err := c.conn.Read(ctx)
		if err != nil {
			return nil, err
		}
		if typ != websocket.MessageText {
			continue
		}
		return data, nil
	}
}

func (c wsConn) WriteFrame(ctx context.Context, frame []byte) error {
	return c.conn.Write(ctx, websocket.MessageText, frame)
}

func (c wsConn) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "session closed")
}
