package uart

import "golang.org/x/net/websocket"

// WSPort is a Port receiving one frame block per websocket binary
// message. It serves remote or simulated receivers.
type WSPort websocket.Conn

// NewWSPort wraps a websocket connection.
func NewWSPort(conn *websocket.Conn) *WSPort {
	return (*WSPort)(conn)
}

// DialWS connects to a frame stream endpoint.
func DialWS(url, origin string) (*WSPort, error) {
	conn, err := websocket.Dial(url, "", origin)
	if err != nil {
		return nil, err
	}
	return NewWSPort(conn), nil
}

// ReadFrame implements Port. Messages shorter than buf are discarded
// as line noise; longer ones are truncated to the frame size.
func (p *WSPort) ReadFrame(buf []byte) error {
	for {
		var msg []byte
		if err := websocket.Message.Receive((*websocket.Conn)(p), &msg); err != nil {
			return err
		}
		if len(msg) >= len(buf) {
			copy(buf, msg)
			return nil
		}
	}
}

// ResetRx implements Port. Websocket messages are already
// frame-delimited, so there is no partial receive state to discard.
func (p *WSPort) ResetRx() error {
	return nil
}

// Close implements io.Closer.
func (p *WSPort) Close() error {
	return (*websocket.Conn)(p).Close()
}
