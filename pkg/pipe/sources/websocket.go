package sources

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// WebSocket is a socket listener source. Mount it as an http.Handler; every
// text or binary frame received on any connection is broadcast, as a string,
// to the flows opened on it.
type WebSocket struct {
	*Subject[string]
	upgrader websocket.Upgrader
}

func NewWebSocket(upgrader websocket.Upgrader) *WebSocket {
	return &WebSocket{
		Subject:  NewSubject[string](),
		upgrader: upgrader,
	}
}

func (w *WebSocket) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	conn, err := w.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		w.Next(string(data))
	}
}
