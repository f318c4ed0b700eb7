package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"roomfinder/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	Hub *ws.StatusHub
}

// ServeHTTP upgrades GET /ws to a websocket and streams occupancy
// snapshots until the client disconnects. The stream is one-way;
// incoming frames are read only to detect the disconnect.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Failed to upgrade to websocket", http.StatusInternalServerError)
		return
	}

	c := &ws.Connection{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Hub.Register <- c

	go c.StartWrite()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break // disconnect
		}
	}
	h.Hub.Unregister <- c
	conn.Close()
}
