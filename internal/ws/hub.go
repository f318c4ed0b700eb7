package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"roomfinder/internal/roomdb"
	"roomfinder/internal/schedule"
)

// Connection represents a websocket connection to a client
type Connection struct {
	Conn *websocket.Conn
	Send chan []byte
}

// RoomSnapshot is one room's occupancy inside a pushed snapshot.
type RoomSnapshot struct {
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

type snapshotMessage struct {
	Type  string         `json:"type"`
	At    time.Time      `json:"at"`
	Rooms []RoomSnapshot `json:"rooms"`
}

// StatusHub pushes occupancy snapshots for every room to all connected
// clients: once when they connect and then on every tick, so the page
// never has to poll for status changes.
type StatusHub struct {
	Register   chan *Connection
	Unregister chan *Connection

	db       *roomdb.Database
	clock    func() time.Time
	interval time.Duration

	mu    sync.Mutex
	conns map[*Connection]bool
}

func NewStatusHub(db *roomdb.Database) *StatusHub {
	return &StatusHub{
		Register:   make(chan *Connection),
		Unregister: make(chan *Connection),
		db:         db,
		clock:      time.Now,
		interval:   time.Minute,
		conns:      make(map[*Connection]bool),
	}
}

// Run services the hub until the process exits.
func (h *StatusHub) Run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case c := <-h.Register:
			h.mu.Lock()
			h.conns[c] = true
			h.mu.Unlock()
			// fresh snapshot straight away so the client never waits a
			// full tick for its first state
			h.send(c, h.snapshot())
			log.Debug("ws client joined status stream")
		case c := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.conns[c]; ok {
				delete(h.conns, c)
				close(c.Send)
			}
			h.mu.Unlock()
			log.Debug("ws client left status stream")
		case <-ticker.C:
			h.broadcast(h.snapshot())
		}
	}
}

func (h *StatusHub) snapshot() []byte {
	now := h.clock()
	rooms := make([]RoomSnapshot, 0, h.db.Len())
	for _, room := range h.db.All() {
		status := schedule.ComputeStatus(room.Schedule, now)
		rooms = append(rooms, RoomSnapshot{
			RoomID: room.ID,
			Name:   room.Name,
			Status: status.Status,
			Label:  status.Label,
			Color:  status.Color,
		})
	}
	b, _ := json.Marshal(snapshotMessage{Type: "status_snapshot", At: now, Rooms: rooms})
	return b
}

func (h *StatusHub) send(c *Connection, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; !ok {
		return
	}
	select {
	case c.Send <- msg:
	default:
		// send buffer full, drop connection
		delete(h.conns, c)
		close(c.Send)
	}
}

func (h *StatusHub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		select {
		case c.Send <- msg:
		default:
			delete(h.conns, c)
			close(c.Send)
		}
	}
}

// StartWrite writes messages from the Send channel to the websocket
func (c *Connection) StartWrite() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
