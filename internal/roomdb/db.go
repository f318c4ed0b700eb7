package roomdb

import (
	"errors"

	"roomfinder/internal/models"
)

// ErrUnknownRoom is returned when a room id is not in the database.
var ErrUnknownRoom = errors.New("unknown room")

// Database is the static room database: an insertion-ordered mapping
// from room id to Classroom. It is populated once at startup and
// treated as read-only afterwards, so lookups need no locking.
type Database struct {
	ids   []string
	rooms map[string]*models.Classroom
}

func NewDatabase() *Database {
	return &Database{rooms: make(map[string]*models.Classroom)}
}

// Add inserts a room, preserving insertion order. Re-adding an existing
// id replaces the record without changing its position.
func (d *Database) Add(room *models.Classroom) {
	if _, ok := d.rooms[room.ID]; !ok {
		d.ids = append(d.ids, room.ID)
	}
	d.rooms[room.ID] = room
}

// Get looks up a room by id.
func (d *Database) Get(id string) (*models.Classroom, error) {
	room, ok := d.rooms[id]
	if !ok {
		return nil, ErrUnknownRoom
	}
	return room, nil
}

// All returns every room in insertion order.
func (d *Database) All() []*models.Classroom {
	out := make([]*models.Classroom, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, d.rooms[id])
	}
	return out
}

// Len reports the number of rooms.
func (d *Database) Len() int {
	return len(d.ids)
}
