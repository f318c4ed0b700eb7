package roomdb

import "roomfinder/internal/models"

// FloorOf guesses a room's floor from the leading digit of its id:
// "301" lives on "3F". Ids without a leading digit of 1-5 fall back to
// "1F". The room data carries no canonical floor field; this heuristic
// is all there is.
func FloorOf(roomID string) string {
	if roomID != "" {
		switch roomID[0] {
		case '1', '2', '3', '4', '5':
			return string(roomID[0]) + "F"
		}
	}
	return "1F"
}

// Floor groups the rooms of one floor.
type Floor struct {
	Name  string              `json:"name"`
	Rooms []*models.Classroom `json:"rooms"`
}

// Floors buckets every room by FloorOf, floors ordered 1F..5F, rooms in
// database order within a floor.
func Floors(db *Database) []Floor {
	byName := make(map[string][]*models.Classroom)
	for _, room := range db.All() {
		f := FloorOf(room.ID)
		byName[f] = append(byName[f], room)
	}
	floors := make([]Floor, 0, len(byName))
	for _, name := range []string{"1F", "2F", "3F", "4F", "5F"} {
		if rooms, ok := byName[name]; ok {
			floors = append(floors, Floor{Name: name, Rooms: rooms})
		}
	}
	return floors
}
