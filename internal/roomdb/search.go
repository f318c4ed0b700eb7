package roomdb

import (
	"strings"
	"time"

	"roomfinder/internal/models"
	"roomfinder/internal/schedule"
)

// Result is one search hit with the room's occupancy at search time.
type Result struct {
	Room   *models.Classroom `json:"room"`
	Status models.RoomStatus `json:"status"`
}

// Search scans the whole database in insertion order and keeps rooms
// matching every given criterion: keyword as a substring of the name,
// equip as a substring of the equipment field, and, when status is
// "available", computed availability at the given instant. Empty
// criteria always match. Matching is case-sensitive and results are
// not ranked.
func Search(db *Database, keyword, equip, status string, now time.Time) []Result {
	keyword = strings.TrimSpace(keyword)

	results := make([]Result, 0)
	for _, room := range db.All() {
		if keyword != "" && !strings.Contains(room.Name, keyword) {
			continue
		}
		if equip != "" && !strings.Contains(room.Equipment, equip) {
			continue
		}
		current := schedule.ComputeStatus(room.Schedule, now)
		if status == models.StatusAvailable && current.Status != models.StatusAvailable {
			continue
		}
		results = append(results, Result{Room: room, Status: current})
	}
	return results
}
