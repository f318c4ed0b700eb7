package room

import (
	"net/http"
	"time"

	"roomfinder/internal/models"
	"roomfinder/internal/roomdb"
	"roomfinder/internal/schedule"
	"roomfinder/internal/utils"
)

type ListHandler struct {
	DB    *roomdb.Database
	Clock func() time.Time
}

type listEntry struct {
	Room   *models.Classroom `json:"room"`
	Status models.RoomStatus `json:"status"`
}

// ServeHTTP handles GET /rooms
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	entries := make([]listEntry, 0, h.DB.Len())
	for _, room := range h.DB.All() {
		entries = append(entries, listEntry{
			Room:   room,
			Status: schedule.ComputeStatus(room.Schedule, now),
		})
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "rooms fetched", Data: entries})
}

func (h *ListHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now()
}
