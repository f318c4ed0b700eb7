package room

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomfinder/internal/roomdb"
	"roomfinder/internal/schedule"
	"roomfinder/internal/utils"
)

type TimelineHandler struct {
	DB *roomdb.Database
}

// ServeHTTP handles GET /rooms/{id}/timeline
func (h *TimelineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	rec, err := h.DB.Get(roomID)
	if err != nil {
		if errors.Is(err, roomdb.ErrUnknownRoom) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "room not found"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to load room"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "timeline fetched", Data: schedule.BuildTimeline(rec.Schedule)})
}
