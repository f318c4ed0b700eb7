package room

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"roomfinder/internal/roomdb"
	"roomfinder/internal/store"
	"roomfinder/internal/ui"
	"roomfinder/internal/utils"
)

type DetailHandler struct {
	DB      *roomdb.Database
	Reviews *store.ReviewStore
	Clock   func() time.Time
}

// ServeHTTP handles GET /rooms/{id}
func (h *DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "room id required in path"})
		return
	}

	now := time.Now()
	if h.Clock != nil {
		now = h.Clock()
	}
	detail, err := ui.BuildRoomDetail(r.Context(), h.DB, h.Reviews, roomID, now)
	if err != nil {
		if errors.Is(err, roomdb.ErrUnknownRoom) {
			utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "room not found"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to load room detail", Data: map[string]interface{}{"error": err.Error()}})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "room detail fetched", Data: detail})
}
