package room

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomfinder/internal/roomdb"
	"roomfinder/internal/store"
	"roomfinder/internal/utils"
)

type ReviewsHandler struct {
	DB      *roomdb.Database
	Reviews *store.ReviewStore
}

// ServeHTTP handles GET /rooms/{id}/reviews
func (h *ReviewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	rec, err := h.DB.Get(roomID)
	if err != nil {
		utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "room not found"})
		return
	}

	stored, err := h.Reviews.LoadRoom(r.Context(), roomID)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to load reviews", Data: map[string]interface{}{"error": err.Error()}})
		return
	}
	// seeded reviews first, then stored ones in insertion order
	all := make([]string, 0, len(rec.Reviews)+len(stored))
	all = append(all, rec.Reviews...)
	all = append(all, stored...)
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "reviews fetched", Data: all})
}

type SubmitReviewHandler struct {
	DB      *roomdb.Database
	Reviews *store.ReviewStore
}

type submitReviewRequest struct {
	Text string `json:"text"`
}

// ServeHTTP handles POST /rooms/{id}/reviews
func (h *SubmitReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if _, err := h.DB.Get(roomID); err != nil {
		utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "room not found"})
		return
	}

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if err := h.Reviews.AppendRoom(r.Context(), roomID, req.Text); err != nil {
		if errors.Is(err, store.ErrEmptyReview) {
			utils.JSON(w, http.StatusUnprocessableEntity, utils.APIResponse{Success: false, Message: "review text required"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to save review", Data: map[string]interface{}{"error": err.Error()}})
		return
	}
	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "review saved", Data: map[string]interface{}{"room_id": roomID, "text": req.Text}})
}
