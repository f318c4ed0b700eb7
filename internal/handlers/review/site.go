package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"roomfinder/internal/store"
	"roomfinder/internal/utils"
)

type SiteListHandler struct {
	Reviews *store.ReviewStore
}

// ServeHTTP handles GET /reviews — the site-wide log, newest first.
func (h *SiteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.LoadSite(r.Context())
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to load reviews", Data: map[string]interface{}{"error": err.Error()}})
		return
	}
	// stored oldest-first, rendered most-recent-first
	out := make([]string, 0, len(reviews))
	for i := len(reviews) - 1; i >= 0; i-- {
		out = append(out, reviews[i])
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "site reviews fetched", Data: out})
}

type SiteSubmitHandler struct {
	Reviews *store.ReviewStore
}

type siteSubmitRequest struct {
	Text string `json:"text"`
}

// ServeHTTP handles POST /reviews
func (h *SiteSubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req siteSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if err := h.Reviews.AppendSite(r.Context(), req.Text); err != nil {
		if errors.Is(err, store.ErrEmptyReview) {
			utils.JSON(w, http.StatusUnprocessableEntity, utils.APIResponse{Success: false, Message: "review text required"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to save review", Data: map[string]interface{}{"error": err.Error()}})
		return
	}
	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "review saved", Data: map[string]interface{}{"text": req.Text}})
}
