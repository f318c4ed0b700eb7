package handlers

import (
	"encoding/json"
	"net/http"

	"roomfinder/internal/ui"
	"roomfinder/internal/utils"
)

type UIEventsHandler struct {
	Dispatcher *ui.Dispatcher
}

type uiEventRequest struct {
	State       *ui.State      `json:"state,omitempty"`
	Interaction ui.Interaction `json:"interaction"`
}

type uiEventResponse struct {
	State  ui.State  `json:"state"`
	Effect ui.Effect `json:"effect"`
}

// ServeHTTP handles POST /ui/events: classifies the raw interaction and
// applies it to the caller's UI state. Interactions that classify to
// nothing are acknowledged as no-ops, matching clicks that land outside
// any interactive element.
func (h *UIEventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req uiEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	state := ui.InitialState()
	if req.State != nil {
		state = *req.State
	}

	ev := ui.Classify(req.Interaction)
	next, effect, err := h.Dispatcher.Apply(r.Context(), state, ev)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "failed to apply event", Data: map[string]interface{}{"error": err.Error()}})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "event applied", Data: uiEventResponse{State: next, Effect: effect}})
}
