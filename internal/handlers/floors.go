package handlers

import (
	"net/http"

	"roomfinder/internal/roomdb"
	"roomfinder/internal/utils"
)

type FloorsHandler struct {
	DB *roomdb.Database
}

// ServeHTTP handles GET /floors — rooms bucketed by the leading-digit
// floor heuristic.
func (h *FloorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "floors fetched", Data: roomdb.Floors(h.DB)})
}
