package room

import (
	"net/http"
	"time"

	"roomfinder/internal/roomdb"
	"roomfinder/internal/utils"
)

type SearchHandler struct {
	DB    *roomdb.Database
	Clock func() time.Time
}

// ServeHTTP handles GET /rooms/search?keyword=&equip=&status=
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	keyword := q.Get("keyword")
	equip := q.Get("equip")
	status := q.Get("status")

	now := time.Now()
	if h.Clock != nil {
		now = h.Clock()
	}
	results := roomdb.Search(h.DB, keyword, equip, status, now)

	msg := "rooms matched"
	if len(results) == 0 {
		msg = "no rooms matched"
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: msg, Data: map[string]interface{}{
		"count":   len(results),
		"results": results,
	}})
}
