package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"roomfinder/internal/handlers"
	"roomfinder/internal/handlers/review"
	"roomfinder/internal/handlers/room"
	"roomfinder/internal/middleware"
	"roomfinder/internal/roomdb"
	"roomfinder/internal/store"
	"roomfinder/internal/ui"
	"roomfinder/internal/ws"
)

type Server struct {
	Addr    string
	DB      *roomdb.Database
	Reviews *store.ReviewStore
	Hub     *ws.StatusHub
}

func NewServer(addr string, db *roomdb.Database, reviews *store.ReviewStore, hub *ws.StatusHub) *Server {
	return &Server{
		Addr:    addr,
		DB:      db,
		Reviews: reviews,
		Hub:     hub,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

func (s *Server) Run() error {
	r := chi.NewRouter()

	// middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	dispatcher := ui.NewDispatcher(s.DB, s.Reviews)

	// Mount routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Welcome to roomfinder API! Server is running....\n"))
	})
	r.Get("/health", handlers.HealthCheck)

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", HandlerFunc(&room.ListHandler{DB: s.DB}))
		r.Get("/search", HandlerFunc(&room.SearchHandler{DB: s.DB}))
		r.Get("/{id}", HandlerFunc(&room.DetailHandler{DB: s.DB, Reviews: s.Reviews}))
		r.Get("/{id}/timeline", HandlerFunc(&room.TimelineHandler{DB: s.DB}))
		r.Get("/{id}/reviews", HandlerFunc(&room.ReviewsHandler{DB: s.DB, Reviews: s.Reviews}))
		r.Post("/{id}/reviews", HandlerFunc(&room.SubmitReviewHandler{DB: s.DB, Reviews: s.Reviews}))
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", HandlerFunc(&review.SiteListHandler{Reviews: s.Reviews}))
		r.Post("/", HandlerFunc(&review.SiteSubmitHandler{Reviews: s.Reviews}))
	})

	r.Get("/floors", HandlerFunc(&handlers.FloorsHandler{DB: s.DB}))
	r.Post("/ui/events", HandlerFunc(&handlers.UIEventsHandler{Dispatcher: dispatcher}))

	// WebSocket status stream (public)
	r.Get("/ws", HandlerFunc(&handlers.WSHandler{Hub: s.Hub}))

	log.Infof("Server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, r)
}
