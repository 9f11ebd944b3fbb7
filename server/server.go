// Package server exposes the word ranking operation over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/teatak/wordrank/ranker"
)

// Server handles ranking requests over HTTP.
type Server struct {
	router *mux.Router
	logger *zap.SugaredLogger
}

// New creates a server with its routes registered. A nil logger disables
// request logging.
func New(logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Server{
		router: mux.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/rank", s.handleRank).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// Handler returns the root handler, with CORS applied so the endpoint can
// be called from browser frontends.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.router)
}

type rankRequest struct {
	Lines []string `json:"lines"`
	K     int      `json:"k"`
}

type rankResponse struct {
	Entries []ranker.Entry `json:"entries"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.K < 0 {
		http.Error(w, "k must be non-negative", http.StatusBadRequest)
		return
	}

	entries := ranker.Rank(req.Lines, req.K)
	s.logger.Infow("ranked", "lines", len(req.Lines), "k", req.K, "entries", len(entries))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rankResponse{Entries: entries}); err != nil {
		s.logger.Errorw("write response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
