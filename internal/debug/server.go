// Package debug exposes a config-guarded local HTTP endpoint for inspecting
// the live snapshot during host integration work.
package debug

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/barleyrp/overlay/internal/state"
)

// Server serves GET /healthcheck and GET /snapshot on a local address.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// New creates a debug server bound to addr.
func New(addr string, sync *state.Synchronizer, logger *slog.Logger) *Server {
	r := mux.NewRouter()
	r.HandleFunc("/healthcheck", handleHealthcheck).Methods(http.MethodGet)
	r.HandleFunc("/snapshot", handleSnapshot(sync)).Methods(http.MethodGet)

	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func handleHealthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func handleSnapshot(sync *state.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap := sync.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Start serves in a background goroutine.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Debug server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Debug server failed", "error", err)
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
