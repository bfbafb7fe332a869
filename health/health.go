package health

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// ServiceName is reported in the health payload so deploy dashboards can
// tell bot instances apart.
const ServiceName = "wtg-telegram-bot"

type status struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Server answers liveness probes. Hosting platforms poll GET /health and
// recycle the process when it stops responding; every other path is a 404.
type Server struct {
	srv *http.Server
}

func NewServer(addr string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           newRouter(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	return router
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status{Status: "healthy", Service: ServiceName}); err != nil {
		slog.Error("health: cannot write health response", "error", err)
	}
}

// Start serves probes until Shutdown is called. It blocks, so callers run it
// on its own goroutine.
func (s *Server) Start() {
	slog.Info("health: serving health checks", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("health: server stopped unexpectedly", "error", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
