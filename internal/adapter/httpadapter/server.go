package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/registry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordService is the registry behaviour the API exposes.
type RecordService interface {
	Evaluate(m domain.Measurement) (registry.Assessment, error)
	Create(ctx context.Context, rec domain.Record) (registry.Entry, error)
	Update(ctx context.Context, taratassi string, rec domain.Record) (registry.Entry, error)
	Get(ctx context.Context, taratassi string) (registry.Entry, error)
	List(ctx context.Context, search string) ([]domain.Record, error)
	Export(ctx context.Context, w io.Writer, search string) (int, error)
}

// Server exposes the record API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	records    RecordService
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the /api/v1 routes and /healthz,
// /readyz, and /metrics.
func NewServer(addr string, records RecordService, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		records: records,
		logger:  logger,
	}

	mux.HandleFunc("POST /api/v1/whz", s.handleEvaluate)
	mux.HandleFunc("GET /api/v1/records", s.handleList)
	mux.HandleFunc("POST /api/v1/records", s.handleCreate)
	mux.HandleFunc("GET /api/v1/records/export", s.handleExport)
	mux.HandleFunc("GET /api/v1/records/{taratassi}", s.handleGet)
	mux.HandleFunc("PUT /api/v1/records/{taratassi}", s.handleUpdate)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// readinessChecks is ready only when every check passes.
type readinessChecks []sharedobs.ReadinessChecker

func (r readinessChecks) CheckReadiness(ctx context.Context) error {
	for _, c := range r {
		if err := c.CheckReadiness(ctx); err != nil {
			return err
		}
	}
	return nil
}

// AllReady combines readiness checks; the first failure is reported.
func AllReady(checks ...sharedobs.ReadinessChecker) sharedobs.ReadinessChecker {
	return readinessChecks(checks)
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
