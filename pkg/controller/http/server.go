package http

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/frontend"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router        chi.Router
	reportHandler *ReportHandler
}

// Option configures Server
type Option func(*serverOptions)

type serverOptions struct {
	team *model.TeamConfig
}

// WithTeam pre-fills the form from a team configuration
func WithTeam(team *model.TeamConfig) Option {
	return func(o *serverOptions) {
		o.team = team
	}
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	reportUC usecase.ReportUseCase,
	draftUC usecase.DraftUseCase,
	opts ...Option,
) (*Server, error) {
	var options serverOptions
	for _, opt := range opts {
		opt(&options)
	}

	templates, err := frontend.ParseTemplates(template.FuncMap{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page templates")
	}

	static, err := frontend.GetHTTPFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load static files")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	reportHandler := NewReportHandler(reportUC, draftUC, options.team, templates)

	// Health check
	router.Get("/health", handleHealth)

	// Pages
	router.Get("/", reportHandler.HandleForm)
	router.Post("/report", reportHandler.HandleReport)
	router.Get("/report/export", reportHandler.HandleExport)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static)))

	// API routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/metrics", reportHandler.HandleMetricsAPI)
		r.Post("/export", reportHandler.HandleExportAPI)
	})

	ctxlog.From(ctx).Info("HTTP routes registered", "addr", addr)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:        router,
		reportHandler: reportHandler,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "casegauge",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// writeError writes a JSON error response. Server errors do not expose details.
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	message := "internal server error"
	if status < http.StatusInternalServerError {
		if goErr := goerr.Unwrap(err); goErr != nil {
			message = goErr.Error()
		} else {
			message = err.Error()
		}
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}
