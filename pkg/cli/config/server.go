package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr     string
	DraftTTL time.Duration
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("CASEGAUGE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.DurationFlag{
			Name:        "draft-ttl",
			Usage:       "How long submitted form data stays available for PDF export",
			Value:       30 * time.Minute,
			Sources:     cli.EnvVars("CASEGAUGE_DRAFT_TTL"),
			Destination: &s.DraftTTL,
		},
	}
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if s.Addr == "" {
		return goerr.New("server address is required")
	}
	if s.DraftTTL <= 0 {
		return goerr.New("draft TTL must be positive", goerr.V("draft_ttl", s.DraftTTL))
	}
	return nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Duration("draft_ttl", s.DraftTTL),
	)
}
