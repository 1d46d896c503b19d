package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/cli/config"
	controller "github.com/secmon-lab/casegauge/pkg/controller/http"
	"github.com/secmon-lab/casegauge/pkg/repository"
	"github.com/secmon-lab/casegauge/pkg/service/chart"
	"github.com/secmon-lab/casegauge/pkg/service/pdf"
	"github.com/secmon-lab/casegauge/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		teamCfg   config.Team
	)

	flags := flagsOf(&serverCfg, &teamCfg)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting casegauge server",
				slog.Any("server", serverCfg),
				slog.Any("team", teamCfg),
			)

			if err := serverCfg.Validate(); err != nil {
				return err
			}

			team, err := teamCfg.Configure()
			if err != nil {
				return err
			}
			if team != nil {
				logger.Info("Team file loaded", slog.Int("members", len(team.Members)))
			}

			repo := repository.NewMemory()
			defer repo.Close()

			// Create use cases
			reportUC := usecase.NewReport(chart.New(), pdf.New())
			draftUC := usecase.NewDraft(repo, serverCfg.DraftTTL)

			// Create HTTP server
			server, err := controller.NewServer(
				ctx,
				serverCfg.Addr,
				reportUC,
				draftUC,
				controller.WithTeam(team),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
