package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/cli/config"
	"github.com/secmon-lab/casegauge/pkg/service/chart"
	"github.com/secmon-lab/casegauge/pkg/service/pdf"
	"github.com/secmon-lab/casegauge/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var exportCfg config.Export

	return &cli.Command{
		Name:  "export",
		Usage: "Write the one-page PDF report from a YAML input file",
		Flags: exportCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Debug("Exporting report", slog.Any("export", exportCfg))

			input, err := config.LoadReportInput(exportCfg.Input)
			if err != nil {
				return err
			}

			reportUC := usecase.NewReport(chart.New(), pdf.New())
			report, err := reportUC.Export(ctx, input)
			if err != nil {
				return err
			}

			// #nosec G306 -- the report is meant to be shared
			if err := os.WriteFile(exportCfg.Output, report.Data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write report", goerr.V("path", exportCfg.Output))
			}

			logger.Info("Report written",
				slog.String("path", exportCfg.Output),
				slog.Int("bytes", len(report.Data)),
			)
			return nil
		},
	}
}
