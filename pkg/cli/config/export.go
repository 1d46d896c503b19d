package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Export holds configuration of the export command
type Export struct {
	Input  string
	Output string
}

// Flags returns CLI flags for Export configuration
func (e *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "YAML file with months, working days, FSC names and closed cases",
			Required:    true,
			Sources:     cli.EnvVars("CASEGAUGE_EXPORT_INPUT"),
			Destination: &e.Input,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path of the PDF to write",
			Value:       model.ReportFileName,
			Sources:     cli.EnvVars("CASEGAUGE_EXPORT_OUTPUT"),
			Destination: &e.Output,
		},
	}
}

// LogValue returns structured log value
func (e Export) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("input", e.Input),
		slog.String("output", e.Output),
	)
}

// LoadReportInput reads a ReportInput from YAML file
func LoadReportInput(path string) (*model.ReportInput, error) {
	if path == "" {
		return nil, goerr.New("input file path is required", goerr.T(model.ErrTagInvalidInput))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
	}

	var input model.ReportInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, goerr.Wrap(err, "failed to parse input file",
			goerr.V("path", path),
			goerr.T(model.ErrTagInvalidInput))
	}

	return &input, nil
}
