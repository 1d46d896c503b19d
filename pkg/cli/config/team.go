package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Team holds the path of the optional team roster file
type Team struct {
	File string
}

// Flags returns CLI flags for Team configuration
func (t *Team) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "team-file",
			Usage:       "YAML file with FSC names and form defaults",
			Category:    "Team",
			Sources:     cli.EnvVars("CASEGAUGE_TEAM_FILE"),
			Destination: &t.File,
		},
	}
}

// Configure loads the team file. It returns nil when no file is configured.
func (t *Team) Configure() (*model.TeamConfig, error) {
	if t.File == "" {
		return nil, nil
	}
	return LoadTeamFromFile(t.File)
}

// LogValue returns structured log value
func (t Team) LogValue() slog.Value {
	return slog.GroupValue(slog.String("file", t.File))
}

// LoadTeamFromFile loads a team configuration from YAML file
func LoadTeamFromFile(path string) (*model.TeamConfig, error) {
	if path == "" {
		return nil, goerr.New("team file path is required")
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "team file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read team file",
			goerr.V("path", path))
	}

	// Parse YAML
	var config model.TeamConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse team file",
			goerr.V("path", path))
	}

	for i, member := range config.Members {
		config.Members[i] = member.Normalize()
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid team file",
			goerr.V("path", path))
	}

	return &config, nil
}
