package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/cli"
)

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.yaml")
	output := filepath.Join(dir, "out.pdf")

	gt.NoError(t, os.WriteFile(input, []byte(`
months: [February, March]
working_days: {February: 20, March: 22}
members: [FSC1, FSC2, FSC3]
closed_cases:
  FSC1: {February: 10, March: 15}
  FSC2: {February: 8, March: 12}
  FSC3: {February: 11, March: 9}
`), 0o600)).Required()

	err := cli.Run(context.Background(), []string{
		"casegauge", "--log-output", "stderr", "--log-level", "error",
		"export", "--input", input, "--output", output,
	})
	gt.NoError(t, err).Required()

	data, err := os.ReadFile(output)
	gt.NoError(t, err).Required()
	gt.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExportCommandInvalidInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.yaml")
	output := filepath.Join(dir, "out.pdf")

	gt.NoError(t, os.WriteFile(input, []byte(`
months: [February]
working_days: {February: 20}
members: [FSC1]
closed_cases:
  FSC1: {February: 10}
`), 0o600)).Required()

	err := cli.Run(context.Background(), []string{
		"casegauge", "--log-output", "stderr", "--log-level", "error",
		"export", "--input", input, "--output", output,
	})
	gt.Error(t, err)

	_, statErr := os.Stat(output)
	gt.True(t, os.IsNotExist(statErr))
}

func TestInvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"casegauge", "--log-level", "loud", "export", "-i", "x.yaml"})
	gt.Error(t, err)
}
