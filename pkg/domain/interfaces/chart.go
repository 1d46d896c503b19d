package interfaces

//go:generate moq -out mocks/chart_renderer_mock.go -pkg mocks . ChartRenderer

import (
	"context"

	"github.com/secmon-lab/casegauge/pkg/domain/model"
)

// ChartRenderer renders a chart specification to a PNG image of the given pixel size.
// Rendering is deterministic for a fixed spec and size.
type ChartRenderer interface {
	Render(ctx context.Context, spec model.ChartSpec, width, height int) ([]byte, error)
}
