// Package chart turns derived metrics into chart specs and renders them as PNG
// images.
package chart

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/interfaces"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
)

// Renderer draws chart specs into PNG images
type Renderer struct{}

var _ interfaces.ChartRenderer = (*Renderer)(nil)

// New creates a renderer
func New() *Renderer {
	return &Renderer{}
}

// Render returns PNG bytes of the spec drawn at the given pixel size. The output
// depends only on its arguments.
func (x *Renderer) Render(ctx context.Context, spec model.ChartSpec, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, goerr.New("chart size must be positive",
			goerr.V("width", width),
			goerr.V("height", height),
			goerr.T(model.ErrTagInvalidInput))
	}

	switch spec.Kind {
	case model.ChartKindTrend:
		if spec.Trend == nil {
			return nil, goerr.New("trend spec is missing", goerr.V("title", spec.Title), goerr.T(model.ErrTagInvalidInput))
		}
		return renderTrend(spec.Title, spec.Trend, width, height)

	case model.ChartKindGauge:
		if spec.Gauge == nil {
			return nil, goerr.New("gauge spec is missing", goerr.V("title", spec.Title), goerr.T(model.ErrTagInvalidInput))
		}
		return renderGauge(spec.Title, spec.Gauge, width, height)

	default:
		return nil, goerr.New("unknown chart kind", goerr.V("kind", spec.Kind), goerr.T(model.ErrTagInvalidInput))
	}
}
