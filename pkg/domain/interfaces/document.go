package interfaces

import (
	"context"

	"github.com/secmon-lab/casegauge/pkg/domain/model"
)

// DocumentWriter draws a composed page and the artifacts it places into a document
type DocumentWriter interface {
	Write(ctx context.Context, layout *model.PageLayout, artifacts []model.ChartArtifact) ([]byte, error)
}
