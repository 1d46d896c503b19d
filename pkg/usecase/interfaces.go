package usecase

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . ReportUseCase DraftUseCase

import (
	"context"

	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// ReportUseCase defines the interface for the derive, render and compose pipeline
type ReportUseCase interface {
	// Metrics validates the input and derives totals, averages and member deltas
	Metrics(ctx context.Context, input *model.ReportInput) (*model.DerivedMetrics, error)

	// Dashboard derives metrics and renders every chart for on-screen display
	Dashboard(ctx context.Context, input *model.ReportInput) (*model.Dashboard, error)

	// Export runs the whole pipeline and returns a single-page PDF
	Export(ctx context.Context, input *model.ReportInput) (*model.ExportedReport, error)
}

// DraftUseCase defines the interface for holding submitted forms between requests
type DraftUseCase interface {
	// SaveDraft validates and stores the input for later export
	SaveDraft(ctx context.Context, input *model.ReportInput) (*model.Draft, error)

	// GetDraft returns a stored draft that has not expired
	GetDraft(ctx context.Context, id types.DraftID) (*model.Draft, error)

	// DiscardDraft removes a draft replaced by a newer submission. A draft that
	// is already gone is not an error.
	DiscardDraft(ctx context.Context, id types.DraftID) error
}
