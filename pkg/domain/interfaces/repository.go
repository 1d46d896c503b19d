package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Repository holds form drafts in memory for the lifetime of a browser session
type Repository interface {
	SaveDraft(ctx context.Context, draft *model.Draft) error
	GetDraft(ctx context.Context, id types.DraftID) (*model.Draft, error)
	DeleteDraft(ctx context.Context, id types.DraftID) error

	// Close releases the repository
	Close() error
}
