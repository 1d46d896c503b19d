package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/interfaces"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// DefaultDraftTTL is how long a submitted form stays available for export
const DefaultDraftTTL = 30 * time.Minute

// Draft implements DraftUseCase
type Draft struct {
	repo interfaces.Repository
	ttl  time.Duration
}

var _ DraftUseCase = (*Draft)(nil)

// NewDraft creates a new Draft use case. A non-positive ttl falls back to DefaultDraftTTL.
func NewDraft(repo interfaces.Repository, ttl time.Duration) *Draft {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &Draft{
		repo: repo,
		ttl:  ttl,
	}
}

// SaveDraft validates and stores the input
func (uc *Draft) SaveDraft(ctx context.Context, input *model.ReportInput) (*model.Draft, error) {
	if input == nil {
		return nil, goerr.New("report input is required", goerr.T(model.ErrTagInvalidInput))
	}
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report input")
	}

	draft, err := model.NewDraft(input, uc.ttl)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create draft")
	}

	if err := uc.repo.SaveDraft(ctx, draft); err != nil {
		return nil, goerr.Wrap(err, "failed to save draft", goerr.V("draftID", draft.ID))
	}

	return draft, nil
}

// GetDraft returns a stored draft
func (uc *Draft) GetDraft(ctx context.Context, id types.DraftID) (*model.Draft, error) {
	draft, err := uc.repo.GetDraft(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get draft", goerr.V("draftID", id))
	}
	return draft, nil
}

// DiscardDraft deletes a draft. Unknown, expired and empty IDs are ignored.
func (uc *Draft) DiscardDraft(ctx context.Context, id types.DraftID) error {
	if id == "" {
		return nil
	}
	if err := uc.repo.DeleteDraft(ctx, id); err != nil {
		if errors.Is(err, model.ErrDraftNotFound) {
			return nil
		}
		return goerr.Wrap(err, "failed to discard draft", goerr.V("draftID", id))
	}
	return nil
}
