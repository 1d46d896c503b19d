package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
	"github.com/secmon-lab/casegauge/pkg/repository"
	"github.com/secmon-lab/casegauge/pkg/usecase"
)

func TestDraftUseCase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDraft(repository.NewMemory(), time.Hour)

	draft, err := uc.SaveDraft(ctx, newInput(3))
	gt.NoError(t, err).Required()
	gt.True(t, draft.ExpiresAt.Sub(draft.CreatedAt) == time.Hour)

	got, err := uc.GetDraft(ctx, draft.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, got.Input.Members, newInput(3).Members)

	_, err = uc.GetDraft(ctx, "missing")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrDraftNotFound))
}

func TestDraftUseCaseRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDraft(repository.NewMemory(), 0)

	in := newInput(2)
	in.WorkingDays["March"] = 0

	_, err := uc.SaveDraft(ctx, in)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
}

func TestDraftUseCaseExpiry(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDraft(repository.NewMemory(), time.Nanosecond)

	draft, err := uc.SaveDraft(ctx, newInput(1))
	gt.NoError(t, err).Required()

	time.Sleep(time.Millisecond)
	_, err = uc.GetDraft(ctx, draft.ID)
	gt.True(t, errors.Is(err, model.ErrDraftNotFound))
}

func TestDraftUseCaseDiscard(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDraft(repository.NewMemory(), time.Hour)

	draft, err := uc.SaveDraft(ctx, newInput(2))
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.DiscardDraft(ctx, draft.ID))
	_, err = uc.GetDraft(ctx, draft.ID)
	gt.True(t, errors.Is(err, model.ErrDraftNotFound))

	// Discarding twice or without an ID is fine
	gt.NoError(t, uc.DiscardDraft(ctx, draft.ID))
	gt.NoError(t, uc.DiscardDraft(ctx, ""))
}

func TestDraftUseCaseRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RepositoryMock{
		SaveDraftFunc: func(ctx context.Context, draft *model.Draft) error {
			return goerr.New("store is full")
		},
		DeleteDraftFunc: func(ctx context.Context, id types.DraftID) error {
			if id == "gone" {
				return goerr.Wrap(model.ErrDraftNotFound, "no such draft")
			}
			return goerr.New("store is locked")
		},
	}
	uc := usecase.NewDraft(repo, time.Hour)

	_, err := uc.SaveDraft(ctx, newInput(1))
	gt.Error(t, err)
	gt.A(t, repo.SaveDraftCalls()).Length(1)

	gt.NoError(t, uc.DiscardDraft(ctx, "gone"))
	gt.Error(t, uc.DiscardDraft(ctx, "locked"))
	gt.A(t, repo.DeleteDraftCalls()).Length(2)

	// Empty IDs never reach the store
	gt.NoError(t, uc.DiscardDraft(ctx, ""))
	gt.A(t, repo.DeleteDraftCalls()).Length(2)
}
