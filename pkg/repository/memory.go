package repository

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/interfaces"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu     sync.RWMutex
	drafts map[types.DraftID]*model.Draft
	now    func() time.Time
}

// MemoryOption configures Memory
type MemoryOption func(*Memory)

// WithClock replaces the clock used for draft expiry
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates a new memory repository
func NewMemory(opts ...MemoryOption) interfaces.Repository {
	m := &Memory{
		drafts: make(map[types.DraftID]*model.Draft),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SaveDraft saves a draft to memory. Expired drafts are purged on every save so
// that abandoned sessions do not accumulate.
func (m *Memory) SaveDraft(ctx context.Context, draft *model.Draft) error {
	if draft == nil {
		return goerr.New("draft is nil")
	}
	if draft.ID == "" {
		return goerr.New("draft ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, d := range m.drafts {
		if now.After(d.ExpiresAt) {
			delete(m.drafts, id)
		}
	}

	m.drafts[draft.ID] = copyDraft(draft)
	return nil
}

// GetDraft retrieves a draft by ID. An expired draft is reported as not found.
func (m *Memory) GetDraft(ctx context.Context, id types.DraftID) (*model.Draft, error) {
	if id == "" {
		return nil, goerr.New("draft ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	draft, exists := m.drafts[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrDraftNotFound, "failed to get draft", goerr.V("draftID", id))
	}
	if m.now().After(draft.ExpiresAt) {
		return nil, goerr.Wrap(model.ErrDraftNotFound, "draft has expired",
			goerr.V("draftID", id),
			goerr.V("expiresAt", draft.ExpiresAt))
	}

	// Return a copy to prevent external modifications
	return copyDraft(draft), nil
}

// DeleteDraft deletes a draft from memory
func (m *Memory) DeleteDraft(ctx context.Context, id types.DraftID) error {
	if id == "" {
		return goerr.New("draft ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.drafts[id]; !exists {
		return goerr.Wrap(model.ErrDraftNotFound, "failed to delete draft", goerr.V("draftID", id))
	}
	delete(m.drafts, id)
	return nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

func copyDraft(d *model.Draft) *model.Draft {
	c := *d
	c.Input = d.Input.Clone()
	return &c
}
