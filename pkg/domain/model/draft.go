package model

import (
	"time"

	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Draft holds the submitted form of one browser session until it expires
type Draft struct {
	ID        types.DraftID `json:"id"`
	Input     *ReportInput  `json:"input"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// NewDraft creates a new Draft with a UUID v7 ID
func NewDraft(input *ReportInput, ttl time.Duration) (*Draft, error) {
	id, err := types.NewDraftID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Draft{
		ID:        id,
		Input:     input.Clone(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired checks if the draft has expired
func (d *Draft) IsExpired() bool {
	return time.Now().After(d.ExpiresAt)
}
