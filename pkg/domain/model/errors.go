package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	ErrTagInvalidInput    = goerr.NewTag("invalid_input")
	ErrTagDivisionByZero  = goerr.NewTag("division_by_zero")
	ErrTagMissingArtifact = goerr.NewTag("missing_artifact")
	ErrTagLayoutOverflow  = goerr.NewTag("layout_overflow")
	ErrTagRenderFailed    = goerr.NewTag("render_failed")
)

// Sentinel errors for domain operations
var (
	ErrDraftNotFound = goerr.New("draft not found")
)
