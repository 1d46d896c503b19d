package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
)

// Handle logs an application error. Errors caused by user input are logged at
// warn level, everything else at error level.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	level := slog.LevelError
	if goerr.HasTag(err, model.ErrTagInvalidInput) || goerr.HasTag(err, model.ErrTagDivisionByZero) {
		level = slog.LevelWarn
	}

	ctxlog.From(ctx).Log(ctx, level, "application error", "error", err)
}
