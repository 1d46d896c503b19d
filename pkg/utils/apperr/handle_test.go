package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"invalid input", goerr.New("bad months", goerr.T(model.ErrTagInvalidInput)), `"level":"WARN"`},
		{"wrapped invalid input", goerr.Wrap(goerr.New("bad", goerr.T(model.ErrTagInvalidInput)), "outer"), `"level":"WARN"`},
		{"missing artifact", goerr.New("no trend", goerr.T(model.ErrTagMissingArtifact)), `"level":"ERROR"`},
		{"untagged", goerr.New("boom"), `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

			apperr.Handle(ctx, tt.err)
			gt.S(t, buf.String()).Contains(tt.level)
			gt.S(t, buf.String()).Contains("application error")
		})
	}
}

func TestHandleNil(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	apperr.Handle(ctx, nil)
	gt.Equal(t, buf.Len(), 0)
}
