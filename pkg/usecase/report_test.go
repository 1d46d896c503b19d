package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
	"github.com/secmon-lab/casegauge/pkg/service/chart"
	"github.com/secmon-lab/casegauge/pkg/service/pdf"
	"github.com/secmon-lab/casegauge/pkg/usecase"
)

func newInput(members int) *model.ReportInput {
	in := &model.ReportInput{
		Months:      []types.MonthName{"February", "March"},
		WorkingDays: map[types.MonthName]int{"February": 20, "March": 22},
		ClosedCases: map[types.MemberName]map[types.MonthName]int{},
	}
	for i := 0; i < members; i++ {
		name := types.MemberName(fmt.Sprintf("FSC%d", i+1))
		in.Members = append(in.Members, name)
		in.ClosedCases[name] = map[types.MonthName]int{"February": 10 + i, "March": 15 + i}
	}
	return in
}

func pngRenderer(t *testing.T) *mocks.ChartRendererMock {
	return &mocks.ChartRendererMock{
		RenderFunc: func(ctx context.Context, spec model.ChartSpec, width, height int) ([]byte, error) {
			var buf bytes.Buffer
			if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, width, height))); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}

func TestReportMetrics(t *testing.T) {
	uc := usecase.NewReport(pngRenderer(t), pdf.New())

	m, err := uc.Metrics(context.Background(), newInput(2))
	gt.NoError(t, err).Required()
	gt.Equal(t, m.Totals["February"], 21)
	gt.Equal(t, m.Totals["March"], 31)
	gt.Equal(t, m.Target, 30)
}

func TestReportDashboard(t *testing.T) {
	renderer := pngRenderer(t)
	uc := usecase.NewReport(renderer, pdf.New())

	d, err := uc.Dashboard(context.Background(), newInput(3))
	gt.NoError(t, err).Required()

	gt.A(t, d.Artifacts).Length(8)
	gt.A(t, renderer.RenderCalls()).Length(8)
	gt.A(t, d.ArtifactsByRole(model.RoleMemberGauge)).Length(3)
	gt.Equal(t, d.ArtifactsByRole(model.RoleMemberGauge)[2].Title, "FSC3 (March vs February)")
	gt.Equal(t, d.ArtifactsByRole(model.RoleTrend)[0].PixelWidth, chart.TrendSize.Width)
	gt.Equal(t, d.Input.Members, newInput(3).Members)
}

func TestReportExport(t *testing.T) {
	renderer := pngRenderer(t)
	uc := usecase.NewReport(renderer, pdf.New())

	report, err := uc.Export(context.Background(), newInput(2))
	gt.NoError(t, err).Required()

	gt.Equal(t, report.FileName, "fsc_performance_report.pdf")
	gt.Equal(t, report.ContentType, "application/pdf")
	gt.True(t, bytes.HasPrefix(report.Data, []byte("%PDF")))
	gt.A(t, renderer.RenderCalls()).Length(7)

	row := report.Layout.Row(0)
	gt.A(t, row).Length(2)
	gt.Equal(t, row[0].X, 88.5)
	gt.Equal(t, row[1].X, 148.5)
	gt.Equal(t, report.Layout.Texts[1].Text, "February Working Days: 20")
	gt.Equal(t, report.Layout.Texts[2].Text, "March Working Days: 22")
}

func TestReportExportLogsDroppedMembers(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := ctxlog.With(context.Background(), logger)

	uc := usecase.NewReport(pngRenderer(t), pdf.New())
	report, err := uc.Export(ctx, newInput(11))
	gt.NoError(t, err).Required()

	gt.Equal(t, report.Layout.Dropped, 1)
	gt.A(t, report.Layout.Row(1)).Length(5)
	gt.S(t, logs.String()).Contains(`"dropped":1`)
	// Row of five starts left of the page edge
	gt.S(t, logs.String()).Contains("member_gauge_0")
}

func TestReportRejectsInvalidInput(t *testing.T) {
	renderer := pngRenderer(t)
	uc := usecase.NewReport(renderer, pdf.New())

	in := newInput(2)
	in.Months = []types.MonthName{"February"}

	_, err := uc.Export(context.Background(), in)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
	gt.A(t, renderer.RenderCalls()).Length(0)

	_, err = uc.Export(context.Background(), nil)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
}

func TestReportRenderFailure(t *testing.T) {
	renderer := &mocks.ChartRendererMock{
		RenderFunc: func(ctx context.Context, spec model.ChartSpec, width, height int) ([]byte, error) {
			return nil, goerr.New("boom", goerr.T(model.ErrTagRenderFailed))
		},
	}
	uc := usecase.NewReport(renderer, pdf.New())

	_, err := uc.Export(context.Background(), newInput(2))
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagRenderFailed)).True()
	// The first failure stops the pass before the next chart starts
	gt.A(t, renderer.RenderCalls()).Length(1)
}

func TestReportExportWithChartRenderer(t *testing.T) {
	uc := usecase.NewReport(chart.New(), pdf.New())

	for _, members := range []int{1, 5, 12} {
		t.Run(fmt.Sprintf("%d members", members), func(t *testing.T) {
			report, err := uc.Export(context.Background(), newInput(members))
			gt.NoError(t, err).Required()
			gt.True(t, bytes.HasPrefix(report.Data, []byte("%PDF")))

			for _, p := range report.Layout.Images {
				gt.True(t, p.Bottom() <= model.PageHeight+0.01)
			}
		})
	}
}

func TestReportRendersChartsSequentially(t *testing.T) {
	var running, peak atomic.Int32
	base := pngRenderer(t)
	renderer := &mocks.ChartRendererMock{
		RenderFunc: func(ctx context.Context, spec model.ChartSpec, width, height int) ([]byte, error) {
			n := running.Add(1)
			defer running.Add(-1)
			if n > peak.Load() {
				peak.Store(n)
			}
			return base.RenderFunc(ctx, spec, width, height)
		},
	}
	uc := usecase.NewReport(renderer, pdf.New())

	input := newInput(12)
	_, err := uc.Export(context.Background(), input)
	gt.NoError(t, err).Required()

	gt.Equal(t, peak.Load(), int32(1))

	calls := renderer.RenderCalls()
	m, err := uc.Metrics(context.Background(), input)
	gt.NoError(t, err).Required()
	requests := chart.BuildRequests(m)
	gt.A(t, calls).Length(len(requests))
	for i, req := range requests {
		gt.Equal(t, calls[i].Spec.Title, req.Spec.Title)
	}
}
