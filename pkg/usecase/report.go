package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/interfaces"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/service/chart"
	"github.com/secmon-lab/casegauge/pkg/service/layout"
	"github.com/secmon-lab/casegauge/pkg/service/metrics"
	"github.com/secmon-lab/casegauge/pkg/utils/async"
)

// RenderWorkers is the number of charts rendered at the same time. Charts are
// rendered one at a time in request order.
const RenderWorkers = 1

// Report implements ReportUseCase
type Report struct {
	renderer interfaces.ChartRenderer
	writer   interfaces.DocumentWriter
}

var _ ReportUseCase = (*Report)(nil)

// NewReport creates a new Report use case
func NewReport(renderer interfaces.ChartRenderer, writer interfaces.DocumentWriter) *Report {
	return &Report{
		renderer: renderer,
		writer:   writer,
	}
}

// Metrics validates the input and derives metrics
func (uc *Report) Metrics(ctx context.Context, input *model.ReportInput) (*model.DerivedMetrics, error) {
	if input == nil {
		return nil, goerr.New("report input is required", goerr.T(model.ErrTagInvalidInput))
	}
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report input")
	}

	m, err := metrics.Derive(input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to derive metrics")
	}
	return m, nil
}

// Dashboard derives metrics and renders all charts
func (uc *Report) Dashboard(ctx context.Context, input *model.ReportInput) (*model.Dashboard, error) {
	m, err := uc.Metrics(ctx, input)
	if err != nil {
		return nil, err
	}

	artifacts, err := uc.render(ctx, chart.BuildRequests(m))
	if err != nil {
		return nil, err
	}

	return &model.Dashboard{
		Input:     input.Clone(),
		Metrics:   m,
		Artifacts: artifacts,
	}, nil
}

// Export renders all charts, composes them on one page and writes the PDF.
// Charts are rendered one by one; nothing is written to disk.
func (uc *Report) Export(ctx context.Context, input *model.ReportInput) (*model.ExportedReport, error) {
	dashboard, err := uc.Dashboard(ctx, input)
	if err != nil {
		return nil, err
	}

	page, err := layout.Compose(sectionsOf(dashboard))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compose report layout")
	}

	logger := ctxlog.From(ctx)
	if page.Dropped > 0 {
		logger.Warn("Member gauges do not fit on the page and are left out",
			"members", len(dashboard.Metrics.Members),
			"dropped", page.Dropped)
	}
	for _, p := range page.Overflows() {
		logger.Warn("Chart extends beyond the page",
			"artifact", p.Ref.String(),
			"x", p.X,
			"y", p.Y,
			"right", p.Right(),
			"bottom", p.Bottom())
	}

	data, err := uc.writer.Write(ctx, page, dashboard.Artifacts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to write report document")
	}

	logger.Info("Report exported",
		"earlier", dashboard.Metrics.Earlier,
		"later", dashboard.Metrics.Later,
		"members", len(dashboard.Metrics.Members),
		"bytes", len(data))

	return &model.ExportedReport{
		FileName:    model.ReportFileName,
		ContentType: model.ReportContentType,
		Data:        data,
		Layout:      page,
	}, nil
}

func (uc *Report) render(ctx context.Context, requests []model.ChartRequest) ([]model.ChartArtifact, error) {
	return async.Map(ctx, requests, RenderWorkers, func(ctx context.Context, req model.ChartRequest) (model.ChartArtifact, error) {
		img, err := uc.renderer.Render(ctx, req.Spec, req.Width, req.Height)
		if err != nil {
			return model.ChartArtifact{}, goerr.Wrap(err, "failed to render chart",
				goerr.V("role", req.Role),
				goerr.V("index", req.Index),
				goerr.V("title", req.Spec.Title))
		}

		return model.ChartArtifact{
			Role:        req.Role,
			Index:       req.Index,
			Title:       req.Spec.Title,
			Image:       img,
			PixelWidth:  req.Width,
			PixelHeight: req.Height,
		}, nil
	})
}

func sectionsOf(d *model.Dashboard) layout.Sections {
	s := layout.Sections{
		Title:         model.ReportTitle,
		Trend:         d.ArtifactsByRole(model.RoleTrend),
		MemberGauges:  d.ArtifactsByRole(model.RoleMemberGauge),
		AverageGauges: d.ArtifactsByRole(model.RoleMonthAverageGauge),
		TotalGauges:   d.ArtifactsByRole(model.RoleMonthTotalGauge),
	}
	for _, month := range d.Metrics.SortedMonths() {
		s.WorkingDays = append(s.WorkingDays, layout.MonthDays{Month: month, Days: d.Metrics.WorkingDays[month]})
	}
	return s
}
