// Package layout composes rendered chart images into a single landscape A4 page.
//
// The page is split into fixed zones:
//
//	y=10        title
//	y=18..      one working-day line per month, 6mm apart
//	y=30        average-per-day gauges (left) and trend chart (right)
//	y=64        total-vs-target gauges (left)
//	y=115, 165  member gauge grid, two centered rows of at most five
//
// Compose is a pure function of its input.
package layout

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Page geometry in millimetres
const (
	Margin = 10.0

	TitleY        = 10.0
	TitleHeight   = 10.0
	TitleFontSize = 12.0

	SummaryStartY   = 18.0
	SummaryStep     = 6.0
	SummaryFontSize = 10.0

	MonthGaugeWidth  = 50.0
	MonthGaugePitch  = 55.0
	AverageGaugeY    = 30.0
	TotalGaugeY      = 64.0
	MonthGaugeCount  = 2
	TrendX           = 125.0
	TrendY           = 30.0
	TrendWidth       = 160.0
	MemberGaugeWidth = 58.0
	MemberGaugePitch = 60.0
	MembersPerRow    = 5
)

// MemberRowY is the y position of each member gauge row. Its length is the number
// of rows laid out; gauges beyond len(MemberRowY)*MembersPerRow are dropped.
var MemberRowY = []float64{115, 165}

// MonthDays is one line of the working-day summary
type MonthDays struct {
	Month types.MonthName
	Days  int
}

// Sections are the inputs of one page
type Sections struct {
	Title         string
	WorkingDays   []MonthDays
	Trend         []model.ChartArtifact
	MemberGauges  []model.ChartArtifact
	AverageGauges []model.ChartArtifact
	TotalGauges   []model.ChartArtifact
}

// Compose computes placement of every text and image on the page
func Compose(s Sections) (*model.PageLayout, error) {
	if err := checkCount(model.RoleTrend, s.Trend, 1); err != nil {
		return nil, err
	}
	if err := checkCount(model.RoleMonthAverageGauge, s.AverageGauges, MonthGaugeCount); err != nil {
		return nil, err
	}
	if err := checkCount(model.RoleMonthTotalGauge, s.TotalGauges, MonthGaugeCount); err != nil {
		return nil, err
	}
	for _, group := range [][]model.ChartArtifact{s.Trend, s.AverageGauges, s.TotalGauges, s.MemberGauges} {
		for _, a := range group {
			if a.PixelWidth <= 0 || a.PixelHeight <= 0 {
				return nil, goerr.New("artifact has no pixel size",
					goerr.V("artifact", a.Ref().String()),
					goerr.T(model.ErrTagMissingArtifact))
			}
		}
	}

	layout := &model.PageLayout{
		Width:  model.PageWidth,
		Height: model.PageHeight,
	}

	layout.Texts = append(layout.Texts, model.TextPlacement{
		X:        Margin,
		Y:        TitleY,
		Width:    model.PageWidth - 2*Margin,
		Height:   TitleHeight,
		FontSize: TitleFontSize,
		Align:    model.AlignCenter,
		Text:     s.Title,
	})

	cursor := SummaryStartY
	for _, md := range s.WorkingDays {
		layout.Texts = append(layout.Texts, model.TextPlacement{
			X:        Margin,
			Y:        cursor,
			Width:    model.PageWidth - 2*Margin,
			Height:   SummaryStep,
			FontSize: SummaryFontSize,
			Align:    model.AlignLeft,
			Text:     fmt.Sprintf("%s Working Days: %d", md.Month, md.Days),
		})
		cursor += SummaryStep
	}
	if cursor > AverageGaugeY {
		return nil, goerr.New("working-day summary overlaps the gauge zone",
			goerr.V("cursor", cursor),
			goerr.V("zone_top", AverageGaugeY),
			goerr.T(model.ErrTagLayoutOverflow))
	}

	placeMonthRow(layout, s.AverageGauges, AverageGaugeY)
	placeMonthRow(layout, s.TotalGauges, TotalGaugeY)
	layout.Images = append(layout.Images, place(s.Trend[0], TrendX, TrendY, TrendWidth, -1))

	rows, dropped := PartitionRows(s.MemberGauges)
	for i, row := range rows {
		startX := RowStartX(len(row))
		for j, a := range row {
			x := startX + float64(j)*MemberGaugePitch
			layout.Images = append(layout.Images, place(a, x, MemberRowY[i], MemberGaugeWidth, i))
		}
	}
	layout.Dropped = dropped

	return layout, nil
}

// PartitionRows splits member gauges into rows of at most MembersPerRow in input
// order. Only len(MemberRowY) rows are returned; the number of gauges left out is
// returned as dropped.
func PartitionRows(gauges []model.ChartArtifact) ([][]model.ChartArtifact, int) {
	rows := make([][]model.ChartArtifact, len(MemberRowY))
	for i := range rows {
		start := i * MembersPerRow
		end := start + MembersPerRow
		if start > len(gauges) {
			start = len(gauges)
		}
		if end > len(gauges) {
			end = len(gauges)
		}
		rows[i] = gauges[start:end]
	}

	capacity := len(MemberRowY) * MembersPerRow
	dropped := 0
	if len(gauges) > capacity {
		dropped = len(gauges) - capacity
	}
	return rows, dropped
}

// RowStartX returns the x of the first gauge so that a row of count gauges is
// centered on the page
func RowStartX(count int) float64 {
	totalWidth := float64(count) * MemberGaugePitch
	return (model.PageWidth - totalWidth) / 2
}

func placeMonthRow(layout *model.PageLayout, gauges []model.ChartArtifact, y float64) {
	for i, a := range gauges {
		x := Margin + float64(i)*MonthGaugePitch
		layout.Images = append(layout.Images, place(a, x, y, MonthGaugeWidth, -1))
	}
}

func place(a model.ChartArtifact, x, y, width float64, row int) model.ImagePlacement {
	return model.ImagePlacement{
		X:      x,
		Y:      y,
		Width:  width,
		Height: a.HeightFor(width),
		Row:    row,
		Ref:    a.Ref(),
	}
}

func checkCount(role model.ArtifactRole, artifacts []model.ChartArtifact, expected int) error {
	if len(artifacts) != expected {
		return goerr.New("unexpected number of artifacts",
			goerr.V("role", role),
			goerr.V("expected", expected),
			goerr.V("actual", len(artifacts)),
			goerr.T(model.ErrTagMissingArtifact))
	}
	for _, a := range artifacts {
		if a.Role != role {
			return goerr.New("artifact has wrong role",
				goerr.V("expected", role),
				goerr.V("actual", a.Role),
				goerr.T(model.ErrTagMissingArtifact))
		}
	}
	return nil
}
