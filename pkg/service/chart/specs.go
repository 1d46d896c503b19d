package chart

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
)

// Chart value ranges
const (
	TrendYMax        = 50.0
	MemberGaugeMax   = 50.0
	AverageGaugeMax  = 10.0
	TotalGaugeMinMax = 50.0
	TotalGaugeMargin = 10.0
)

// Pixel sizes of rendered images. Heights are chosen so that the fixed page zones
// do not overlap once scaled to their placement width.
var (
	TrendSize       = Size{Width: 700, Height: 300}
	MonthGaugeSize  = Size{Width: 300, Height: 200}
	MemberGaugeSize = Size{Width: 350, Height: 270}
)

// Size is a pixel size
type Size struct {
	Width  int
	Height int
}

// BuildRequests returns the charts of a report in a fixed order: the trend chart,
// one gauge per member, the average-per-day gauges and the total-vs-target gauges
func BuildRequests(m *model.DerivedMetrics) []model.ChartRequest {
	requests := []model.ChartRequest{
		{Role: model.RoleTrend, Spec: TrendSpec(m), Width: TrendSize.Width, Height: TrendSize.Height},
	}

	for i, d := range m.Members {
		requests = append(requests, model.ChartRequest{
			Role:   model.RoleMemberGauge,
			Index:  i,
			Spec:   MemberGaugeSpec(m, d),
			Width:  MemberGaugeSize.Width,
			Height: MemberGaugeSize.Height,
		})
	}

	for i := range m.SortedMonths() {
		requests = append(requests, model.ChartRequest{
			Role:   model.RoleMonthAverageGauge,
			Index:  i,
			Spec:   AverageGaugeSpec(m, i),
			Width:  MonthGaugeSize.Width,
			Height: MonthGaugeSize.Height,
		})
	}

	for i := range m.SortedMonths() {
		requests = append(requests, model.ChartRequest{
			Role:   model.RoleMonthTotalGauge,
			Index:  i,
			Spec:   TotalGaugeSpec(m, i),
			Width:  MonthGaugeSize.Width,
			Height: MonthGaugeSize.Height,
		})
	}

	return requests
}

// TrendSpec is a line per month across members
func TrendSpec(m *model.DerivedMetrics) model.ChartSpec {
	categories := lo.Map(m.Members, func(d model.MemberDelta, _ int) string {
		return d.Member.String()
	})
	base := lo.Map(m.Members, func(d model.MemberDelta, _ int) float64 {
		return float64(d.Base)
	})
	comparison := lo.Map(m.Members, func(d model.MemberDelta, _ int) float64 {
		return float64(d.Comparison)
	})
	earlier := model.TrendSeries{Name: m.Earlier.String(), Values: base}
	later := model.TrendSeries{Name: m.Later.String(), Values: comparison}

	return model.ChartSpec{
		Kind:  model.ChartKindTrend,
		Title: "Monthly Closes Trend",
		Trend: &model.TrendSpec{
			Categories: categories,
			Series:     []model.TrendSeries{earlier, later},
			XTitle:     "FSCs",
			YTitle:     "Closed Cases",
			YMin:       0,
			YMax:       TrendYMax,
		},
	}
}

// MemberGaugeSpec shows the later month against the earlier one
func MemberGaugeSpec(m *model.DerivedMetrics, d model.MemberDelta) model.ChartSpec {
	base := float64(d.Base)
	return model.ChartSpec{
		Kind:  model.ChartKindGauge,
		Title: fmt.Sprintf("%s (%s vs %s)", d.Member, m.Later, m.Earlier),
		Gauge: &model.GaugeSpec{
			Value:     float64(d.Comparison),
			Reference: &base,
			Min:       0,
			Max:       MemberGaugeMax,
		},
	}
}

// AverageGaugeSpec shows closed cases per working day of the i-th sorted month
func AverageGaugeSpec(m *model.DerivedMetrics, i int) model.ChartSpec {
	month := m.SortedMonths()[i]
	return model.ChartSpec{
		Kind:  model.ChartKindGauge,
		Title: fmt.Sprintf("%s: Avg Closed per Day", month),
		Gauge: &model.GaugeSpec{
			Value:    m.Averages[month],
			Min:      0,
			Max:      AverageGaugeMax,
			Decimals: 2,
		},
	}
}

// TotalGaugeSpec shows the monthly total of the i-th sorted month against the target
func TotalGaugeSpec(m *model.DerivedMetrics, i int) model.ChartSpec {
	month := m.SortedMonths()[i]
	target := float64(m.Target)
	return model.ChartSpec{
		Kind:  model.ChartKindGauge,
		Title: fmt.Sprintf("%s Total vs Target (%d)", month, m.Target),
		Gauge: &model.GaugeSpec{
			Value:     float64(m.Totals[month]),
			Reference: &target,
			Min:       0,
			Max:       max(TotalGaugeMinMax, target+TotalGaugeMargin),
		},
	}
}
