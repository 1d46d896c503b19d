package http

import (
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
	"github.com/secmon-lab/casegauge/pkg/service/layout"
)

type chartImage struct {
	Title  string
	Source template.URL
	Width  int
}

type monthSummary struct {
	Month   types.MonthName
	Days    int
	Total   int
	Average string
}

type memberSummary struct {
	Name       types.MemberName
	Base       int
	Comparison int
	Change     string
	Class      string
}

// dashboardView is the data of the report page
type dashboardView struct {
	Earlier      types.MonthName
	Later        types.MonthName
	Target       int
	Months       []monthSummary
	Members      []memberSummary
	Trend        chartImage
	MonthGauges  []chartImage
	MemberGauges []chartImage
	Dropped      int
}

func newDashboardView(d *model.Dashboard) *dashboardView {
	m := d.Metrics
	view := &dashboardView{
		Earlier: m.Earlier,
		Later:   m.Later,
		Target:  m.Target,
	}

	for _, month := range m.SortedMonths() {
		view.Months = append(view.Months, monthSummary{
			Month:   month,
			Days:    m.WorkingDays[month],
			Total:   m.Totals[month],
			Average: fmt.Sprintf("%.2f", m.Averages[month]),
		})
	}

	for _, delta := range m.Members {
		row := memberSummary{
			Name:       delta.Member,
			Base:       delta.Base,
			Comparison: delta.Comparison,
			Change:     fmt.Sprintf("%+d", delta.Change()),
		}
		switch {
		case delta.Change() > 0:
			row.Class = "up"
		case delta.Change() < 0:
			row.Class = "down"
		}
		view.Members = append(view.Members, row)
	}

	if trend := d.ArtifactsByRole(model.RoleTrend); len(trend) > 0 {
		view.Trend = toChartImage(trend[0])
	}
	// Average and total gauge of each month side by side
	averages := d.ArtifactsByRole(model.RoleMonthAverageGauge)
	totals := d.ArtifactsByRole(model.RoleMonthTotalGauge)
	for i := range averages {
		view.MonthGauges = append(view.MonthGauges, toChartImage(averages[i]))
		if i < len(totals) {
			view.MonthGauges = append(view.MonthGauges, toChartImage(totals[i]))
		}
	}

	gauges := d.ArtifactsByRole(model.RoleMemberGauge)
	for _, a := range gauges {
		view.MemberGauges = append(view.MemberGauges, toChartImage(a))
	}
	_, view.Dropped = layout.PartitionRows(gauges)

	return view
}

func toChartImage(a model.ChartArtifact) chartImage {
	return chartImage{
		Title: a.Title,
		// #nosec G203 -- PNG bytes produced by the chart renderer
		Source: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(a.Image)),
		Width:  a.PixelWidth,
	}
}
