package model

import "github.com/secmon-lab/casegauge/pkg/domain/types"

// TargetPerMember is the expected closed case count per FSC and month.
// It is a fixed business policy; the monthly target is TargetPerMember * member count.
const TargetPerMember = 15

// MemberDelta holds one member's counts for the earlier (base) and later (comparison) month
type MemberDelta struct {
	Member     types.MemberName `json:"member"`
	Base       int              `json:"base"`
	Comparison int              `json:"comparison"`
}

// Change returns Comparison - Base
func (d MemberDelta) Change() int {
	return d.Comparison - d.Base
}

// DerivedMetrics is everything computed from a ReportInput
type DerivedMetrics struct {
	Earlier     types.MonthName             `json:"earlier"`
	Later       types.MonthName             `json:"later"`
	Members     []MemberDelta               `json:"members"`
	Totals      map[types.MonthName]int     `json:"totals"`
	Averages    map[types.MonthName]float64 `json:"averages"`
	WorkingDays map[types.MonthName]int     `json:"working_days"`
	Target      int                         `json:"target"`
}

// SortedMonths returns the selected months in calendar order
func (m *DerivedMetrics) SortedMonths() []types.MonthName {
	return []types.MonthName{m.Earlier, m.Later}
}
