package metrics_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
	"github.com/secmon-lab/casegauge/pkg/service/metrics"
)

func scenarioInput() *model.ReportInput {
	return &model.ReportInput{
		Months:      []types.MonthName{"February", "March"},
		WorkingDays: map[types.MonthName]int{"February": 20, "March": 22},
		Members:     []types.MemberName{"FSC1", "FSC2"},
		ClosedCases: map[types.MemberName]map[types.MonthName]int{
			"FSC1": {"February": 10, "March": 15},
			"FSC2": {"February": 8, "March": 12},
		},
	}
}

func TestDeriveScenario(t *testing.T) {
	result, err := metrics.Derive(scenarioInput())
	gt.NoError(t, err).Required()

	gt.Equal(t, result.Earlier, types.MonthName("February"))
	gt.Equal(t, result.Later, types.MonthName("March"))
	gt.Equal(t, result.Totals["February"], 18)
	gt.Equal(t, result.Totals["March"], 27)
	gt.Equal(t, result.Averages["February"], 0.9)
	gt.Equal(t, result.Averages["March"], 1.23)
	gt.Equal(t, result.Target, 30)
	gt.Equal(t, result.WorkingDays["March"], 22)

	gt.Equal(t, result.Members, []model.MemberDelta{
		{Member: "FSC1", Base: 10, Comparison: 15},
		{Member: "FSC2", Base: 8, Comparison: 12},
	})

	gt.Equal(t, result.Members[1].Change(), 4)
}

func TestDeriveSortsMonthsByCalendar(t *testing.T) {
	in := scenarioInput()
	in.Months = []types.MonthName{"March", "February"}

	result, err := metrics.Derive(in)
	gt.NoError(t, err).Required()
	gt.Equal(t, result.SortedMonths(), []types.MonthName{"February", "March"})

	// Base is always the earlier month regardless of selection order
	gt.Equal(t, result.Members[0].Base, 10)
	gt.Equal(t, result.Members[0].Comparison, 15)
}

func TestDerivePreservesMemberOrder(t *testing.T) {
	in := scenarioInput()
	in.Members = []types.MemberName{"FSC2", "FSC1"}

	result, err := metrics.Derive(in)
	gt.NoError(t, err).Required()
	gt.Equal(t, result.Members[0].Member, types.MemberName("FSC2"))
	gt.Equal(t, result.Members[1].Member, types.MemberName("FSC1"))
}

func TestDeriveTotalsAreExactSums(t *testing.T) {
	for n := model.MinMembers; n <= model.MaxMembers; n++ {
		t.Run(fmt.Sprintf("%d members", n), func(t *testing.T) {
			in := &model.ReportInput{
				Months:      []types.MonthName{"November", "December"},
				WorkingDays: map[types.MonthName]int{"November": 21, "December": 19},
				ClosedCases: map[types.MemberName]map[types.MonthName]int{},
			}
			nov, dec := 0, 0
			for i := 0; i < n; i++ {
				member := types.MemberName(fmt.Sprintf("FSC%d", i+1))
				in.Members = append(in.Members, member)
				in.ClosedCases[member] = map[types.MonthName]int{
					"November": i * 3,
					"December": 50 - i,
				}
				nov += i * 3
				dec += 50 - i
			}

			result, err := metrics.Derive(in)
			gt.NoError(t, err).Required()
			gt.Equal(t, result.Totals["November"], nov)
			gt.Equal(t, result.Totals["December"], dec)
			gt.Equal(t, result.Target, 15*n)
		})
	}
}

func TestDeriveRejectsUnknownMonth(t *testing.T) {
	in := scenarioInput()
	in.Months = []types.MonthName{"February", "Marchh"}

	_, err := metrics.Derive(in)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
}

func TestDeriveRejectsZeroWorkingDays(t *testing.T) {
	in := scenarioInput()
	in.WorkingDays["March"] = 0

	_, err := metrics.Derive(in)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagDivisionByZero)).True()
}

func TestAveragePerDay(t *testing.T) {
	tests := []struct {
		total    int
		days     int
		expected float64
	}{
		{18, 20, 0.9},
		{27, 22, 1.23},
		{1, 8, 0.13}, // 0.125 rounds half away from zero
		{0, 20, 0},
		{100, 3, 33.33},
		{2, 3, 0.67},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.days), func(t *testing.T) {
			avg, err := metrics.AveragePerDay(tt.total, tt.days)
			gt.NoError(t, err)
			gt.Equal(t, avg, tt.expected)
		})
	}

	_, err := metrics.AveragePerDay(10, 0)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagDivisionByZero)).True()
}
