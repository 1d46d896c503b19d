package metrics

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Derive computes sorted months, per-member deltas, monthly totals, averages per
// working day and the team target from a report input
func Derive(input *model.ReportInput) (*model.DerivedMetrics, error) {
	earlier, later, err := SortMonths(input.Months)
	if err != nil {
		return nil, err
	}

	result := &model.DerivedMetrics{
		Earlier:     earlier,
		Later:       later,
		Members:     make([]model.MemberDelta, 0, len(input.Members)),
		Totals:      make(map[types.MonthName]int, 2),
		Averages:    make(map[types.MonthName]float64, 2),
		WorkingDays: make(map[types.MonthName]int, 2),
		Target:      model.TargetPerMember * len(input.Members),
	}

	for _, member := range input.Members {
		result.Members = append(result.Members, model.MemberDelta{
			Member:     member,
			Base:       input.Cases(member, earlier),
			Comparison: input.Cases(member, later),
		})
	}

	for _, month := range result.SortedMonths() {
		total := 0
		for _, member := range input.Members {
			total += input.Cases(member, month)
		}

		days := input.WorkingDays[month]
		avg, err := AveragePerDay(total, days)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to compute average per day",
				goerr.V("month", month))
		}

		result.Totals[month] = total
		result.Averages[month] = avg
		result.WorkingDays[month] = days
	}

	return result, nil
}

// SortMonths orders exactly two months by calendar position
func SortMonths(months []types.MonthName) (types.MonthName, types.MonthName, error) {
	if len(months) != model.SelectedMonthCount {
		return "", "", goerr.New("exactly 2 months are required",
			goerr.V("months", months),
			goerr.T(model.ErrTagInvalidInput))
	}

	a, ok := months[0].Index()
	if !ok {
		return "", "", goerr.New("unrecognized month name",
			goerr.V("month", months[0]),
			goerr.T(model.ErrTagInvalidInput))
	}
	b, ok := months[1].Index()
	if !ok {
		return "", "", goerr.New("unrecognized month name",
			goerr.V("month", months[1]),
			goerr.T(model.ErrTagInvalidInput))
	}

	if a <= b {
		return months[0], months[1], nil
	}
	return months[1], months[0], nil
}

// AveragePerDay divides total by working days, rounded half away from zero to 2 decimals
func AveragePerDay(total, workingDays int) (float64, error) {
	if workingDays < 1 {
		return 0, goerr.New("working days must be at least 1",
			goerr.V("working_days", workingDays),
			goerr.T(model.ErrTagDivisionByZero))
	}
	return Round2(float64(total) / float64(workingDays)), nil
}

// Round2 rounds half away from zero to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
