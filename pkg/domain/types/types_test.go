package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

func TestMonthNameIndex(t *testing.T) {
	tests := []struct {
		name     string
		month    types.MonthName
		expected int
		ok       bool
	}{
		{"January is first", "January", 0, true},
		{"March", "March", 2, true},
		{"December is last", "December", 11, true},
		{"lowercase is rejected", "march", -1, false},
		{"abbreviation is rejected", "Mar", -1, false},
		{"empty", "", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := tt.month.Index()
			gt.Equal(t, idx, tt.expected)
			gt.Equal(t, ok, tt.ok)
			gt.Equal(t, tt.month.IsValid(), tt.ok)
		})
	}
}

func TestMonths(t *testing.T) {
	months := types.Months()
	gt.A(t, months).Length(12)
	gt.Equal(t, months[0], types.MonthName("January"))
	gt.Equal(t, months[11], types.MonthName("December"))

	// Returned slice is a copy
	months[0] = "Changed"
	gt.Equal(t, types.Months()[0], types.MonthName("January"))
}

func TestMemberNameNormalize(t *testing.T) {
	gt.Equal(t, types.MemberName("  FSC1 ").Normalize(), types.MemberName("FSC1"))
}

func TestNewDraftID(t *testing.T) {
	a, err := types.NewDraftID()
	gt.NoError(t, err).Required()
	b, err := types.NewDraftID()
	gt.NoError(t, err).Required()
	gt.NotEqual(t, a, b)
	gt.Equal(t, len(a.String()), 36)
}
