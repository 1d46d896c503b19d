package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

func newValidInput() *model.ReportInput {
	return &model.ReportInput{
		Months:      []types.MonthName{"March", "February"},
		WorkingDays: map[types.MonthName]int{"February": 20, "March": 22},
		Members:     []types.MemberName{"FSC1", "FSC2"},
		ClosedCases: map[types.MemberName]map[types.MonthName]int{
			"FSC1": {"February": 10, "March": 15},
			"FSC2": {"February": 8, "March": 12},
		},
	}
}

func TestReportInputValidate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		gt.NoError(t, newValidInput().Validate())
	})

	tests := []struct {
		name   string
		modify func(in *model.ReportInput)
		errMsg string
	}{
		{
			name:   "one month selected",
			modify: func(in *model.ReportInput) { in.Months = in.Months[:1] },
			errMsg: "exactly 2 months",
		},
		{
			name: "three months selected",
			modify: func(in *model.ReportInput) {
				in.Months = append(in.Months, "April")
				in.WorkingDays["April"] = 20
			},
			errMsg: "exactly 2 months",
		},
		{
			name:   "same month twice",
			modify: func(in *model.ReportInput) { in.Months = []types.MonthName{"March", "March"} },
			errMsg: "distinct",
		},
		{
			name: "unknown month",
			modify: func(in *model.ReportInput) {
				in.Months = []types.MonthName{"Smarch", "March"}
				in.WorkingDays["Smarch"] = 20
			},
			errMsg: "unrecognized month",
		},
		{
			name:   "zero working days",
			modify: func(in *model.ReportInput) { in.WorkingDays["March"] = 0 },
			errMsg: "working days",
		},
		{
			name:   "32 working days",
			modify: func(in *model.ReportInput) { in.WorkingDays["February"] = 32 },
			errMsg: "working days",
		},
		{
			name:   "working days missing",
			modify: func(in *model.ReportInput) { delete(in.WorkingDays, "March") },
			errMsg: "working days are missing",
		},
		{
			name: "no members",
			modify: func(in *model.ReportInput) {
				in.Members = nil
			},
			errMsg: "between 1 and 30",
		},
		{
			name: "31 members",
			modify: func(in *model.ReportInput) {
				in.Members = make([]types.MemberName, 31)
			},
			errMsg: "between 1 and 30",
		},
		{
			name:   "blank member name",
			modify: func(in *model.ReportInput) { in.Members[1] = "  " },
			errMsg: "name is required",
		},
		{
			name:   "duplicate member",
			modify: func(in *model.ReportInput) { in.Members[1] = "FSC1" },
			errMsg: "duplicate",
		},
		{
			name:   "negative cases",
			modify: func(in *model.ReportInput) { in.ClosedCases["FSC2"]["March"] = -1 },
			errMsg: "must not be negative",
		},
		{
			name:   "missing cases",
			modify: func(in *model.ReportInput) { delete(in.ClosedCases["FSC2"], "February") },
			errMsg: "closed cases are missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newValidInput()
			tt.modify(in)

			err := in.Validate()
			gt.Error(t, err)
			gt.S(t, err.Error()).Contains(tt.errMsg)
			gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
		})
	}
}

func TestReportInputClone(t *testing.T) {
	in := newValidInput()
	cloned := in.Clone()

	cloned.Members[0] = "Changed"
	cloned.WorkingDays["March"] = 1
	cloned.ClosedCases["FSC1"]["March"] = 99

	gt.Equal(t, in.Members[0], types.MemberName("FSC1"))
	gt.Equal(t, in.WorkingDays["March"], 22)
	gt.Equal(t, in.Cases("FSC1", "March"), 15)
}
