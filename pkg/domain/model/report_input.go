package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Input bounds enforced before any computation
const (
	SelectedMonthCount = 2
	MinMembers         = 1
	MaxMembers         = 30
	MinWorkingDays     = 1
	MaxWorkingDays     = 31
)

// ReportInput is the complete, immutable form state of one report request
type ReportInput struct {
	Months      []types.MonthName                            `json:"months" yaml:"months"`
	WorkingDays map[types.MonthName]int                      `json:"working_days" yaml:"working_days"`
	Members     []types.MemberName                           `json:"members" yaml:"members"`
	ClosedCases map[types.MemberName]map[types.MonthName]int `json:"closed_cases" yaml:"closed_cases"`
}

// Validate checks the input against the form bounds
func (in *ReportInput) Validate() error {
	if len(in.Months) != SelectedMonthCount {
		return goerr.New("please select exactly 2 months",
			goerr.V("selected", len(in.Months)),
			goerr.T(ErrTagInvalidInput))
	}
	if in.Months[0] == in.Months[1] {
		return goerr.New("selected months must be distinct",
			goerr.V("month", in.Months[0]),
			goerr.T(ErrTagInvalidInput))
	}
	for _, month := range in.Months {
		if !month.IsValid() {
			return goerr.New("unrecognized month name",
				goerr.V("month", month),
				goerr.T(ErrTagInvalidInput))
		}

		days, ok := in.WorkingDays[month]
		if !ok {
			return goerr.New("working days are missing for month",
				goerr.V("month", month),
				goerr.T(ErrTagInvalidInput))
		}
		if days < MinWorkingDays || days > MaxWorkingDays {
			return goerr.New("working days must be between 1 and 31",
				goerr.V("month", month),
				goerr.V("days", days),
				goerr.T(ErrTagInvalidInput))
		}
	}

	if len(in.Members) < MinMembers || len(in.Members) > MaxMembers {
		return goerr.New("number of FSCs must be between 1 and 30",
			goerr.V("members", len(in.Members)),
			goerr.T(ErrTagInvalidInput))
	}

	seen := make(map[types.MemberName]bool, len(in.Members))
	for i, member := range in.Members {
		if member.Normalize() == "" {
			return goerr.New("FSC name is required",
				goerr.V("index", i),
				goerr.T(ErrTagInvalidInput))
		}
		if seen[member] {
			return goerr.New("duplicate FSC name",
				goerr.V("member", member),
				goerr.T(ErrTagInvalidInput))
		}
		seen[member] = true

		for _, month := range in.Months {
			count, ok := in.ClosedCases[member][month]
			if !ok {
				return goerr.New("closed cases are missing",
					goerr.V("member", member),
					goerr.V("month", month),
					goerr.T(ErrTagInvalidInput))
			}
			if count < 0 {
				return goerr.New("closed cases must not be negative",
					goerr.V("member", member),
					goerr.V("month", month),
					goerr.V("count", count),
					goerr.T(ErrTagInvalidInput))
			}
		}
	}

	return nil
}

// Cases returns the closed case count of a member in a month
func (in *ReportInput) Cases(member types.MemberName, month types.MonthName) int {
	return in.ClosedCases[member][month]
}

// Clone returns a deep copy so that stored drafts cannot be modified by callers
func (in *ReportInput) Clone() *ReportInput {
	if in == nil {
		return nil
	}
	out := &ReportInput{
		Months:      append([]types.MonthName(nil), in.Months...),
		Members:     append([]types.MemberName(nil), in.Members...),
		WorkingDays: make(map[types.MonthName]int, len(in.WorkingDays)),
		ClosedCases: make(map[types.MemberName]map[types.MonthName]int, len(in.ClosedCases)),
	}
	for month, days := range in.WorkingDays {
		out.WorkingDays[month] = days
	}
	for member, byMonth := range in.ClosedCases {
		m := make(map[types.MonthName]int, len(byMonth))
		for month, count := range byMonth {
			m[month] = count
		}
		out.ClosedCases[member] = m
	}
	return out
}
