package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

// Form defaults when no team file is configured
const (
	DefaultMemberCount = 6
	DefaultWorkingDays = 20
)

// DefaultMonths is the preselected month pair of the form
var DefaultMonths = []types.MonthName{"February", "March"}

// TeamConfig pre-fills the data-entry form
type TeamConfig struct {
	Members     []types.MemberName `yaml:"members"`
	Months      []types.MonthName  `yaml:"months,omitempty"`
	WorkingDays int                `yaml:"working_days,omitempty"`
}

// Validate validates the team configuration
func (c *TeamConfig) Validate() error {
	if len(c.Members) > MaxMembers {
		return goerr.New("too many members in team configuration",
			goerr.V("members", len(c.Members)),
			goerr.V("max", MaxMembers))
	}

	seen := make(map[types.MemberName]bool)
	for i, member := range c.Members {
		if member.Normalize() == "" {
			return goerr.New("member name is required", goerr.V("index", i))
		}
		if seen[member] {
			return goerr.New("duplicate member name", goerr.V("member", member))
		}
		seen[member] = true
	}

	if len(c.Months) > 0 {
		if len(c.Months) != SelectedMonthCount || c.Months[0] == c.Months[1] {
			return goerr.New("team configuration must preselect exactly 2 distinct months",
				goerr.V("months", c.Months))
		}
		for _, month := range c.Months {
			if !month.IsValid() {
				return goerr.New("unrecognized month name", goerr.V("month", month))
			}
		}
	}

	if c.WorkingDays != 0 && (c.WorkingDays < MinWorkingDays || c.WorkingDays > MaxWorkingDays) {
		return goerr.New("working days must be between 1 and 31",
			goerr.V("working_days", c.WorkingDays))
	}

	return nil
}

// FormDefaults are the initial values of the data-entry form
type FormDefaults struct {
	Months      []types.MonthName
	Members     []types.MemberName
	WorkingDays int
}

// Defaults returns form defaults, falling back to built-in values.
// A nil TeamConfig is allowed.
func (c *TeamConfig) Defaults() FormDefaults {
	d := FormDefaults{
		Months:      append([]types.MonthName(nil), DefaultMonths...),
		WorkingDays: DefaultWorkingDays,
	}

	if c != nil && len(c.Months) == SelectedMonthCount {
		d.Months = append([]types.MonthName(nil), c.Months...)
	}
	if c != nil && c.WorkingDays > 0 {
		d.WorkingDays = c.WorkingDays
	}
	if c != nil && len(c.Members) > 0 {
		d.Members = append([]types.MemberName(nil), c.Members...)
		return d
	}

	for i := 0; i < DefaultMemberCount; i++ {
		d.Members = append(d.Members, types.MemberName(fmt.Sprintf("FSC%d", i+1)))
	}
	return d
}
