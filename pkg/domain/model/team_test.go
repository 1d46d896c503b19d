package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
)

func TestTeamConfigValidate(t *testing.T) {
	t.Run("empty configuration is valid", func(t *testing.T) {
		cfg := model.TeamConfig{}
		gt.NoError(t, cfg.Validate())
	})

	t.Run("full configuration", func(t *testing.T) {
		cfg := model.TeamConfig{
			Members:     []types.MemberName{"Alice", "Bob"},
			Months:      []types.MonthName{"May", "June"},
			WorkingDays: 21,
		}
		gt.NoError(t, cfg.Validate())
	})

	t.Run("duplicate member", func(t *testing.T) {
		cfg := model.TeamConfig{Members: []types.MemberName{"Alice", "Alice"}}
		gt.Error(t, cfg.Validate())
	})

	t.Run("single month", func(t *testing.T) {
		cfg := model.TeamConfig{Months: []types.MonthName{"May"}}
		gt.Error(t, cfg.Validate())
	})

	t.Run("unknown month", func(t *testing.T) {
		cfg := model.TeamConfig{Months: []types.MonthName{"May", "Juni"}}
		gt.Error(t, cfg.Validate())
	})

	t.Run("working days out of range", func(t *testing.T) {
		cfg := model.TeamConfig{WorkingDays: 40}
		gt.Error(t, cfg.Validate())
	})
}

func TestTeamConfigDefaults(t *testing.T) {
	t.Run("nil configuration uses built-in defaults", func(t *testing.T) {
		var cfg *model.TeamConfig
		d := cfg.Defaults()
		gt.Equal(t, d.Months, []types.MonthName{"February", "March"})
		gt.Equal(t, d.WorkingDays, 20)
		gt.A(t, d.Members).Length(6)
		gt.Equal(t, d.Members[0], types.MemberName("FSC1"))
		gt.Equal(t, d.Members[5], types.MemberName("FSC6"))
	})

	t.Run("team roster overrides defaults", func(t *testing.T) {
		cfg := &model.TeamConfig{
			Members:     []types.MemberName{"Alice", "Bob"},
			Months:      []types.MonthName{"May", "June"},
			WorkingDays: 18,
		}
		d := cfg.Defaults()
		gt.Equal(t, d.Members, []types.MemberName{"Alice", "Bob"})
		gt.Equal(t, d.Months, []types.MonthName{"May", "June"})
		gt.Equal(t, d.WorkingDays, 18)
	})
}
