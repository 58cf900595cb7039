package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

func TestMilestoneHealth(t *testing.T) {
	ref := dates.Day(2025, time.June, 15)

	ms := func(end time.Time, percent int) *model.Milestone {
		return &model.Milestone{
			Name:            "m",
			EndDate:         end,
			PercentComplete: percent,
			Status:          types.StatusActive,
		}
	}

	t.Run("past end date and incomplete is late", func(t *testing.T) {
		m := ms(dates.AddDays(ref, -3), 50)
		gt.Value(t, m.Health(ref)).Equal(types.HealthLate)
	})

	t.Run("due soon and under 80 percent is risk", func(t *testing.T) {
		m := ms(dates.AddDays(ref, 5), 70)
		gt.Value(t, m.Health(ref)).Equal(types.HealthRisk)
	})

	t.Run("distant end date is ok", func(t *testing.T) {
		m := ms(dates.AddDays(ref, 30), 10)
		gt.Value(t, m.Health(ref)).Equal(types.HealthOK)
	})

	t.Run("past end date but complete is ok", func(t *testing.T) {
		m := ms(dates.AddDays(ref, -3), 100)
		gt.Value(t, m.Health(ref)).Equal(types.HealthOK)
	})

	t.Run("due soon but nearly complete is ok", func(t *testing.T) {
		m := ms(dates.AddDays(ref, 5), 80)
		gt.Value(t, m.Health(ref)).Equal(types.HealthOK)
	})
}

func TestClampPercent(t *testing.T) {
	gt.Value(t, model.ClampPercent(-5)).Equal(0)
	gt.Value(t, model.ClampPercent(0)).Equal(0)
	gt.Value(t, model.ClampPercent(55)).Equal(55)
	gt.Value(t, model.ClampPercent(150)).Equal(100)
}
