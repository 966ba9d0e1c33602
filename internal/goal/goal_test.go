package goal

import (
	"testing"

	"hydromate/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Run("MaleMetricActive", func(t *testing.T) {
		profile := models.UserProfile{
			Gender:        models.GenderMale,
			Weight:        70,
			ActivityLevel: models.ActivityActive,
			UnitSystem:    models.UnitMetric,
		}
		// 70 * 35 * 1.2
		assert.Equal(t, 2940, Calculate(profile))
	})

	t.Run("FemaleMetricNotVeryActive", func(t *testing.T) {
		profile := models.UserProfile{
			Gender:        models.GenderFemale,
			Weight:        60,
			ActivityLevel: models.ActivityNotVery,
			UnitSystem:    models.UnitMetric,
		}
		// 60 * 31 * 1.0
		assert.Equal(t, 1860, Calculate(profile))
	})

	t.Run("ActivityMultipliers", func(t *testing.T) {
		base := models.UserProfile{
			Gender:     models.GenderMale,
			Weight:     80,
			UnitSystem: models.UnitMetric,
		}

		cases := []struct {
			level models.ActivityLevel
			want  int
		}{
			{models.ActivityNotVery, 2800},
			{models.ActivityLight, 3080},
			{models.ActivityActive, 3360},
			{models.ActivityHigh, 3920},
		}

		for _, tc := range cases {
			profile := base
			profile.ActivityLevel = tc.level
			assert.Equal(t, tc.want, Calculate(profile), "level %s", tc.level)
		}
	})

	t.Run("ImperialDividesFinalResult", func(t *testing.T) {
		profile := models.UserProfile{
			Gender:        models.GenderMale,
			Weight:        70,
			ActivityLevel: models.ActivityActive,
			UnitSystem:    models.UnitImperial,
		}
		// The weight stays in the profile's declared unit; only the final
		// value converts to fl oz: round(70 * 35 * 1.2 / 29.5735) = 99.
		assert.Equal(t, 99, Calculate(profile))
	})

	t.Run("Deterministic", func(t *testing.T) {
		profile := models.UserProfile{
			Gender:        models.GenderFemale,
			Weight:        63.5,
			ActivityLevel: models.ActivityLight,
			UnitSystem:    models.UnitMetric,
		}
		first := Calculate(profile)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Calculate(profile))
		}
	})
}
