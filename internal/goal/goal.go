// Package goal derives the daily fluid-intake target from a user profile.
package goal

import (
	"math"

	"hydromate/internal/models"
)

// MlPerFlOz converts milliliters to US fluid ounces.
const MlPerFlOz = 29.5735

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivityNotVery: 1.0,
	models.ActivityLight:   1.1,
	models.ActivityActive:  1.2,
	models.ActivityHigh:    1.4,
}

// Calculate returns the daily intake goal for the profile, in milliliters
// for metric profiles and fluid ounces for imperial ones.
//
// The weight is taken in whichever unit the profile declares (kg or lbs)
// and multiplied by the per-kilogram base rate either way; only the final
// value is converted to fl oz. Product has been asked about the missing
// lbs->kg conversion; until they decide, this matches the shipped app.
func Calculate(profile models.UserProfile) int {
	baseRate := 35.0
	if profile.Gender == models.GenderFemale {
		baseRate = 31.0
	}

	g := profile.Weight * baseRate

	if m, ok := activityMultipliers[profile.ActivityLevel]; ok {
		g *= m
	}

	if profile.UnitSystem == models.UnitImperial {
		g /= MlPerFlOz
	}

	return int(math.Round(g))
}
