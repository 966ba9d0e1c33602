package models

import "time"

// UnitSystem selects how weight and fluid amounts are expressed.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

func (u UnitSystem) Valid() bool {
	return u == UnitMetric || u == UnitImperial
}

// Gender drives the per-weight base rate of the daily goal.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevel is one of four tiers scaling the daily goal.
type ActivityLevel string

const (
	ActivityNotVery ActivityLevel = "not-very-active"
	ActivityLight   ActivityLevel = "lightly-active"
	ActivityActive  ActivityLevel = "active"
	ActivityHigh    ActivityLevel = "highly-active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivityNotVery, ActivityLight, ActivityActive, ActivityHigh:
		return true
	}
	return false
}

// DrinkCategory groups catalog drinks for the picker UI.
type DrinkCategory string

const (
	CategoryWater     DrinkCategory = "water"
	CategoryCoffee    DrinkCategory = "coffee"
	CategoryTea       DrinkCategory = "tea"
	CategoryJuice     DrinkCategory = "juice"
	CategorySoftDrink DrinkCategory = "soft-drink"
	CategorySports    DrinkCategory = "sports"
	CategoryMilk      DrinkCategory = "milk"
	CategoryOther     DrinkCategory = "other"
)

// DrinkType describes one beverage in the static catalog: its nominal
// serving size and how the UI renders it. Immutable reference data.
type DrinkType struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Milliliters int           `json:"milliliters"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Category    DrinkCategory `json:"category"`
}

// HydrationEntry is one logged beverage-consumption event. Milliliters is
// the amount actually logged, independent of the drink's nominal serving.
// Immutable after creation except for deletion.
type HydrationEntry struct {
	ID          string    `json:"id"`
	DateTime    time.Time `json:"dateTime"`
	DrinkType   string    `json:"drinkType"` // DrinkType.ID; may be dangling, resolved to Unknown at read time
	Milliliters int       `json:"milliliters"`
}

// UserProfile holds the physical and lifestyle attributes that drive the
// goal computation. Weight is kilograms for metric profiles and pounds for
// imperial ones.
type UserProfile struct {
	Gender                 Gender        `json:"gender"`
	Weight                 float64       `json:"weight"`
	ActivityLevel          ActivityLevel `json:"activityLevel"`
	UnitSystem             UnitSystem    `json:"unitSystem"`
	WakeUpTime             string        `json:"wakeUpTime"` // HH:MM
	BedTime                string        `json:"bedTime"`    // HH:MM
	HasCompletedOnboarding bool          `json:"hasCompletedOnboarding"`
}

// UserSettings carries the user preferences plus the derived daily goal and
// an embedded copy of the profile. DailyGoal must always match the goal
// computed from Profile; the store re-derives it on every profile mutation.
type UserSettings struct {
	DailyGoal            int         `json:"dailyGoal"`
	NotificationsEnabled bool        `json:"notificationsEnabled"`
	ReminderInterval     int         `json:"reminderInterval"` // hours
	SoundEnabled         bool        `json:"soundEnabled"`
	Profile              UserProfile `json:"profile"`
}

// OnboardingData collects the onboarding answers plus the goal the
// onboarding flow already computed for display.
type OnboardingData struct {
	WakeUpTime     string
	BedTime        string
	UnitSystem     UnitSystem
	Gender         Gender
	Weight         float64
	ActivityLevel  ActivityLevel
	CalculatedGoal int
}

// ProfilePatch is a partial profile update; nil fields keep the current
// value.
type ProfilePatch struct {
	Gender                 *Gender
	Weight                 *float64
	ActivityLevel          *ActivityLevel
	UnitSystem             *UnitSystem
	WakeUpTime             *string
	BedTime                *string
	HasCompletedOnboarding *bool
}

// Apply merges the patch into p.
func (patch ProfilePatch) Apply(p *UserProfile) {
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.ActivityLevel != nil {
		p.ActivityLevel = *patch.ActivityLevel
	}
	if patch.UnitSystem != nil {
		p.UnitSystem = *patch.UnitSystem
	}
	if patch.WakeUpTime != nil {
		p.WakeUpTime = *patch.WakeUpTime
	}
	if patch.BedTime != nil {
		p.BedTime = *patch.BedTime
	}
	if patch.HasCompletedOnboarding != nil {
		p.HasCompletedOnboarding = *patch.HasCompletedOnboarding
	}
}

// DefaultProfile returns the profile used before onboarding completes.
func DefaultProfile() UserProfile {
	return UserProfile{
		Gender:                 GenderMale,
		Weight:                 70,
		ActivityLevel:          ActivityActive,
		UnitSystem:             UnitMetric,
		WakeUpTime:             "08:00",
		BedTime:                "22:00",
		HasCompletedOnboarding: false,
	}
}

// DefaultSettings returns the settings used when nothing is stored yet.
func DefaultSettings() UserSettings {
	return UserSettings{
		DailyGoal:            2500,
		NotificationsEnabled: true,
		ReminderInterval:     2,
		SoundEnabled:         true,
		Profile:              DefaultProfile(),
	}
}
