// Package hydration implements the hydration log and settings store: CRUD
// over the persisted entry collection, settings/profile management, and the
// daily/weekly aggregates the screens display.
package hydration

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"hydromate/internal/events"
	"hydromate/internal/goal"
	"hydromate/internal/metrics"
	"hydromate/internal/models"
	"hydromate/internal/storage"

	"github.com/rs/zerolog"
)

// Store owns the persisted collections. All mutations replace the full
// record under its key; reads degrade to empty/default results on storage
// faults, writes surface the error to the caller.
type Store struct {
	storage storage.Storage
	bus     *events.Bus
	logger  *zerolog.Logger
}

// NewStore constructs a store over the given medium. bus may be nil.
func NewStore(st storage.Storage, bus *events.Bus, logger *zerolog.Logger) *Store {
	return &Store{storage: st, bus: bus, logger: logger}
}

func (s *Store) publish(eventType string, payload map[string]interface{}) {
	if s.bus != nil {
		s.bus.Publish(eventType, payload)
	}
}

// Entries returns all logged entries with parsed timestamps. A read failure
// or corrupt record degrades to an empty slice.
func (s *Store) Entries(ctx context.Context) []models.HydrationEntry {
	data, err := s.storage.Get(ctx, storage.KeyEntries)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Error().Err(err).Msg("Error loading entries")
			metrics.IncStorageError("get_entries")
		}
		return []models.HydrationEntry{}
	}

	var entries []models.HydrationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Error().Err(err).Msg("Error decoding entries")
		metrics.IncStorageError("decode_entries")
		return []models.HydrationEntry{}
	}
	return entries
}

func (s *Store) saveEntries(ctx context.Context, entries []models.HydrationEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyEntries, data); err != nil {
		metrics.IncStorageError("set_entries")
		return fmt.Errorf("save entries: %w", err)
	}
	return nil
}

// AddEntry assigns a time-based id to the entry, appends it to the log and
// persists the full collection. Millisecond ids collide for same-millisecond
// calls; user-driven logging never gets there in practice. Milliliters is
// stored as submitted, the caller validates it.
func (s *Store) AddEntry(ctx context.Context, entry models.HydrationEntry) (models.HydrationEntry, error) {
	entries := s.Entries(ctx)

	entry.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	entries = append(entries, entry)

	if err := s.saveEntries(ctx, entries); err != nil {
		return models.HydrationEntry{}, err
	}

	metrics.IncEntryAdded(string(s.DrinkTypeByID(entry.DrinkType).Category))
	s.publish(events.TypeEntryAdded, map[string]interface{}{
		"id":          entry.ID,
		"milliliters": entry.Milliliters,
		"drink_type":  entry.DrinkType,
	})
	return entry, nil
}

// DeleteEntry removes the entry with the matching id. Deleting an unknown id
// is a no-op, not an error.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	entries := s.Entries(ctx)

	filtered := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}

	if err := s.saveEntries(ctx, filtered); err != nil {
		return err
	}

	if len(filtered) < len(entries) {
		metrics.IncEntryDeleted()
		s.publish(events.TypeEntryDeleted, map[string]interface{}{"id": id})
	}
	return nil
}

// EntriesForDate returns entries whose timestamp falls on the same local
// calendar day as date.
func (s *Store) EntriesForDate(ctx context.Context, date time.Time) []models.HydrationEntry {
	var out []models.HydrationEntry
	for _, e := range s.Entries(ctx) {
		if SameDay(e.DateTime, date) {
			out = append(out, e)
		}
	}
	return out
}

// TotalForDate sums milliliters over the entries logged on date.
func (s *Store) TotalForDate(ctx context.Context, date time.Time) int {
	total := 0
	for _, e := range s.EntriesForDate(ctx, date) {
		total += e.Milliliters
	}
	return total
}

// TodayEntries returns the entries logged today.
func (s *Store) TodayEntries(ctx context.Context) []models.HydrationEntry {
	return s.EntriesForDate(ctx, time.Now())
}

// TodayTotal returns the total logged today.
func (s *Store) TodayTotal(ctx context.Context) int {
	return s.TotalForDate(ctx, time.Now())
}

// WeeklyData returns the total milliliters for each of the 7 days of the
// week starting at weekStart, keyed by the UTC date (YYYY-MM-DD). A zero
// weekStart means the Monday of the current week at local midnight.
//
// Day totals match on the local calendar day while keys are derived from the
// UTC date, so near a timezone boundary a total can land under the adjacent
// key. The shipped app behaves the same way; keep the two in sync until
// product signs off on changing the keys.
func (s *Store) WeeklyData(ctx context.Context, weekStart time.Time) map[string]int {
	if weekStart.IsZero() {
		weekStart = currentWeekMonday(time.Now())
	}

	weekly := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		weekly[DateKey(day)] = s.TotalForDate(ctx, day)
	}
	return weekly
}

// currentWeekMonday returns local midnight of the Monday of now's week.
// Sunday counts as the 7th day of the preceding week.
func currentWeekMonday(now time.Time) time.Time {
	diff := 1 - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		diff = -6
	}
	monday := now.AddDate(0, 0, diff)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// DateKey formats the UTC calendar date of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// settingsRecord mirrors UserSettings on disk with optional fields so that
// legacy payloads (no embedded profile, no soundEnabled) can be detected and
// backfilled.
type settingsRecord struct {
	DailyGoal            int                 `json:"dailyGoal"`
	NotificationsEnabled bool                `json:"notificationsEnabled"`
	ReminderInterval     int                 `json:"reminderInterval"`
	SoundEnabled         *bool               `json:"soundEnabled"`
	Profile              *models.UserProfile `json:"profile"`
}

// Settings returns the persisted settings, or the documented defaults when
// nothing is stored or the record cannot be read. Legacy records missing the
// embedded profile are backfilled from the standalone profile record.
func (s *Store) Settings(ctx context.Context) models.UserSettings {
	data, err := s.storage.Get(ctx, storage.KeySettings)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Error().Err(err).Msg("Error loading settings")
			metrics.IncStorageError("get_settings")
		}
		return models.DefaultSettings()
	}

	var rec settingsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Error().Err(err).Msg("Error decoding settings")
		metrics.IncStorageError("decode_settings")
		return models.DefaultSettings()
	}

	settings := models.UserSettings{
		DailyGoal:            rec.DailyGoal,
		NotificationsEnabled: rec.NotificationsEnabled,
		ReminderInterval:     rec.ReminderInterval,
		SoundEnabled:         true,
	}
	if rec.SoundEnabled != nil {
		settings.SoundEnabled = *rec.SoundEnabled
	}

	// Migration from the old format that kept the profile only under its
	// own key.
	if rec.Profile != nil {
		settings.Profile = *rec.Profile
	} else if profile := s.UserProfile(ctx); profile != nil {
		settings.Profile = *profile
	} else {
		settings.Profile = models.DefaultProfile()
	}

	return settings
}

// UpdateSettings persists the full settings record, overwriting the prior
// value.
func (s *Store) UpdateSettings(ctx context.Context, settings models.UserSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeySettings, data); err != nil {
		metrics.IncStorageError("set_settings")
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// UserProfile returns the standalone profile record, or nil when none is
// stored or the record cannot be read.
func (s *Store) UserProfile(ctx context.Context) *models.UserProfile {
	data, err := s.storage.Get(ctx, storage.KeyProfile)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.Error().Err(err).Msg("Error loading user profile")
			metrics.IncStorageError("get_profile")
		}
		return nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Error().Err(err).Msg("Error decoding user profile")
		metrics.IncStorageError("decode_profile")
		return nil
	}
	return &profile
}

// UpdateUserProfile merges the patch into the current profile, re-derives
// the daily goal and writes the profile record and the settings-embedded
// copy in one atomic storage write. A missing profile (onboarding never
// completed) makes this a no-op.
func (s *Store) UpdateUserProfile(ctx context.Context, patch models.ProfilePatch) error {
	current := s.UserProfile(ctx)
	if current == nil {
		return nil
	}

	updated := *current
	patch.Apply(&updated)

	settings := s.Settings(ctx)
	settings.DailyGoal = goal.Calculate(updated)
	settings.Profile = updated

	if err := s.writeProfileAndSettings(ctx, updated, settings); err != nil {
		return err
	}

	metrics.IncGoalRecalculated()
	s.publish(events.TypeGoalRecalculated, map[string]interface{}{
		"daily_goal": settings.DailyGoal,
	})
	return nil
}

// CompleteOnboarding builds a fresh profile and settings from the onboarding
// answers and persists both. The daily goal is the one the onboarding flow
// already computed and showed to the user.
func (s *Store) CompleteOnboarding(ctx context.Context, data models.OnboardingData) error {
	profile := models.UserProfile{
		Gender:                 data.Gender,
		Weight:                 data.Weight,
		ActivityLevel:          data.ActivityLevel,
		UnitSystem:             data.UnitSystem,
		WakeUpTime:             data.WakeUpTime,
		BedTime:                data.BedTime,
		HasCompletedOnboarding: true,
	}

	settings := models.UserSettings{
		DailyGoal:            data.CalculatedGoal,
		NotificationsEnabled: true,
		ReminderInterval:     2,
		SoundEnabled:         true,
		Profile:              profile,
	}

	if err := s.writeProfileAndSettings(ctx, profile, settings); err != nil {
		return err
	}

	s.publish(events.TypeOnboardingCompleted, map[string]interface{}{
		"daily_goal": settings.DailyGoal,
	})
	return nil
}

// writeProfileAndSettings keeps the profile record and its embedded copy in
// settings mirror-consistent with a single atomic write.
func (s *Store) writeProfileAndSettings(ctx context.Context, profile models.UserProfile, settings models.UserSettings) error {
	profileData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	settingsData, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	err = s.storage.SetMulti(ctx, map[string][]byte{
		storage.KeyProfile:  profileData,
		storage.KeySettings: settingsData,
	})
	if err != nil {
		metrics.IncStorageError("set_profile_settings")
		return fmt.Errorf("save profile and settings: %w", err)
	}
	return nil
}

// ClearAllData deletes the entry log. Settings and profile are untouched.
func (s *Store) ClearAllData(ctx context.Context) error {
	if err := s.storage.Delete(ctx, storage.KeyEntries); err != nil {
		metrics.IncStorageError("delete_entries")
		return fmt.Errorf("clear entries: %w", err)
	}
	s.publish(events.TypeLogCleared, nil)
	return nil
}

// DrinkTypes returns the full static catalog.
func (s *Store) DrinkTypes() []models.DrinkType {
	return models.DrinkCatalog
}

// DrinkTypeByID resolves a drink-type reference. Dangling ids resolve to the
// Unknown placeholder, never an error.
func (s *Store) DrinkTypeByID(id string) models.DrinkType {
	if d, ok := models.DrinkTypeByID(id); ok {
		return d
	}
	return models.UnknownDrink
}

// DrinkTypesByCategory returns the catalog drinks in the given category.
func (s *Store) DrinkTypesByCategory(category models.DrinkCategory) []models.DrinkType {
	return models.DrinkTypesByCategory(category)
}

// AddSampleData seeds 2-4 water entries per day over the past week. Demo
// builds only.
func (s *Store) AddSampleData(ctx context.Context) error {
	now := time.Now()
	amounts := []int{250, 300, 350, 400, 500}

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		perDay := rand.Intn(3) + 2

		for j := 0; j < perDay; j++ {
			at := time.Date(day.Year(), day.Month(), day.Day(),
				8+j*3+rand.Intn(2), rand.Intn(60), 0, 0, day.Location())

			_, err := s.AddEntry(ctx, models.HydrationEntry{
				DateTime:    at,
				DrinkType:   "1", // Water
				Milliliters: amounts[rand.Intn(len(amounts))],
			})
			if err != nil {
				return err
			}
			// Millisecond ids need a beat between writes.
			time.Sleep(time.Millisecond)
		}
	}
	return nil
}
