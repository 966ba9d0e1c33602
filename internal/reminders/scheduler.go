// Package reminders schedules drink reminders from the user's waking hours
// and reminder interval. Delivery is behind the Notifier interface; the
// platform shell decides how a reminder surfaces.
package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hydromate/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// SettingsSource provides the settings and progress the scheduler needs.
// Implemented by the hydration store.
type SettingsSource interface {
	Settings(ctx context.Context) models.UserSettings
	TodayTotal(ctx context.Context) int
}

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Config holds configuration for the reminder scheduler.
type Config struct {
	// CheckInterval is how often to check whether a reminder slot is due.
	CheckInterval time.Duration
	// NotifyRate limits reminder deliveries per second.
	NotifyRate float64
	// NotifyBurst is the delivery burst size.
	NotifyBurst int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		CheckInterval: time.Minute,
		NotifyRate:    1,
		NotifyBurst:   1,
	}
}

// Scheduler fires a reminder at each slot between wake-up and bed time,
// spaced by the configured reminder interval, unless notifications are off
// or the daily goal is already met.
type Scheduler struct {
	config   Config
	source   SettingsSource
	notifier Notifier
	limiter  *rate.Limiter
	logger   *zerolog.Logger

	mu       sync.Mutex
	lastSlot string // date+HH:MM of the last slot fired
	running  bool
	stopCh   chan struct{}
}

// NewScheduler creates a new reminder scheduler.
func NewScheduler(config Config, source SettingsSource, notifier Notifier, logger *zerolog.Logger) *Scheduler {
	if config.CheckInterval == 0 {
		config.CheckInterval = time.Minute
	}
	if config.NotifyRate == 0 {
		config.NotifyRate = 1
	}
	if config.NotifyBurst == 0 {
		config.NotifyBurst = 1
	}

	return &Scheduler{
		config:   config,
		source:   source,
		notifier: notifier,
		limiter:  rate.NewLimiter(rate.Limit(config.NotifyRate), config.NotifyBurst),
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the scheduler loop. Blocks until the context is cancelled or
// Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info().Dur("check_interval", s.config.CheckInterval).Msg("Reminder scheduler started")

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Reminder scheduler stopped by context")
			return
		case <-s.stopCh:
			s.logger.Info().Msg("Reminder scheduler stopped")
			return
		case <-ticker.C:
			s.checkAndNotify(ctx, time.Now())
		}
	}
}

// Stop terminates the scheduler loop.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		close(s.stopCh)
		s.running = false
	}
}

func (s *Scheduler) checkAndNotify(ctx context.Context, now time.Time) {
	settings := s.source.Settings(ctx)
	if !settings.NotificationsEnabled {
		return
	}

	slot, ok := dueSlot(settings.Profile, settings.ReminderInterval, now)
	if !ok {
		return
	}

	slotKey := slot.Format("2006-01-02 15:04")
	s.mu.Lock()
	if s.lastSlot == slotKey {
		s.mu.Unlock()
		return
	}
	s.lastSlot = slotKey
	s.mu.Unlock()

	total := s.source.TodayTotal(ctx)
	if total >= settings.DailyGoal {
		s.logger.Debug().Int("total", total).Int("goal", settings.DailyGoal).
			Msg("Daily goal met, skipping reminder")
		return
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return
	}

	message := fmt.Sprintf("Time to drink! %d of %d logged today.", total, settings.DailyGoal)
	if err := s.notifier.Notify(ctx, message); err != nil {
		s.logger.Error().Err(err).Msg("Failed to deliver reminder")
		return
	}
	s.logger.Info().Str("slot", slotKey).Msg("Reminder sent")
}

// Slots returns the reminder times for the given local day: wake-up time,
// then every intervalHours until bed time. A malformed profile or an
// interval of zero yields no slots.
func Slots(profile models.UserProfile, intervalHours int, day time.Time) []time.Time {
	if intervalHours <= 0 {
		return nil
	}

	wake, err := atClock(profile.WakeUpTime, day)
	if err != nil {
		return nil
	}
	bed, err := atClock(profile.BedTime, day)
	if err != nil {
		return nil
	}
	if !bed.After(wake) {
		return nil
	}

	var slots []time.Time
	for t := wake; !t.After(bed); t = t.Add(time.Duration(intervalHours) * time.Hour) {
		slots = append(slots, t)
	}
	return slots
}

// dueSlot returns the most recent slot at or before now, if any.
func dueSlot(profile models.UserProfile, intervalHours int, now time.Time) (time.Time, bool) {
	var due time.Time
	found := false
	for _, slot := range Slots(profile, intervalHours, now) {
		if slot.After(now) {
			break
		}
		due = slot
		found = true
	}
	return due, found
}

func atClock(clock string, day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
