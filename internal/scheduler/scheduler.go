// Package scheduler evaluates time-driven triggers on each clock tick.
package scheduler

import (
	"fmt"
	"time"

	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/schedule"
)

// FiredRetention bounds how long fired triggers are remembered.
const FiredRetention = 24 * time.Hour

// reminderLeadMinutes is how far ahead of a class the reminder fires.
const reminderLeadMinutes = 60

// EventKind tags a scheduler event.
type EventKind int

// Event kinds.
const (
	EventMorning EventKind = iota
	EventNight
	EventClassReminder
	EventThemeChange
)

// Event is emitted by Tick for the presentation layer.
type Event struct {
	Kind    EventKind
	At      time.Time
	Class   model.ClassEntry
	Theme   model.Theme
	Title   string
	Message string
}

// Result is the outcome of one tick.
type Result struct {
	Events    []Event
	Countdown Countdown
}

// Scheduler holds the fired-trigger memory and the displayed theme.
type Scheduler struct {
	fired      *firedSet
	theme      model.Theme
	lastMinute time.Time
}

// New returns a scheduler whose displayed theme is theme.
func New(theme model.Theme) *Scheduler {
	if theme == "" {
		theme = model.ThemeDark
	}
	return &Scheduler{
		fired: newFiredSet(FiredRetention),
		theme: theme,
	}
}

// Theme returns the theme currently displayed.
func (s *Scheduler) Theme() model.Theme {
	return s.theme
}

// SetTheme records a theme chosen outside auto-theme, e.g. a manual toggle.
func (s *Scheduler) SetTheme(theme model.Theme) {
	s.theme = theme
}

// Tick evaluates all triggers at now. Ticks may arrive irregularly: each
// trigger fires at most once per calendar minute, and a minute skipped
// entirely by the ticks is not replayed.
func (s *Scheduler) Tick(st *model.AppState, now time.Time) Result {
	minute := now.Truncate(time.Minute)
	if !minute.Equal(s.lastMinute) {
		s.fired.prune(now)
		s.lastMinute = minute
	}

	var events []Event
	date := model.DateKey(now)
	clock := model.ClockOf(now)
	settings := st.Settings

	if settings.NotifMorning && clock == settings.MorningTime &&
		s.fired.markOnce(triggerKey{kind: TriggerMorning, date: date, clock: clock}, now) {
		events = append(events, Event{
			Kind:    EventMorning,
			At:      now,
			Title:   "Good Morning!",
			Message: fmt.Sprintf("Rise and shine, %s! Have a great day.", st.User),
		})
	}

	if settings.NotifNight && clock == settings.NightTime &&
		s.fired.markOnce(triggerKey{kind: TriggerNight, date: date, clock: clock}, now) {
		events = append(events, Event{
			Kind:    EventNight,
			At:      now,
			Title:   "Time to Rest",
			Message: "Great work today! Get some quality sleep.",
		})
	}

	if settings.NotifClass {
		nowMin := model.MinutesOf(now)
		for _, c := range schedule.ByDay(st.Schedules, int(now.Weekday())) {
			// Exact match only: a tick gap spanning this minute misses the reminder.
			if c.StartMinutes()-nowMin != reminderLeadMinutes {
				continue
			}
			key := triggerKey{kind: TriggerClassReminder, classID: c.ID, date: date, clock: clock}
			if !s.fired.markOnce(key, now) {
				continue
			}
			events = append(events, Event{
				Kind:    EventClassReminder,
				At:      now,
				Class:   c,
				Title:   "Class Reminder",
				Message: fmt.Sprintf("%s starts in 1 hour!", c.Name),
			})
		}
	}

	if settings.AutoTheme {
		if target := ThemeFor(now); target != s.theme {
			s.theme = target
			events = append(events, Event{Kind: EventThemeChange, At: now, Theme: target})
		}
	}

	return Result{
		Events:    events,
		Countdown: NextClass(st.Schedules, now),
	}
}
