// Package focus implements the focus timer and its session accounting.
package focus

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/verte-zerg/acadash/internal/model"
)

// DefaultPresetMinutes is the timer length before any preset is chosen.
const DefaultPresetMinutes = 30

// Presets are the durations offered by the timer, in minutes.
var Presets = []int{15, 25, 30, 45, 60}

// ErrBusy is returned when a preset is chosen while the timer is not Ready.
var ErrBusy = errors.New("focus timer is running; reset it first")

// Status is the timer state.
type Status int

// Timer states. Completion returns the timer to StatusReady.
const (
	StatusReady Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "FOCUSING"
	case StatusPaused:
		return "PAUSED"
	default:
		return "READY"
	}
}

// Saver persists the whole state after a mutation.
type Saver interface {
	Save(ctx context.Context, st *model.AppState) error
}

// Completion describes a recorded session.
type Completion struct {
	Minutes int
	Record  model.SessionRecord
	Streak  int
}

// Display is what the presentation layer shows for the timer.
type Display struct {
	Status    Status
	Duration  int
	Remaining int
	Progress  float64
	Clock     string
}

// Tracker is the focus timer bound to the metrics of a shared AppState.
// Durations are counted in seconds.
type Tracker struct {
	state     *model.AppState
	saver     Saver
	status    Status
	duration  int
	remaining int
}

// NewTracker returns a Ready timer of presetMinutes.
func NewTracker(state *model.AppState, saver Saver, presetMinutes int) *Tracker {
	if presetMinutes <= 0 {
		presetMinutes = DefaultPresetMinutes
	}
	return &Tracker{
		state:     state,
		saver:     saver,
		duration:  presetMinutes * 60,
		remaining: presetMinutes * 60,
	}
}

// Status returns the current timer state.
func (t *Tracker) Status() Status {
	return t.status
}

// SelectPreset sets the duration. Only allowed while Ready.
func (t *Tracker) SelectPreset(minutes int) error {
	if t.status != StatusReady {
		return ErrBusy
	}
	if minutes <= 0 {
		return fmt.Errorf("preset must be positive, got %d", minutes)
	}
	t.duration = minutes * 60
	t.remaining = t.duration
	return nil
}

// Start runs the timer from Ready or Paused.
func (t *Tracker) Start() {
	if t.remaining > 0 {
		t.status = StatusRunning
	}
}

// Pause stops a running timer, keeping the remaining time.
func (t *Tracker) Pause() {
	if t.status == StatusRunning {
		t.status = StatusPaused
	}
}

// Toggle switches between Running and Paused (starting from Ready).
func (t *Tracker) Toggle() {
	if t.status == StatusRunning {
		t.Pause()
		return
	}
	t.Start()
}

// Reset stops the timer and restores the full duration without recording.
func (t *Tracker) Reset() {
	t.status = StatusReady
	t.remaining = t.duration
}

// Tick advances a running timer by one second. When it reaches zero the
// session is recorded and the returned bool is true.
func (t *Tracker) Tick(ctx context.Context, now time.Time) (Completion, bool, error) {
	if t.status != StatusRunning {
		return Completion{}, false, nil
	}
	t.remaining--
	if t.remaining > 0 {
		return Completion{}, false, nil
	}
	c, err := t.complete(ctx, now)
	return c, true, err
}

// Skip ends the session now and records it, whatever the state.
func (t *Tracker) Skip(ctx context.Context, now time.Time) (Completion, error) {
	t.remaining = 0
	return t.complete(ctx, now)
}

// complete records the session and returns to Ready. A failed save keeps the
// session in memory so the next successful save persists it.
func (t *Tracker) complete(ctx context.Context, now time.Time) (Completion, error) {
	minutes := int(math.Round(float64(t.duration) / 60))
	record := RecordSession(&t.state.Metrics, minutes, now)
	t.Reset()
	c := Completion{Minutes: minutes, Record: record, Streak: t.state.Metrics.Streak}
	if err := t.saver.Save(ctx, t.state); err != nil {
		return c, err
	}
	return c, nil
}

// Snapshot returns the timer display.
func (t *Tracker) Snapshot() Display {
	progress := 0.0
	if t.duration > 0 {
		progress = 1 - float64(t.remaining)/float64(t.duration)
	}
	return Display{
		Status:    t.status,
		Duration:  t.duration,
		Remaining: t.remaining,
		Progress:  progress,
		Clock:     fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60),
	}
}

// RecordSession applies one completed session of minutes at now to m:
// counters, bounded newest-first history, and the daily streak.
func RecordSession(m *model.Metrics, minutes int, now time.Time) model.SessionRecord {
	today := model.DateKey(now)
	record := model.SessionRecord{Date: today, DurationMinutes: minutes}

	m.FocusSessions++
	m.TotalFocusMinutes += minutes
	history := make([]model.SessionRecord, 0, len(m.SessionHistory)+1)
	history = append(append(history, record), m.SessionHistory...)
	if len(history) > model.MaxSessionHistory {
		history = history[:model.MaxSessionHistory]
	}
	m.SessionHistory = history

	last := ""
	if m.LastSessionDate != nil {
		last = *m.LastSessionDate
	}
	switch last {
	case model.YesterdayKey(now):
		m.Streak++
	case today:
	default:
		m.Streak = 1
	}
	m.LastSessionDate = &today
	return record
}
