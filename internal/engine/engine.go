// Package engine owns the application state and composes the schedule,
// statistics, scheduler and focus components around it.
package engine

import (
	"context"
	"time"

	"github.com/verte-zerg/acadash/internal/focus"
	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/schedule"
	"github.com/verte-zerg/acadash/internal/scheduler"
	"github.com/verte-zerg/acadash/internal/stats"
	"github.com/verte-zerg/acadash/internal/store"
)

// Saver persists the whole state after a mutation.
type Saver interface {
	Save(ctx context.Context, st *model.AppState) error
}

// Change names the part of the state a mutation touched.
type Change int

// Change kinds delivered to observers.
const (
	ChangeSchedule Change = iota
	ChangeNotes
	ChangeMetrics
	ChangeSettings
	ChangeProfile
	ChangeMode
	ChangeAll
)

// Options configures a new Engine.
type Options struct {
	FocusPresetMinutes int
	Theme              model.Theme
}

// Engine is the single owner of the AppState. All mutations go through it and
// are saved before returning.
type Engine struct {
	state     *model.AppState
	saver     Saver
	schedule  *schedule.Repository
	focus     *focus.Tracker
	scheduler *scheduler.Scheduler
	observers []func(Change)
}

// TickResult is the outcome of one clock tick.
type TickResult struct {
	Events     []scheduler.Event
	Countdown  scheduler.Countdown
	Completion *focus.Completion
}

// New builds an engine around state.
func New(state *model.AppState, saver Saver, opts Options) *Engine {
	state.Normalize()
	return &Engine{
		state:     state,
		saver:     saver,
		schedule:  schedule.NewRepository(state, saver),
		focus:     focus.NewTracker(state, saver, opts.FocusPresetMinutes),
		scheduler: scheduler.New(opts.Theme),
	}
}

// State exposes the state for read-only queries.
func (e *Engine) State() *model.AppState {
	return e.state
}

// Schedule returns the schedule repository for queries.
func (e *Engine) Schedule() *schedule.Repository {
	return e.schedule
}

// Focus returns the focus tracker.
func (e *Engine) Focus() *focus.Tracker {
	return e.focus
}

// Scheduler returns the temporal scheduler.
func (e *Engine) Scheduler() *scheduler.Scheduler {
	return e.scheduler
}

// Subscribe registers fn to be called after every successful mutation.
func (e *Engine) Subscribe(fn func(Change)) {
	e.observers = append(e.observers, fn)
}

func (e *Engine) notify(c Change) {
	for _, fn := range e.observers {
		fn(c)
	}
}

// Tick advances the scheduler and the focus timer to now.
func (e *Engine) Tick(ctx context.Context, now time.Time) (TickResult, error) {
	res := e.scheduler.Tick(e.state, now)
	out := TickResult{Events: res.Events, Countdown: res.Countdown}
	c, done, err := e.focus.Tick(ctx, now)
	if done {
		out.Completion = &c
		e.notify(ChangeMetrics)
	}
	return out, err
}

// AddClass validates and stores a new class.
func (e *Engine) AddClass(ctx context.Context, in schedule.ClassInput) (model.ClassEntry, error) {
	entry, err := e.schedule.Add(ctx, in)
	if err != nil {
		return model.ClassEntry{}, err
	}
	e.notify(ChangeSchedule)
	return entry, nil
}

// RemoveClass deletes a class. Its notes and photos are kept.
func (e *Engine) RemoveClass(ctx context.Context, id string) error {
	if err := e.schedule.Remove(ctx, id); err != nil {
		return err
	}
	e.notify(ChangeSchedule)
	return nil
}

// SetNote stores the note of a class.
func (e *Engine) SetNote(ctx context.Context, id, text string) error {
	if err := e.schedule.SetNote(ctx, id, text); err != nil {
		return err
	}
	e.notify(ChangeNotes)
	return nil
}

// AddPhotos appends photos to a class.
func (e *Engine) AddPhotos(ctx context.Context, id string, blobs []string) error {
	if err := e.schedule.AddPhotos(ctx, id, blobs); err != nil {
		return err
	}
	e.notify(ChangeNotes)
	return nil
}

// SkipFocus completes the running focus session immediately.
func (e *Engine) SkipFocus(ctx context.Context, now time.Time) (focus.Completion, error) {
	c, err := e.focus.Skip(ctx, now)
	e.notify(ChangeMetrics)
	return c, err
}

// TodayClasses lists the classes on now's weekday ordered by start.
func (e *Engine) TodayClasses(now time.Time) []model.ClassEntry {
	return e.schedule.ListByDay(int(now.Weekday()))
}

// Countdown returns the next-class countdown at now.
func (e *Engine) Countdown(now time.Time) scheduler.Countdown {
	return scheduler.NextClass(e.state.Schedules, now)
}

// Stats returns the overview snapshot.
func (e *Engine) Stats() stats.Snapshot {
	return stats.Summarize(e.state)
}

// Grid returns the weekly grid for the hour range, ordered from the first-day setting.
func (e *Engine) Grid(startHour, endHour int) stats.Grid {
	return stats.WeeklyGrid(e.state.Schedules, startHour, endHour, e.state.Settings.FirstDay)
}

// save persists the state; on failure restore is called to undo the in-memory change.
func (e *Engine) save(ctx context.Context, change Change, restore func()) error {
	if err := e.saver.Save(ctx, e.state); err != nil {
		restore()
		return err
	}
	e.notify(change)
	return nil
}

// Import merges a backup payload over the current state and persists it. On
// any error the current state is left untouched.
func (e *Engine) Import(ctx context.Context, payload []byte) error {
	next, err := store.Import(*e.state, payload)
	if err != nil {
		return err
	}
	return e.replace(ctx, next)
}

// Resetter is implemented by savers that can drop the stored record.
type Resetter interface {
	Reset(ctx context.Context) (model.AppState, error)
}

// Reset discards all data. A Resetter saver deletes the stored record;
// otherwise the default state is saved over it.
func (e *Engine) Reset(ctx context.Context) error {
	r, ok := e.saver.(Resetter)
	if !ok {
		e.focus.Reset()
		return e.replace(ctx, model.DefaultState())
	}
	fresh, err := r.Reset(ctx)
	if err != nil {
		return err
	}
	e.focus.Reset()
	fresh.Normalize()
	*e.state = fresh
	e.notify(ChangeAll)
	return nil
}

// replace swaps the state in place so the components keep sharing it.
func (e *Engine) replace(ctx context.Context, next model.AppState) error {
	next.Normalize()
	prev := e.state.Clone()
	*e.state = next
	return e.save(ctx, ChangeAll, func() { *e.state = prev })
}
