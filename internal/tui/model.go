// Package tui provides the Bubble Tea dashboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/acadash/internal/engine"
	"github.com/verte-zerg/acadash/internal/focus"
	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/scheduler"
	"github.com/verte-zerg/acadash/internal/tips"
)

const (
	toastDuration      = 4 * time.Second
	maxToasts          = 3
	defaultTipInterval = 30 * time.Second
)

type tickMsg time.Time

type toast struct {
	title   string
	message string
	isError bool
	until   time.Time
}

// Options configures the dashboard.
type Options struct {
	Tips        []tips.Tip
	TipInterval time.Duration
}

// Model implements the Bubble Tea dashboard.
type Model struct {
	engine *engine.Engine

	tips        *tips.Rotator
	quotes      *tips.Rotator
	tipInterval time.Duration
	tip         tips.Tip
	quote       tips.Tip
	lastTipAt   time.Time

	now       time.Time
	countdown scheduler.Countdown
	toasts    []toast
	palette   palette

	width  int
	height int
}

// NewModel constructs a dashboard bound to eng.
func NewModel(eng *engine.Engine, opts Options) *Model {
	if len(opts.Tips) == 0 {
		opts.Tips = tips.Builtin()
	}
	if opts.TipInterval <= 0 {
		opts.TipInterval = defaultTipInterval
	}
	now := time.Now()
	m := &Model{
		engine:      eng,
		tips:        tips.NewRotator(opts.Tips),
		quotes:      tips.NewRotator(tips.Quotes()),
		tipInterval: opts.TipInterval,
		now:         now,
		palette:     paletteFor(eng.Scheduler().Theme()),
	}
	m.rotateTips(now)
	m.countdown = eng.Countdown(now)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case " ":
		m.engine.Focus().Toggle()
	case "r":
		m.engine.Focus().Reset()
	case "s":
		c, err := m.engine.SkipFocus(ctx, m.now)
		m.completed(c)
		m.reportErr(err)
	case "1", "2", "3", "4", "5":
		minutes := focus.Presets[int(key[0]-'1')]
		if err := m.engine.Focus().SelectPreset(minutes); err != nil {
			if errors.Is(err, focus.ErrBusy) {
				m.pushToast("Timer busy", "Reset the timer before changing the preset.", false)
			} else {
				m.reportErr(err)
			}
		}
	case "t":
		next := model.ThemeLight
		if m.engine.Scheduler().Theme() == model.ThemeLight {
			next = model.ThemeDark
		}
		m.engine.Scheduler().SetTheme(next)
		m.palette = paletteFor(next)
	case "w":
		next := model.ModeWeekend
		if m.engine.State().Mode == model.ModeWeekend {
			next = model.ModeWeekday
		}
		m.reportErr(m.engine.SetMode(ctx, next))
	case "n":
		m.rotateTips(m.now)
	}
	return m, nil
}

func (m *Model) handleTick(now time.Time) {
	m.now = now
	res, err := m.engine.Tick(context.Background(), now)
	m.countdown = res.Countdown
	for _, ev := range res.Events {
		if ev.Kind == scheduler.EventThemeChange {
			m.palette = paletteFor(ev.Theme)
			continue
		}
		m.pushToast(ev.Title, ev.Message, false)
	}
	if res.Completion != nil {
		m.completed(*res.Completion)
	}
	m.reportErr(err)
	if now.Sub(m.lastTipAt) >= m.tipInterval {
		m.rotateTips(now)
	}
	m.expireToasts(now)
}

func (m *Model) completed(c focus.Completion) {
	if c.Minutes == 0 {
		return
	}
	m.pushToast("Session complete", fmt.Sprintf("%d min of focus recorded. Streak: %d day(s).", c.Minutes, c.Streak), false)
}

func (m *Model) rotateTips(now time.Time) {
	if tip, ok := m.tips.Next(); ok {
		m.tip = tip
	}
	if quote, ok := m.quotes.Cycle(); ok {
		m.quote = quote
	}
	m.lastTipAt = now
}

func (m *Model) reportErr(err error) {
	if err == nil {
		return
	}
	m.pushToast("Error", err.Error(), true)
}

func (m *Model) pushToast(title, message string, isError bool) {
	m.toasts = append(m.toasts, toast{
		title:   title,
		message: message,
		isError: isError,
		until:   m.now.Add(toastDuration),
	})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
}

func (m *Model) expireToasts(now time.Time) {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if now.Before(t.until) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// Run starts the dashboard program in the alternate screen.
func Run(eng *engine.Engine, opts Options) error {
	program := tea.NewProgram(NewModel(eng, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logErrf("dashboard exited: %v\n", err)
		return err
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
