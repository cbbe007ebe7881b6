package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/acadash/internal/engine"
	"github.com/verte-zerg/acadash/internal/focus"
	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/schedule"
	"github.com/verte-zerg/acadash/internal/tips"
)

type nopSaver struct{}

func (nopSaver) Save(context.Context, *model.AppState) error { return nil }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	st := model.DefaultState()
	st.User = "Rina"
	eng := engine.New(&st, nopSaver{}, engine.Options{FocusPresetMinutes: 25, Theme: model.ThemeDark})
	return NewModel(eng, Options{Tips: []tips.Tip{{Title: "ONE", Desc: "first"}, {Title: "TWO", Desc: "second"}}})
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewShowsDashboardSections(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()
	now := time.Now()
	if _, err := m.engine.AddClass(ctx, schedule.ClassInput{
		Name: "Discrete Math", Day: int(now.Weekday()), Start: "23:00", End: "23:59",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}
	out := m.View()
	for _, want := range []string{"Hi, Rina", "Discrete Math", "Focus READY", "25:00", "Sessions 0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestPresetKeysRespectTimerState(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("1"))
	if got := m.engine.Focus().Snapshot().Duration; got != focus.Presets[0]*60 {
		t.Fatalf("expected %d second preset, got %d", focus.Presets[0]*60, got)
	}
	m.Update(key(" "))
	if m.engine.Focus().Status() != focus.StatusRunning {
		t.Fatalf("space should start the timer")
	}
	m.Update(key("5"))
	if got := m.engine.Focus().Snapshot().Duration; got != focus.Presets[0]*60 {
		t.Fatalf("preset must not change while running")
	}
	if len(m.toasts) != 1 || m.toasts[0].title != "Timer busy" {
		t.Fatalf("expected busy toast, got %+v", m.toasts)
	}
}

func TestTickAdvancesTimerAndExpiresToasts(t *testing.T) {
	m := newTestModel(t)
	m.Update(key(" "))
	start := m.now
	m.pushToast("hello", "world", false)
	for i := 1; i <= 5; i++ {
		m.Update(tickMsg(start.Add(time.Duration(i) * time.Second)))
	}
	if got := m.engine.Focus().Snapshot().Remaining; got != 25*60-5 {
		t.Fatalf("expected 5 seconds elapsed, got remaining %d", got)
	}
	if len(m.toasts) != 0 {
		t.Fatalf("toast should expire after %s", toastDuration)
	}
}

func TestSkipRecordsSession(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("s"))
	if m.engine.State().Metrics.FocusSessions != 1 {
		t.Fatalf("skip should record a session")
	}
	if len(m.toasts) == 0 || m.toasts[0].title != "Session complete" {
		t.Fatalf("expected completion toast, got %+v", m.toasts)
	}
}

func TestModeAndThemeKeys(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("w"))
	if m.engine.State().Mode != model.ModeWeekend {
		t.Fatalf("w should switch to weekend mode")
	}
	m.Update(key("t"))
	if m.engine.Scheduler().Theme() != model.ThemeLight {
		t.Fatalf("t should switch to light theme")
	}
}
