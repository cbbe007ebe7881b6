package scheduler

import (
	"testing"
	"time"

	"github.com/verte-zerg/acadash/internal/model"
)

// 2026-10-19 is a Monday.
func monday(h, m, s int) time.Time {
	return time.Date(2026, time.October, 19, h, m, s, 0, time.Local)
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestMorningFiresOncePerDate(t *testing.T) {
	st := model.DefaultState()
	st.User = "Alex"
	st.Settings.NotifMorning = true
	st.Settings.MorningTime = "07:00"
	sch := New(model.ThemeDark)

	fired := 0
	start := monday(6, 59, 0)
	for i := 0; i < 180; i++ {
		res := sch.Tick(&st, start.Add(time.Duration(i)*time.Second))
		for _, e := range res.Events {
			if e.Kind == EventMorning {
				fired++
				if e.Message != "Rise and shine, Alex! Have a great day." {
					t.Fatalf("unexpected message %q", e.Message)
				}
			}
		}
	}
	if fired != 1 {
		t.Fatalf("expected morning to fire once, fired %d", fired)
	}

	next := sch.Tick(&st, monday(7, 0, 0).AddDate(0, 0, 1))
	if countKind(next.Events, EventMorning) != 1 {
		t.Fatalf("expected morning to fire again the next date")
	}
}

func TestMorningDisabledDoesNotFire(t *testing.T) {
	st := model.DefaultState()
	st.Settings.MorningTime = "07:00"
	sch := New(model.ThemeDark)
	if res := sch.Tick(&st, monday(7, 0, 0)); countKind(res.Events, EventMorning) != 0 {
		t.Fatalf("disabled morning trigger fired")
	}
}

func TestNightFiresOnce(t *testing.T) {
	st := model.DefaultState()
	st.Settings.NotifNight = true
	sch := New(model.ThemeDark)
	total := 0
	for s := 0; s < 60; s += 7 {
		total += countKind(sch.Tick(&st, monday(22, 0, s)).Events, EventNight)
	}
	if total != 1 {
		t.Fatalf("expected night to fire once, fired %d", total)
	}
}

func TestClassReminderExactlySixtyMinutes(t *testing.T) {
	st := model.DefaultState()
	st.Settings.NotifClass = true
	st.Schedules = []model.ClassEntry{
		{ID: "calc", Name: "Calculus", Day: int(time.Monday), Start: "10:00", End: "11:00"},
		{ID: "tue", Name: "Tuesday class", Day: int(time.Tuesday), Start: "10:00", End: "11:00"},
	}

	cases := []struct {
		at   time.Time
		want int
	}{
		{at: monday(8, 59, 30), want: 0},
		{at: monday(9, 1, 0), want: 0},
	}
	for _, tc := range cases {
		sch := New(model.ThemeDark)
		if got := countKind(sch.Tick(&st, tc.at).Events, EventClassReminder); got != tc.want {
			t.Fatalf("at %s expected %d reminders, got %d", tc.at.Format("15:04"), tc.want, got)
		}
	}

	sch := New(model.ThemeDark)
	total := 0
	for s := 0; s < 60; s++ {
		res := sch.Tick(&st, monday(9, 0, s))
		for _, e := range res.Events {
			if e.Kind == EventClassReminder {
				total++
				if e.Class.ID != "calc" || e.Message != "Calculus starts in 1 hour!" {
					t.Fatalf("unexpected reminder %+v", e)
				}
			}
		}
	}
	if total != 1 {
		t.Fatalf("expected one reminder, got %d", total)
	}
}

func TestClassReminderSkippedMinuteIsMissed(t *testing.T) {
	st := model.DefaultState()
	st.Settings.NotifClass = true
	st.Schedules = []model.ClassEntry{{ID: "c", Name: "C", Day: int(time.Monday), Start: "10:00", End: "11:00"}}
	sch := New(model.ThemeDark)
	total := countKind(sch.Tick(&st, monday(8, 59, 58)).Events, EventClassReminder)
	total += countKind(sch.Tick(&st, monday(9, 1, 2)).Events, EventClassReminder)
	if total != 0 {
		t.Fatalf("expected the skipped minute to be missed, got %d reminders", total)
	}
}

func TestFiredSetPrunes(t *testing.T) {
	st := model.DefaultState()
	st.Settings.NotifMorning = true
	sch := New(model.ThemeDark)
	sch.Tick(&st, monday(7, 0, 0))
	if sch.fired.len() != 1 {
		t.Fatalf("expected one fired record, got %d", sch.fired.len())
	}
	sch.Tick(&st, monday(7, 1, 0).Add(FiredRetention))
	if sch.fired.len() != 0 {
		t.Fatalf("expected fired records pruned, got %d", sch.fired.len())
	}
}

func TestAutoThemeIdempotent(t *testing.T) {
	st := model.DefaultState()
	st.Settings.AutoTheme = true
	sch := New(model.ThemeDark)

	res := sch.Tick(&st, monday(9, 0, 0))
	if countKind(res.Events, EventThemeChange) != 1 || sch.Theme() != model.ThemeLight {
		t.Fatalf("expected switch to light, got %+v", res.Events)
	}
	if countKind(sch.Tick(&st, monday(9, 0, 1)).Events, EventThemeChange) != 0 {
		t.Fatalf("theme change must not repeat")
	}
	res = sch.Tick(&st, monday(17, 0, 0))
	if countKind(res.Events, EventThemeChange) != 1 || res.Events[0].Theme != model.ThemeDark {
		t.Fatalf("expected switch to dark at 17:00, got %+v", res.Events)
	}

	st.Settings.AutoTheme = false
	if countKind(sch.Tick(&st, monday(10, 0, 0)).Events, EventThemeChange) != 0 {
		t.Fatalf("disabled auto-theme emitted an event")
	}
}

func TestThemeFor(t *testing.T) {
	cases := map[int]model.Theme{0: model.ThemeDark, 5: model.ThemeDark, 6: model.ThemeLight, 16: model.ThemeLight, 17: model.ThemeDark, 23: model.ThemeDark}
	for hour, want := range cases {
		if got := ThemeFor(monday(hour, 30, 0)); got != want {
			t.Fatalf("hour %d: expected %s, got %s", hour, want, got)
		}
	}
}
