package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/acadash/internal/model"
)

func fixtureClasses() []model.ClassEntry {
	return []model.ClassEntry{
		{ID: "a", Name: "Calculus", Day: 1, Start: "08:00", End: "09:40", CreditUnits: 3},
		{ID: "b", Name: "Physics", Day: 1, Start: "10:00", End: "12:30", CreditUnits: 4},
		{ID: "c", Name: "Seminar", Day: 3, Start: "13:15", End: "14:00", CreditUnits: 0},
		{ID: "d", Name: "Lab", Day: 5, Start: "07:30", End: "10:30", CreditUnits: 2},
	}
}

func TestDailyLoadSumsToWeeklyMinutes(t *testing.T) {
	sets := [][]model.ClassEntry{nil, fixtureClasses(), fixtureClasses()[:1]}
	for i, classes := range sets {
		sum := 0
		for _, minutes := range DailyLoad(classes) {
			sum += minutes
		}
		if sum != WeeklyMinutes(classes) {
			t.Fatalf("set %d: daily load sum %d != weekly minutes %d", i, sum, WeeklyMinutes(classes))
		}
	}
}

func TestTotalsAndAverages(t *testing.T) {
	classes := fixtureClasses()
	if got := TotalCreditUnits(classes); got != 9 {
		t.Fatalf("expected 9 credit units, got %d", got)
	}
	if got := WeeklyMinutes(classes); got != 100+150+45+180 {
		t.Fatalf("unexpected weekly minutes %d", got)
	}
	if got := ActiveDayCount(classes); got != 3 {
		t.Fatalf("expected 3 active days, got %d", got)
	}
	want := float64(475) / 60 / 3
	if got := AverageDailyHours(classes); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.4f, got %.4f", want, got)
	}
}

func TestActiveDayCountMinimumOne(t *testing.T) {
	if got := ActiveDayCount(nil); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := AverageDailyHours(nil); got != 0 {
		t.Fatalf("expected 0 hours, got %f", got)
	}
}

func TestWeeklyGridPlacesAtStartHour(t *testing.T) {
	grid := WeeklyGrid(fixtureClasses(), DefaultGridStartHour, DefaultGridEndHour, 1)
	if len(grid.Hours) != 14 || grid.Hours[0] != 7 || grid.Hours[13] != 20 {
		t.Fatalf("unexpected hours: %v", grid.Hours)
	}
	if grid.Days[0] != 1 || grid.Days[6] != 0 {
		t.Fatalf("expected Monday-first ordering, got %v", grid.Days)
	}
	lab := grid.At(5, 7)
	if len(lab) != 1 || lab[0].Class.ID != "d" || lab[0].Rows != 3 {
		t.Fatalf("unexpected lab placement: %+v", lab)
	}
	if len(grid.At(5, 8)) != 0 {
		t.Fatalf("multi-hour class must be placed once")
	}
	calc := grid.At(1, 8)
	if len(calc) != 1 || calc[0].Rows != 2 {
		t.Fatalf("unexpected calculus placement: %+v", calc)
	}
	if seminar := grid.At(3, 13); len(seminar) != 1 || seminar[0].Rows != 1 {
		t.Fatalf("unexpected seminar placement: %+v", seminar)
	}
}

func TestWeeklyGridSkipsOutOfRange(t *testing.T) {
	classes := []model.ClassEntry{{ID: "late", Name: "Late", Day: 2, Start: "22:00", End: "23:00"}}
	grid := WeeklyGrid(classes, DefaultGridStartHour, DefaultGridEndHour, 0)
	if len(grid.Slots) != 0 {
		t.Fatalf("expected no slots, got %+v", grid.Slots)
	}
}

func TestSubjectBreakdownRelativeToMax(t *testing.T) {
	shares := SubjectBreakdown(fixtureClasses())
	if len(shares) != 4 {
		t.Fatalf("expected 4 shares, got %d", len(shares))
	}
	if shares[1].Share != 1 || shares[0].Share != 0.75 || shares[2].Share != 0 {
		t.Fatalf("unexpected shares: %+v", shares)
	}
	zero := SubjectBreakdown([]model.ClassEntry{{Name: "Free", CreditUnits: 0}})
	if zero[0].Share != 0 {
		t.Fatalf("expected zero share without division by zero")
	}
}

func TestWeeklyBarsOrderAndShare(t *testing.T) {
	bars := WeeklyBars(fixtureClasses(), 1)
	if len(bars) != 7 || bars[0].Day != 1 || bars[6].Day != 0 {
		t.Fatalf("unexpected order: %+v", bars)
	}
	if bars[0].Minutes != 250 || bars[0].Share != 1 {
		t.Fatalf("expected Monday busiest, got %+v", bars[0])
	}
	if bars[1].Minutes != 0 || bars[1].Share != 0 {
		t.Fatalf("expected empty Tuesday, got %+v", bars[1])
	}
}

func TestSummarize(t *testing.T) {
	st := model.DefaultState()
	st.Schedules = fixtureClasses()
	st.Metrics.FocusSessions = 4
	st.Metrics.TotalFocusMinutes = 135
	st.Metrics.Streak = 2
	snap := Summarize(&st)
	if snap.ClassCount != 4 || snap.TotalCreditUnits != 9 || snap.FocusHours != 2 || snap.Streak != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if FocusTotalText(135) != "2h 15m" {
		t.Fatalf("unexpected focus text %q", FocusTotalText(135))
	}
}

func TestRenderers(t *testing.T) {
	st := model.DefaultState()
	st.Schedules = fixtureClasses()
	st.Metrics.SessionHistory = []model.SessionRecord{{Date: "2026-10-18", DurationMinutes: 25}}

	var buf bytes.Buffer
	if err := RenderSummary(&buf, Summarize(&st)); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if err := RenderWeeklyBars(&buf, WeeklyBars(st.Schedules, 1), 20); err != nil {
		t.Fatalf("bars: %v", err)
	}
	if err := RenderSubjects(&buf, SubjectBreakdown(st.Schedules), 20); err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if err := RenderGrid(&buf, WeeklyGrid(st.Schedules, 7, 20, 1), 10); err != nil {
		t.Fatalf("grid: %v", err)
	}
	if err := RenderHistory(&buf, st.Metrics); err != nil {
		t.Fatalf("history: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Overview", "Total SKS", "Weekly Hours", "Mon", "Subject Breakdown", "Physics", "Weekly Grid", "07:00", "┆", "Session History", "25 min"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDrawBar(t *testing.T) {
	if got := drawBar(0.5, 10); got != strings.Repeat(barFull, 5)+strings.Repeat(barEmpty, 5) {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := drawBar(2, 4); got != strings.Repeat(barFull, 4) {
		t.Fatalf("expected clamped bar, got %q", got)
	}
}

func TestDayNameOutOfRange(t *testing.T) {
	if got := DayName(0); got != "Sun" {
		t.Fatalf("expected Sun, got %q", got)
	}
	for _, day := range []int{-1, 7, 9} {
		if got := DayName(day); got != "?" {
			t.Fatalf("day %d: expected placeholder, got %q", day, got)
		}
	}
}
