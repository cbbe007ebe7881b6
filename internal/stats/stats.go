// Package stats derives load statistics from the class collection and renders them as text.
package stats

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/acadash/internal/model"
)

// DayNames are short weekday labels indexed by day (0=Sunday).
var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayName returns the label for day, or "?" when day is out of range.
func DayName(day int) string {
	if day < 0 || day >= len(DayNames) {
		return "?"
	}
	return DayNames[day]
}

// TotalCreditUnits sums credit units over all classes.
func TotalCreditUnits(classes []model.ClassEntry) int {
	total := 0
	for _, c := range classes {
		total += c.CreditUnits
	}
	return total
}

// WeeklyMinutes sums class durations over the week.
func WeeklyMinutes(classes []model.ClassEntry) int {
	total := 0
	for _, c := range classes {
		total += c.DurationMinutes()
	}
	return total
}

// DailyLoad maps each day that has classes to its summed duration in minutes.
func DailyLoad(classes []model.ClassEntry) map[int]int {
	load := make(map[int]int, 7)
	for _, c := range classes {
		load[c.Day] += c.DurationMinutes()
	}
	return load
}

// ActiveDayCount counts days with a nonzero load. It is never below 1.
func ActiveDayCount(classes []model.ClassEntry) int {
	count := 0
	for _, minutes := range DailyLoad(classes) {
		if minutes != 0 {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// AverageDailyHours is the weekly load in hours spread over active days.
func AverageDailyHours(classes []model.ClassEntry) float64 {
	return float64(WeeklyMinutes(classes)) / 60 / float64(ActiveDayCount(classes))
}

// DayLoad is one bar of the weekly hours chart.
type DayLoad struct {
	Day     int
	Minutes int
	Share   float64
}

// WeeklyBars returns the load of every weekday starting at firstDay, each
// with its share of the busiest day.
func WeeklyBars(classes []model.ClassEntry, firstDay int) []DayLoad {
	load := DailyLoad(classes)
	maxMinutes := 1
	for _, minutes := range load {
		if minutes > maxMinutes {
			maxMinutes = minutes
		}
	}
	bars := make([]DayLoad, 0, 7)
	for _, day := range OrderedDays(firstDay) {
		bars = append(bars, DayLoad{
			Day:     day,
			Minutes: load[day],
			Share:   float64(load[day]) / float64(maxMinutes),
		})
	}
	return bars
}

// OrderedDays lists the seven weekdays starting at firstDay.
func OrderedDays(firstDay int) []int {
	firstDay = ((firstDay % 7) + 7) % 7
	days := make([]int, 7)
	for i := range days {
		days[i] = (firstDay + i) % 7
	}
	return days
}

// SubjectShare is one bar of the subject breakdown.
type SubjectShare struct {
	Class model.ClassEntry
	Share float64
}

// SubjectBreakdown gives every class its credit units relative to the largest.
func SubjectBreakdown(classes []model.ClassEntry) []SubjectShare {
	maxUnits := 1
	for _, c := range classes {
		if c.CreditUnits > maxUnits {
			maxUnits = c.CreditUnits
		}
	}
	out := make([]SubjectShare, 0, len(classes))
	for _, c := range classes {
		out = append(out, SubjectShare{
			Class: c,
			Share: float64(c.CreditUnits) / float64(maxUnits),
		})
	}
	return out
}

// Snapshot is the overview shown on the metrics page.
type Snapshot struct {
	TotalCreditUnits  int
	WeeklyMinutes     int
	WeeklyHours       float64
	AverageDailyHours float64
	ActiveDays        int
	ClassCount        int
	FocusSessions     int
	FocusMinutes      int
	FocusHours        int
	Streak            int
}

// Summarize computes the overview from the current state.
func Summarize(st *model.AppState) Snapshot {
	weekly := WeeklyMinutes(st.Schedules)
	return Snapshot{
		TotalCreditUnits:  TotalCreditUnits(st.Schedules),
		WeeklyMinutes:     weekly,
		WeeklyHours:       float64(weekly) / 60,
		AverageDailyHours: AverageDailyHours(st.Schedules),
		ActiveDays:        ActiveDayCount(st.Schedules),
		ClassCount:        len(st.Schedules),
		FocusSessions:     st.Metrics.FocusSessions,
		FocusMinutes:      st.Metrics.TotalFocusMinutes,
		FocusHours:        st.Metrics.TotalFocusMinutes / 60,
		Streak:            st.Metrics.Streak,
	}
}

// FocusTotalText renders focus minutes as "<h>h <m>m".
func FocusTotalText(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func sortByStart(classes []model.ClassEntry) {
	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].Start < classes[j].Start
	})
}
