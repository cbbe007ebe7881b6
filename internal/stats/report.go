package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/acadash/internal/model"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// RenderSummary prints the overview numbers.
func RenderSummary(w io.Writer, snap Snapshot) error {
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"Total SKS", fmt.Sprintf("%d", snap.TotalCreditUnits)},
		{"Weekly Hours", fmt.Sprintf("%.1f", snap.WeeklyHours)},
		{"Avg Hours / Day", fmt.Sprintf("%.1f", snap.AverageDailyHours)},
		{"Total Classes", fmt.Sprintf("%d", snap.ClassCount)},
		{"Focus Sessions", fmt.Sprintf("%d", snap.FocusSessions)},
		{"Focus Hours", fmt.Sprintf("%d", snap.FocusHours)},
		{"Day Streak", fmt.Sprintf("%d", snap.Streak)},
	}
	if _, err := fmt.Fprintln(w, "Overview"); err != nil {
		return err
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true}))
}

// RenderWeeklyBars prints per-day hours as horizontal bars of barWidth cells.
func RenderWeeklyBars(w io.Writer, bars []DayLoad, barWidth int) error {
	if _, err := fmt.Fprintln(w, "Weekly Hours"); err != nil {
		return err
	}
	for _, bar := range bars {
		line := fmt.Sprintf("%s %s %5.1fh", DayName(bar.Day), drawBar(bar.Share, barWidth), float64(bar.Minutes)/60)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderSubjects prints credit units per class as proportional bars.
func RenderSubjects(w io.Writer, shares []SubjectShare, barWidth int) error {
	if _, err := fmt.Fprintln(w, "Subject Breakdown"); err != nil {
		return err
	}
	if len(shares) == 0 {
		if _, err := fmt.Fprintln(w, "No classes yet"); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "")
		return err
	}
	nameWidth := 0
	for _, s := range shares {
		if cw := displayWidth(s.Class.Name); cw > nameWidth {
			nameWidth = cw
		}
	}
	if nameWidth > 24 {
		nameWidth = 24
	}
	for _, s := range shares {
		name := padCell(Truncate(s.Class.Name, nameWidth), nameWidth, false)
		line := fmt.Sprintf("%s %s %d SKS", name, drawBar(s.Share, barWidth), s.Class.CreditUnits)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderGrid prints the weekly calendar. A class is listed at its start hour
// with its row span; continuation rows show "┆".
func RenderGrid(w io.Writer, grid Grid, cellWidth int) error {
	if cellWidth < 4 {
		cellWidth = 4
	}
	headers := []string{""}
	for _, day := range grid.Days {
		headers = append(headers, DayName(day))
	}
	continued := map[GridSlot]bool{}
	rows := make([][]string, 0, len(grid.Hours))
	for _, hour := range grid.Hours {
		row := []string{fmt.Sprintf("%02d:00", hour)}
		for _, day := range grid.Days {
			entries := grid.At(day, hour)
			cell := ""
			switch {
			case len(entries) > 0:
				names := make([]string, 0, len(entries))
				for _, e := range entries {
					names = append(names, e.Class.Name)
					for r := 1; r < e.Rows; r++ {
						continued[GridSlot{Day: day, Hour: hour + r}] = true
					}
				}
				cell = Truncate(strings.Join(names, "/"), cellWidth)
			case continued[GridSlot{Day: day, Hour: hour}]:
				cell = "┆"
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	if _, err := fmt.Fprintln(w, "Weekly Grid"); err != nil {
		return err
	}
	return writeLines(w, formatTable(headers, rows, nil))
}

// RenderHistory prints the most recent focus sessions, newest first.
func RenderHistory(w io.Writer, metrics model.Metrics) error {
	if _, err := fmt.Fprintln(w, "Session History"); err != nil {
		return err
	}
	if len(metrics.SessionHistory) == 0 {
		_, err := fmt.Fprintln(w, "No sessions yet. Start focusing!")
		return err
	}
	rows := make([][]string, 0, len(metrics.SessionHistory))
	for _, s := range metrics.SessionHistory {
		rows = append(rows, []string{"Focus Session", s.Date, fmt.Sprintf("%d min", s.DurationMinutes)})
	}
	return writeLines(w, formatTable([]string{"Kind", "Date", "Duration"}, rows, map[int]bool{2: true}))
}

// RenderDay prints the classes of one day.
func RenderDay(w io.Writer, day int, classes []model.ClassEntry, notes map[string]string) error {
	if _, err := fmt.Fprintf(w, "%s\n", DayName(day)); err != nil {
		return err
	}
	if len(classes) == 0 {
		_, err := fmt.Fprintln(w, "No classes scheduled for this day")
		return err
	}
	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		name := c.Name
		if notes[c.ID] != "" {
			name += " [notes]"
		}
		rows = append(rows, []string{
			c.Start + "-" + c.End,
			name,
			orDash(c.Lecturer),
			orDash(c.Room),
			fmt.Sprintf("%d", c.CreditUnits),
			c.ID,
		})
	}
	headers := []string{"Time", "Class", "Lecturer", "Room", "SKS", "ID"}
	return writeLines(w, formatTable(headers, rows, map[int]bool{4: true}))
}

func drawBar(share float64, width int) string {
	if width <= 0 {
		return ""
	}
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share*float64(width) + 0.5)
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
