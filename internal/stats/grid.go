package stats

import "github.com/verte-zerg/acadash/internal/model"

// Default hour range of the weekly grid.
const (
	DefaultGridStartHour = 7
	DefaultGridEndHour   = 20
)

// GridSlot addresses one (day, hour) bucket.
type GridSlot struct {
	Day  int
	Hour int
}

// GridEntry is a class placed at its start hour spanning Rows hour rows.
type GridEntry struct {
	Class model.ClassEntry
	Rows  int
}

// Grid is the weekly calendar layout.
type Grid struct {
	Days  []int
	Hours []int
	Slots map[GridSlot][]GridEntry
}

// At returns the entries starting in the bucket.
func (g Grid) At(day, hour int) []GridEntry {
	return g.Slots[GridSlot{Day: day, Hour: hour}]
}

// WeeklyGrid buckets classes by day and start hour for hours in
// [startHour, endHour]. Classes starting outside the range are not placed.
func WeeklyGrid(classes []model.ClassEntry, startHour, endHour, firstDay int) Grid {
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 23 {
		endHour = 23
	}
	grid := Grid{
		Days:  OrderedDays(firstDay),
		Slots: map[GridSlot][]GridEntry{},
	}
	for h := startHour; h <= endHour; h++ {
		grid.Hours = append(grid.Hours, h)
	}

	sorted := make([]model.ClassEntry, len(classes))
	copy(sorted, classes)
	sortByStart(sorted)
	for _, c := range sorted {
		hour := c.StartMinutes() / 60
		if hour < startHour || hour > endHour {
			continue
		}
		slot := GridSlot{Day: c.Day, Hour: hour}
		grid.Slots[slot] = append(grid.Slots[slot], GridEntry{Class: c, Rows: RowSpan(c)})
	}
	return grid
}

// RowSpan is the number of hour rows a class covers: ceil(duration/60), at least 1.
func RowSpan(c model.ClassEntry) int {
	d := c.DurationMinutes()
	rows := (d + 59) / 60
	if rows < 1 {
		return 1
	}
	return rows
}
