package scheduler

import (
	"fmt"
	"time"

	"github.com/verte-zerg/acadash/internal/model"
)

const minutesPerDay = 24 * 60

// Countdown is the time remaining until the next class.
type Countdown struct {
	Upcoming bool
	Class    model.ClassEntry
	Hours    int
	Minutes  int
	Seconds  int
}

// Remaining returns the countdown as a duration.
func (c Countdown) Remaining() time.Duration {
	return time.Duration(c.Hours)*time.Hour + time.Duration(c.Minutes)*time.Minute + time.Duration(c.Seconds)*time.Second
}

// Clock renders "HH:MM:SS", or dashes when nothing is upcoming.
func (c Countdown) Clock() string {
	if !c.Upcoming {
		return "—:—:—"
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// Label renders "<name> · <start>" or the no-class text.
func (c Countdown) Label() string {
	if !c.Upcoming {
		return "No upcoming classes"
	}
	return fmt.Sprintf("%s · %s", c.Class.Name, c.Class.Start)
}

// NextClass finds the next class after now. Classes later today win; otherwise
// days +1..+7 are scanned in order and the first day with any class supplies
// its earliest start. Day +7 is today's weekday next week, so a non-empty
// schedule always yields an upcoming class.
func NextClass(classes []model.ClassEntry, now time.Time) Countdown {
	today := int(now.Weekday())
	nowMin := model.MinutesOf(now)

	var next model.ClassEntry
	found := false
	minDiff := 0
	consider := func(c model.ClassEntry, diff int) {
		if diff <= 0 {
			return
		}
		if !found || diff < minDiff {
			next, minDiff, found = c, diff, true
		}
	}

	for _, c := range classes {
		if c.Day == today {
			consider(c, c.StartMinutes()-nowMin)
		}
	}
	for d := 1; d <= 7 && !found; d++ {
		day := (today + d) % 7
		for _, c := range classes {
			if c.Day == day {
				consider(c, d*minutesPerDay+c.StartMinutes()-nowMin)
			}
		}
	}
	if !found {
		return Countdown{}
	}

	totalSec := minDiff*60 - now.Second()
	return Countdown{
		Upcoming: true,
		Class:    next,
		Hours:    totalSec / 3600,
		Minutes:  (totalSec % 3600) / 60,
		Seconds:  totalSec % 60,
	}
}
