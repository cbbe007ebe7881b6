package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout formats calendar dates in stored records.
const DateLayout = "2006-01-02"

// ClockMinutes converts "HH:MM" to minutes since midnight. Malformed values yield 0.
func ClockMinutes(hm string) int {
	minutes, err := ParseClock(hm)
	if err != nil {
		return 0
	}
	return minutes
}

// ParseClock parses a zero-padded 24h "HH:MM" string.
func ParseClock(hm string) (int, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", hm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hm)
	}
	return h*60 + m, nil
}

// ClockOf returns the "HH:MM" of t.
func ClockOf(t time.Time) string {
	return t.Format("15:04")
}

// MinutesOf returns minutes since midnight of t.
func MinutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DateKey returns the calendar date of t in local form.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// YesterdayKey returns the calendar date before t.
func YesterdayKey(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
