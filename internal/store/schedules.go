package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/acadash/internal/model"
)

func checkClass(c model.ClassEntry) error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("missing id")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("class %q: name is required", c.ID)
	}
	if c.Day < 0 || c.Day > 6 {
		return fmt.Errorf("class %q: day %d out of range 0..6", c.ID, c.Day)
	}
	start, err := model.ParseClock(c.Start)
	if err != nil {
		return fmt.Errorf("class %q: start: %w", c.ID, err)
	}
	end, err := model.ParseClock(c.End)
	if err != nil {
		return fmt.Errorf("class %q: end: %w", c.ID, err)
	}
	if start >= end {
		return fmt.Errorf("class %q: end must be after start", c.ID)
	}
	return nil
}

// checkSchedules reports the first malformed or duplicate entry.
func checkSchedules(classes []model.ClassEntry) error {
	seen := make(map[string]struct{}, len(classes))
	for i, c := range classes {
		if err := checkClass(c); err != nil {
			return fmt.Errorf("schedules[%d]: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("schedules[%d]: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// dropInvalidSchedules keeps the well-formed entries, first occurrence of an
// id winning, and joins the reasons for everything it dropped.
func dropInvalidSchedules(classes []model.ClassEntry) ([]model.ClassEntry, error) {
	kept := make([]model.ClassEntry, 0, len(classes))
	seen := make(map[string]struct{}, len(classes))
	var errs []error
	for i, c := range classes {
		if err := checkClass(c); err != nil {
			errs = append(errs, fmt.Errorf("schedules[%d]: %w", i, err))
			continue
		}
		if _, dup := seen[c.ID]; dup {
			errs = append(errs, fmt.Errorf("schedules[%d]: duplicate id %q", i, c.ID))
			continue
		}
		seen[c.ID] = struct{}{}
		kept = append(kept, c)
	}
	return kept, errors.Join(errs...)
}
