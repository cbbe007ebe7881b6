package engine

import (
	"context"
	"sort"
	"strconv"

	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/schedule"
)

func boolSetting(s *model.Settings, key string) (*bool, bool) {
	switch key {
	case "notif_class":
		return &s.NotifClass, true
	case "notif_morning":
		return &s.NotifMorning, true
	case "notif_night":
		return &s.NotifNight, true
	case "notif_study":
		return &s.NotifStudy, true
	case "auto_theme":
		return &s.AutoTheme, true
	default:
		return nil, false
	}
}

// ToggleKeys lists the boolean settings accepted by ToggleSetting.
func ToggleKeys() []string {
	keys := []string{"notif_class", "notif_morning", "notif_night", "notif_study", "auto_theme"}
	sort.Strings(keys)
	return keys
}

// ToggleSetting flips a boolean setting and returns its new value.
func (e *Engine) ToggleSetting(ctx context.Context, key string) (bool, error) {
	ptr, ok := boolSetting(&e.state.Settings, key)
	if !ok {
		return false, &schedule.ValidationError{Field: key, Message: "is not a toggle setting"}
	}
	prev := *ptr
	*ptr = !prev
	if err := e.save(ctx, ChangeSettings, func() { *ptr = prev }); err != nil {
		return prev, err
	}
	return *ptr, nil
}

// settingRules holds the validator tags of the value settings.
var settingRules = map[string]string{
	"morning_time":   "required,datetime=15:04",
	"night_time":     "required,datetime=15:04",
	"first_day":      "min=0,max=6",
	"star_intensity": "min=0,max=5",
	"accent":         "required,hexcolor",
	"accent2":        "required,hexcolor",
}

func settingValue(s model.Settings, key string) any {
	switch key {
	case "morning_time":
		return s.MorningTime
	case "night_time":
		return s.NightTime
	case "first_day":
		return s.FirstDay
	case "star_intensity":
		return s.StarIntensity
	case "accent":
		return s.Accent
	case "accent2":
		return s.Accent2
	default:
		return nil
	}
}

// SetSetting assigns a value setting: morning_time, night_time, first_day,
// star_intensity, accent, accent2. Boolean settings accept "true"/"false".
func (e *Engine) SetSetting(ctx context.Context, key, value string) error {
	next := e.state.Settings
	if ptr, ok := boolSetting(&next, key); ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &schedule.ValidationError{Field: key, Message: "must be true or false"}
		}
		*ptr = b
		return e.applySettings(ctx, next)
	}
	switch key {
	case "morning_time":
		next.MorningTime = value
	case "night_time":
		next.NightTime = value
	case "first_day", "star_intensity":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &schedule.ValidationError{Field: key, Message: "must be an integer"}
		}
		if key == "first_day" {
			next.FirstDay = n
		} else {
			next.StarIntensity = n
		}
	case "accent":
		next.Accent = value
	case "accent2":
		next.Accent2 = value
	default:
		return &schedule.ValidationError{Field: key, Message: "is not a known setting"}
	}
	return e.applySettings(ctx, next, key)
}

// SetAccent sets both accent colors at once.
func (e *Engine) SetAccent(ctx context.Context, accent, accent2 string) error {
	next := e.state.Settings
	next.Accent = accent
	next.Accent2 = accent2
	return e.applySettings(ctx, next, "accent", "accent2")
}

// applySettings stores next after checking the changed keys only, so a bad
// value already on disk does not block edits to other settings.
func (e *Engine) applySettings(ctx context.Context, next model.Settings, changed ...string) error {
	if err := validateSettings(next, changed); err != nil {
		return err
	}
	prev := e.state.Settings
	e.state.Settings = next
	return e.save(ctx, ChangeSettings, func() { e.state.Settings = prev })
}

func validateSettings(s model.Settings, keys []string) error {
	for _, key := range keys {
		if err := schedule.ValidateVar(key, settingValue(s, key), settingRules[key]); err != nil {
			return err
		}
		if key != "morning_time" && key != "night_time" {
			continue
		}
		if _, err := model.ParseClock(settingValue(s, key).(string)); err != nil {
			return &schedule.ValidationError{Field: key, Message: err.Error()}
		}
	}
	return nil
}
