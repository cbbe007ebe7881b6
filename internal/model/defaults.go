package model

// Default values applied when a stored record lacks a field.
const (
	DefaultAvatar        = "🎓"
	DefaultSemester      = "1"
	DefaultMorningTime   = "07:00"
	DefaultNightTime     = "22:00"
	DefaultFirstDay      = 1
	DefaultStarIntensity = 2
	DefaultAccent        = "#0ea5e9"
	DefaultAccent2       = "#06b6d4"
	DefaultCreditUnits   = 2
	DefaultClassColor    = "#0ea5e9"
	MaxSessionHistory    = 20
)

// DefaultSettings returns settings with every field populated.
func DefaultSettings() Settings {
	return Settings{
		MorningTime:   DefaultMorningTime,
		NightTime:     DefaultNightTime,
		FirstDay:      DefaultFirstDay,
		StarIntensity: DefaultStarIntensity,
		Accent:        DefaultAccent,
		Accent2:       DefaultAccent2,
	}
}

// DefaultMetrics returns empty focus metrics.
func DefaultMetrics() Metrics {
	return Metrics{SessionHistory: []SessionRecord{}}
}

// DefaultProfile returns an empty profile.
func DefaultProfile() Profile {
	return Profile{Semester: DefaultSemester}
}

// DefaultState returns a fresh application state.
func DefaultState() AppState {
	return AppState{
		Avatar:    DefaultAvatar,
		Profile:   DefaultProfile(),
		Schedules: []ClassEntry{},
		Notes:     map[string]string{},
		Photos:    map[string][]string{},
		Settings:  DefaultSettings(),
		Metrics:   DefaultMetrics(),
		Mode:      ModeWeekday,
	}
}

// Normalize fills collections left nil by a decoder.
func (s *AppState) Normalize() {
	if s.Schedules == nil {
		s.Schedules = []ClassEntry{}
	}
	if s.Notes == nil {
		s.Notes = map[string]string{}
	}
	if s.Photos == nil {
		s.Photos = map[string][]string{}
	}
	if s.Metrics.SessionHistory == nil {
		s.Metrics.SessionHistory = []SessionRecord{}
	}
	if s.Mode != ModeWeekday && s.Mode != ModeWeekend {
		s.Mode = ModeWeekday
	}
	if s.Avatar == "" {
		s.Avatar = DefaultAvatar
	}
}

// ModeDescription returns the dashboard text for a mode.
func ModeDescription(m Mode) string {
	if m == ModeWeekend {
		return "Rest & review mode: light study, hobbies, and recovery."
	}
	return "Full academic mode: lectures, labs, and study groups."
}
