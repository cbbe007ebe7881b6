// Package model defines shared data structures.
package model

// Mode selects the dashboard description text.
type Mode string

// Supported display modes.
const (
	ModeWeekday Mode = "weekday"
	ModeWeekend Mode = "weekend"
)

// Theme is the light/dark appearance of the dashboard.
type Theme string

// Supported themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ClassEntry is one recurring weekly class occurrence.
type ClassEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Lecturer    string `json:"lecturer,omitempty"`
	Day         int    `json:"day"`
	Room        string `json:"room,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	CreditUnits int    `json:"sks"`
	Color       string `json:"color"`
}

// StartMinutes returns the start time as minutes since midnight.
func (c ClassEntry) StartMinutes() int {
	return ClockMinutes(c.Start)
}

// EndMinutes returns the end time as minutes since midnight.
func (c ClassEntry) EndMinutes() int {
	return ClockMinutes(c.End)
}

// DurationMinutes returns end minus start in minutes.
func (c ClassEntry) DurationMinutes() int {
	return c.EndMinutes() - c.StartMinutes()
}

// Profile holds the user's personal fields.
type Profile struct {
	Name     string `json:"name"`
	Uni      string `json:"uni"`
	Major    string `json:"major"`
	Semester string `json:"semester"`
	NIM      string `json:"nim"`
	Motto    string `json:"motto"`
}

// Settings holds the user's toggles and values.
type Settings struct {
	NotifClass    bool   `json:"notif_class"`
	NotifMorning  bool   `json:"notif_morning"`
	NotifNight    bool   `json:"notif_night"`
	NotifStudy    bool   `json:"notif_study"`
	AutoTheme     bool   `json:"auto_theme"`
	MorningTime   string `json:"morning_time"`
	NightTime     string `json:"night_time"`
	FirstDay      int    `json:"first_day"`
	StarIntensity int    `json:"star_intensity"`
	Accent        string `json:"accent"`
	Accent2       string `json:"accent2"`
}

// SessionRecord is one completed focus session.
type SessionRecord struct {
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration"`
}

// Metrics aggregates focus activity.
type Metrics struct {
	FocusSessions     int             `json:"focusSessions"`
	TotalFocusMinutes int             `json:"totalFocusMin"`
	Streak            int             `json:"streak"`
	LastSessionDate   *string         `json:"lastSession"`
	SessionHistory    []SessionRecord `json:"sessionHistory"`
}

// AppState is the aggregate root persisted as a single record.
type AppState struct {
	User      string              `json:"user"`
	Avatar    string              `json:"avatar"`
	Profile   Profile             `json:"profile"`
	Schedules []ClassEntry        `json:"schedules"`
	Notes     map[string]string   `json:"notes"`
	Photos    map[string][]string `json:"photos"`
	Settings  Settings            `json:"settings"`
	Metrics   Metrics             `json:"metrics"`
	Mode      Mode                `json:"mode"`
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	out := s
	out.Schedules = make([]ClassEntry, len(s.Schedules))
	copy(out.Schedules, s.Schedules)
	out.Notes = make(map[string]string, len(s.Notes))
	for k, v := range s.Notes {
		out.Notes[k] = v
	}
	out.Photos = make(map[string][]string, len(s.Photos))
	for k, v := range s.Photos {
		out.Photos[k] = append([]string(nil), v...)
	}
	out.Metrics = s.Metrics.Clone()
	return out
}

// Clone returns a deep copy of the metrics.
func (m Metrics) Clone() Metrics {
	out := m
	if m.LastSessionDate != nil {
		date := *m.LastSessionDate
		out.LastSessionDate = &date
	}
	out.SessionHistory = make([]SessionRecord, len(m.SessionHistory))
	copy(out.SessionHistory, m.SessionHistory)
	return out
}
