package scheduler

import (
	"time"

	"github.com/verte-zerg/acadash/internal/model"
)

// Light theme hours are [lightFromHour, darkFromHour).
const (
	lightFromHour = 6
	darkFromHour  = 17
)

// ThemeFor returns the theme auto-theme selects at now.
func ThemeFor(now time.Time) model.Theme {
	h := now.Hour()
	if h >= lightFromHour && h < darkFromHour {
		return model.ThemeLight
	}
	return model.ThemeDark
}
