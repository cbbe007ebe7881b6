package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/acadash/internal/model"
)

type palette struct {
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	clock    lipgloss.Style
	barFull  lipgloss.Style
	barRest  lipgloss.Style
	card     lipgloss.Style
	toast    lipgloss.Style
	errToast lipgloss.Style
}

func paletteFor(theme model.Theme) palette {
	fg, muted, border, accent := "#F0F0F0", "#8C8C8C", "#4A4A4A", "#0EA5E9"
	if theme == model.ThemeLight {
		fg, muted, border, accent = "#1F2937", "#6B7280", "#CBD5E1", "#0284C7"
	}
	return palette{
		title:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color(fg)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		clock:   lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Bold(true),
		barFull: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		barRest: lipgloss.NewStyle().Foreground(lipgloss.Color(border)),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(border)),
		toast: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(accent)),
		errToast: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF4D4F")),
	}
}
