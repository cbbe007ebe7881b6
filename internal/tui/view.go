package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/acadash/internal/focus"
	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/stats"
)

const (
	focusBarWidth = 30
	nameWidth     = 24
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderCountdown(),
		m.renderToday(),
		m.renderFocus(),
		m.renderTip(),
	}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := m.palette.muted.Render(m.renderHelp())
	if m.width == 0 || m.height < 3 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderHeader() string {
	st := m.engine.State()
	user := st.User
	if user == "" {
		user = "student"
	}
	greeting := m.palette.title.Render(fmt.Sprintf("%s Hi, %s", st.Avatar, user))
	clock := m.palette.clock.Render(m.now.Format("15:04:05"))
	date := m.palette.muted.Render(m.now.Format("Monday, 2 January 2006"))
	mode := m.palette.muted.Render(fmt.Sprintf("[%s] %s", st.Mode, model.ModeDescription(st.Mode)))
	return strings.Join([]string{greeting, clock + "  " + date, mode}, "\n")
}

func (m *Model) renderCountdown() string {
	label := m.palette.muted.Render("Next class")
	value := m.palette.clock.Render(m.countdown.Clock())
	return m.palette.card.Render(label + "\n" + value + "  " + m.palette.text.Render(m.countdown.Label()))
}

func (m *Model) renderToday() string {
	classes := m.engine.TodayClasses(m.now)
	lines := []string{m.palette.muted.Render("Today")}
	if len(classes) == 0 {
		lines = append(lines, m.palette.text.Render("No classes today."))
	}
	for _, c := range classes {
		line := fmt.Sprintf("%s-%s  %-*s  %s", c.Start, c.End, nameWidth, stats.Truncate(c.Name, nameWidth), c.Room)
		lines = append(lines, m.palette.text.Render(strings.TrimRight(line, " ")))
	}
	return m.palette.card.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFocus() string {
	d := m.engine.Focus().Snapshot()
	title := fmt.Sprintf("Focus %s  %d min", d.Status, d.Duration/60)
	lines := []string{
		m.palette.muted.Render(title),
		m.palette.clock.Render(d.Clock) + "  " + m.progressBar(d),
	}
	snap := m.engine.Stats()
	lines = append(lines, m.palette.muted.Render(fmt.Sprintf(
		"Sessions %d  Total %s  Streak %d",
		snap.FocusSessions, stats.FocusTotalText(snap.FocusMinutes), snap.Streak,
	)))
	return m.palette.card.Render(strings.Join(lines, "\n"))
}

func (m *Model) progressBar(d focus.Display) string {
	filled := int(d.Progress * focusBarWidth)
	if filled > focusBarWidth {
		filled = focusBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return m.palette.barFull.Render(strings.Repeat("█", filled)) +
		m.palette.barRest.Render(strings.Repeat("░", focusBarWidth-filled))
}

func (m *Model) renderTip() string {
	lines := []string{
		m.palette.accent.Render(m.tip.Title),
		m.palette.text.Render(m.tip.Desc),
	}
	if m.quote.Desc != "" {
		lines = append(lines, m.palette.muted.Render(fmt.Sprintf("%q  %s", m.quote.Desc, m.quote.Title)))
	}
	width := m.width - 4
	if width < 20 {
		width = 60
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		style := m.palette.toast
		if t.isError {
			style = m.palette.errToast
		}
		parts = append(parts, style.Render(t.title+"\n"+t.message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderHelp() string {
	return "space: start/pause  r: reset  s: skip  1-5: preset  t: theme  w: mode  n: next tip  q: quit"
}
