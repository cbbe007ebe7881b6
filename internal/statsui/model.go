// Package statsui provides the Bubble Tea metrics interface.
package statsui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/schedule"
	"github.com/verte-zerg/acadash/internal/stats"
)

const (
	tabOverview = iota
	tabClasses
	tabGrid
	tabHistory
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#0EA5E9"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Options configures the metrics view.
type Options struct {
	GridStartHour int
	GridEndHour   int
}

// Model implements the Bubble Tea metrics UI.
type Model struct {
	state *model.AppState
	opts  Options

	tabs       []string
	activeTab  int
	viewports  []viewport.Model
	classTable table.Model

	width  int
	height int

	filterMode  bool
	filterInput textinput.Model
	filter      string
}

// NewModel constructs a metrics UI over st.
func NewModel(st *model.AppState, opts Options) *Model {
	if opts.GridStartHour == 0 && opts.GridEndHour == 0 {
		opts.GridStartHour = stats.DefaultGridStartHour
		opts.GridEndHour = stats.DefaultGridEndHour
	}
	m := &Model{
		state: st,
		opts:  opts,
		tabs:  []string{"Overview", "Classes", "Grid", "History"},
	}
	m.filterInput = newFilterInput("Filter: ")
	m.classTable = buildClassTable(nil, 0, 1)
	m.initViewports()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			m.filterMode = true
			m.filterInput.SetValue(m.filter)
			return m, m.filterInput.Focus()
		case "g", "home":
			if m.activeTab == tabClasses {
				m.classTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabClasses {
				m.classTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabClasses {
				var cmd tea.Cmd
				m.classTable, cmd = m.classTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderTabs(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.filterMode = false
		m.filterInput.Blur()
		m.filter = strings.TrimSpace(m.filterInput.Value())
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "class name"
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = lipgloss.Height(activeNavStyle.Render("X"))
	if headerHeight < 1 {
		headerHeight = 1
	}
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.classTable.SetWidth(m.width)
	m.classTable.SetHeight(maxInt(1, vpHeight-1))
	m.filterInput.Width = maxInt(10, m.width-lipgloss.Width(m.filterInput.Prompt)-2)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabClasses {
		m.classTable.Focus()
	} else {
		m.classTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.filterInput.View()
	}
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Filter: /  Quit: q"
	if m.filter != "" {
		help += fmt.Sprintf("  [filter: %s]", m.filter)
	}
	return headerStyle.Render(truncateLine(help, m.width))
}

func (m *Model) renderBody(height int) string {
	if m.activeTab == tabClasses {
		if len(m.filteredClasses()) == 0 {
			return fitLines("No classes found.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.classTable.View()), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) filteredClasses() []model.ClassEntry {
	if m.filter == "" {
		return m.state.Schedules
	}
	needle := strings.ToLower(m.filter)
	out := make([]model.ClassEntry, 0, len(m.state.Schedules))
	for _, c := range m.state.Schedules {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

func (m *Model) refresh() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	classes := m.filteredClasses()
	_, bodyHeight, _ := m.layoutHeights()
	cols, rows := buildClassTableData(classes, m.state.Notes, m.state.Settings.FirstDay)
	m.classTable.SetColumns(cols)
	m.classTable.SetRows(rows)
	m.classTable.SetHeight(maxInt(1, bodyHeight-1))

	m.viewports[tabOverview].SetContent(renderOverview(m.state, classes, width))
	m.viewports[tabGrid].SetContent(renderGrid(classes, m.opts, m.state.Settings.FirstDay, width))
	m.viewports[tabHistory].SetContent(renderHistory(m.state.Metrics))
}

func renderOverview(st *model.AppState, classes []model.ClassEntry, width int) string {
	snap := stats.Summarize(st)
	cards := []string{
		metricCard("Total SKS", fmt.Sprintf("%d", snap.TotalCreditUnits)),
		metricCard("Weekly Hours", fmt.Sprintf("%.1f", snap.WeeklyHours)),
		metricCard("Classes", fmt.Sprintf("%d", snap.ClassCount)),
		metricCard("Focus", stats.FocusTotalText(snap.FocusMinutes)),
		metricCard("Sessions", fmt.Sprintf("%d", snap.FocusSessions)),
		metricCard("Streak", fmt.Sprintf("%d", snap.Streak)),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}

	var buf bytes.Buffer
	barWidth := stats.BarWidthFor(width, 30)
	if err := stats.RenderWeeklyBars(&buf, stats.WeeklyBars(classes, st.Settings.FirstDay), barWidth); err != nil {
		return fmt.Sprintf("Failed to render weekly hours: %v", err)
	}
	if err := stats.RenderSubjects(&buf, stats.SubjectBreakdown(classes), barWidth); err != nil {
		return fmt.Sprintf("Failed to render subjects: %v", err)
	}
	return strings.TrimRight(summary+"\n\n"+buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderGrid(classes []model.ClassEntry, opts Options, firstDay, width int) string {
	grid := stats.WeeklyGrid(classes, opts.GridStartHour, opts.GridEndHour, firstDay)
	cellWidth := maxInt(4, (width-7)/7-2)
	var buf bytes.Buffer
	if err := stats.RenderGrid(&buf, grid, cellWidth); err != nil {
		return fmt.Sprintf("Failed to render grid: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderHistory(metrics model.Metrics) string {
	var buf bytes.Buffer
	if err := stats.RenderHistory(&buf, metrics); err != nil {
		return fmt.Sprintf("Failed to render history: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func buildClassTable(classes []model.ClassEntry, width, height int) table.Model {
	cols, rows := buildClassTableData(classes, nil, model.DefaultFirstDay)
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(classTableStyles())
	return t
}

func buildClassTableData(classes []model.ClassEntry, notes map[string]string, firstDay int) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Day", Width: 4},
		{Title: "Time", Width: 12},
		{Title: "Class", Width: 24},
		{Title: "Room", Width: 10},
		{Title: "SKS", Width: 4},
		{Title: "Note", Width: 5},
	}
	sorted := make([]model.ClassEntry, 0, len(classes))
	for _, day := range stats.OrderedDays(firstDay) {
		sorted = append(sorted, schedule.ByDay(classes, day)...)
	}
	rows := make([]table.Row, 0, len(sorted))
	for i := range sorted {
		c := sorted[i]
		note := ""
		if notes[c.ID] != "" {
			note = "yes"
		}
		rows = append(rows, table.Row{
			stats.DayName(c.Day),
			c.Start + "-" + c.End,
			stats.Truncate(c.Name, 24),
			stats.Truncate(c.Room, 10),
			fmt.Sprintf("%d", c.CreditUnits),
			note,
		})
	}
	return columns, rows
}

func classTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return stats.Truncate(s, width)
}

// Run starts the metrics program in the alternate screen.
func Run(st *model.AppState, opts Options) error {
	_, err := tea.NewProgram(NewModel(st, opts), tea.WithAltScreen()).Run()
	return err
}
