package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rohits-web03/quickdrop/internal/charts"
	"github.com/rohits-web03/quickdrop/internal/models"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

const connectionErrorText = "Error fetching logs. Please check your server connection."

type viewState int

const (
	stateLoading viewState = iota
	stateFailed
	stateReady
)

type tab int

const (
	tabTransfers tab = iota
	tabCharts
	tabPerformance
	tabCount
)

var tabNames = [tabCount]string{"Recent transfers", "Charts", "Performance"}

// SnapshotMsg carries a poll result into the program.
type SnapshotMsg Snapshot

// Model is the bubbletea model of the terminal dashboard. Each snapshot
// replaces the displayed batch wholesale.
type Model struct {
	state    viewState
	tab      tab
	events   []models.TransferEvent
	report   stats.Report
	err      error
	updated  time.Time
	spinner  spinner.Model
	table    table.Model
	rate     progress.Model
	retry    func()
	now      func() time.Time
	width    int
	quitting bool
}

// NewModel builds the dashboard; retry is invoked when the user asks for a
// manual refresh.
func NewModel(retry func()) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleTitle

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 19},
			{Title: "Sender", Width: 14},
			{Title: "Receiver", Width: 14},
			{Title: "File", Width: 22},
			{Title: "Size", Width: 10},
			{Title: "Status", Width: 8},
		}),
		table.WithHeight(stats.RecentLimit+1),
		table.WithFocused(false),
	)

	if retry == nil {
		retry = func() {}
	}

	return Model{
		state:   stateLoading,
		spinner: sp,
		table:   t,
		rate:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(cardWidth-2), progress.WithoutPercentage()),
		retry:   retry,
		now:     time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case SnapshotMsg:
		m.apply(Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		if m.state == stateFailed {
			m.state = stateLoading
		}
		m.retry()
		return m, m.spinner.Tick
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % tabCount
	case "shift+tab", "left", "h":
		m.tab = (m.tab + tabCount - 1) % tabCount
	case "1", "2", "3":
		m.tab = tab(msg.String()[0] - '1')
	}
	return m, nil
}

// apply swaps in a poll result. A successful poll clears a previous error, so
// background polling doubles as an automatic retry.
func (m *Model) apply(s Snapshot) {
	if s.Err != nil {
		m.state = stateFailed
		m.err = s.Err
		return
	}
	m.state = stateReady
	m.err = nil
	m.events = s.Events
	m.report = s.Report
	m.updated = s.FetchedAt
	m.table.SetRows(tableRows(s.Report.Recent))
}

func tableRows(events []models.TransferEvent) []table.Row {
	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		status := iconSuccess + " ok"
		if !e.Successful {
			status = iconError + " failed"
		}
		rows = append(rows, table.Row{
			localTime(e.Timestamp),
			e.SenderName,
			e.ReceiverName,
			e.FileName,
			stats.FormatBytes(e.FileSize),
			status,
		})
	}
	return rows
}

func localTime(ts string) string {
	t, err := models.ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n  %s Loading dashboard data...\n", m.spinner.View())
	case stateFailed:
		return m.errorView()
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("QuickDrop Dashboard"))
	b.WriteString("\n")
	b.WriteString(styleMuted.Render(fmt.Sprintf("Tracking file transfers · updated %s · auto refresh",
		m.updated.Local().Format("15:04:05"))))
	b.WriteString("\n\n")
	b.WriteString(m.cardsView())
	b.WriteString("\n\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch m.tab {
	case tabTransfers:
		b.WriteString(m.transfersView())
	case tabCharts:
		b.WriteString(m.chartsView())
	case tabPerformance:
		b.WriteString(m.performanceView())
	}

	b.WriteString("\n\n")
	b.WriteString(styleMuted.Render("tab/←→ switch · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) errorView() string {
	box := styleErrorBox.Render(
		styleError.Render(iconError+" Connection error") + "\n\n" +
			connectionErrorText + "\n" +
			styleMuted.Render(m.err.Error()) + "\n\n" +
			styleBold.Render("Press r to retry") + styleMuted.Render(" · q to quit"),
	)
	if m.width > 0 {
		return lipgloss.Place(m.width, lipgloss.Height(box)+2, lipgloss.Center, lipgloss.Center, box)
	}
	return "\n" + box + "\n"
}

func (m Model) cardsView() string {
	s := m.report.Summary
	card := func(title, value, foot string) string {
		return styleCardBase.Render(styleMuted.Render(title) + "\n" + styleBold.Render(value) + "\n" + foot)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total transfers", fmt.Sprintf("%d", s.TotalTransfers), ""),
		card("Total size", stats.FormatBytes(s.TotalSize), ""),
		card("Success rate", s.SuccessRatePercent()+"%", m.rate.ViewAs(s.SuccessRate/100)),
		card("Most active device", s.MostActiveDevice, styleMuted.Render(fmt.Sprintf("%d times", s.MostActiveCount))),
	)
}

func (m Model) tabsView() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts = append(parts, styleTabOn.Render(name))
		} else {
			parts = append(parts, styleTabOff.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) transfersView() string {
	header := styleMuted.Render(fmt.Sprintf("Showing the latest %d of %d transfers", len(m.report.Recent), len(m.events)))
	if len(m.report.Recent) == 0 {
		return header + "\n\n" + styleMuted.Render("No transfers recorded yet.")
	}
	return header + "\n\n" + m.table.View()
}

func (m Model) chartsView() string {
	var b strings.Builder

	b.WriteString(styleBold.Render("Transfers by file type"))
	b.WriteString("\n")
	typeMax := 0
	for _, tc := range m.report.FileTypes {
		typeMax = max(typeMax, tc.Count)
	}
	for _, tc := range m.report.FileTypes {
		b.WriteString(barLine(charts.TypeLabel(tc.FileType), tc.Count, typeMax, styleBarFill))
	}

	b.WriteString("\n")
	b.WriteString(styleBold.Render("Transfers per day"))
	b.WriteString("\n")
	dayMax := 0
	for _, dc := range m.report.Timeline {
		dayMax = max(dayMax, dc.Count)
	}
	for _, dc := range m.report.Timeline {
		b.WriteString(barLine(dc.Date, dc.Count, dayMax, styleBarFill))
	}

	b.WriteString("\n")
	b.WriteString(styleBold.Render("Successful vs failed"))
	b.WriteString("\n")
	outMax := 0
	for _, o := range m.report.Outcomes {
		outMax = max(outMax, o.Successful, o.Failed)
	}
	for _, o := range m.report.Outcomes {
		b.WriteString(barLine(o.Date+" "+iconSuccess, o.Successful, outMax, styleSuccess))
		b.WriteString(barLine(o.Date+" "+iconError, o.Failed, outMax, styleError))
	}
	return strings.TrimRight(b.String(), "\n")
}

func barLine(label string, n, maxN int, style lipgloss.Style) string {
	width := 0
	if maxN > 0 {
		width = n * barWidth / maxN
	}
	if n > 0 && width == 0 {
		width = 1
	}
	return fmt.Sprintf("  %-24s %s %d\n", truncate(label, 24), style.Render(strings.Repeat("█", width)), n)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// performanceView recomputes today's count at render time.
func (m Model) performanceView() string {
	p := stats.Measure(m.events, m.report.Summary, m.now())
	rows := []struct{ label, value string }{
		{"Average transfer size", stats.FormatFileSize(p.AverageSize)},
		{"Largest transfer", stats.FormatBytes(p.LargestTransfer)},
		{"Transfers today", fmt.Sprintf("%d", p.TodayCount)},
		{"Unique devices", fmt.Sprintf("%d", m.report.Summary.UniqueDevices)},
	}

	var b strings.Builder
	b.WriteString(styleBold.Render("Transfer performance"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-24s %s\n", styleMuted.Render(r.label), r.value))
	}
	return strings.TrimRight(b.String(), "\n")
}
