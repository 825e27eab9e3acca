package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gupta19esha/HealthScribeGPT/pkg/extract"
	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/report"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	focusOverview = iota
	focusEntries
	focusDetails
)

var periods = []report.Period{report.PeriodWeek, report.PeriodMonth, report.PeriodQuarter}

// Options configures the dashboard.
type Options struct {
	// DBFile is shown in the status panel.
	DBFile string
	// UseAnalyzer sends new entries to the remote analyzer before falling
	// back to local extraction.
	UseAnalyzer bool
}

type model struct {
	svc  *journal.Service
	opts Options

	entries []health.JournalEntry
	report  report.Report
	water   int
	period  report.Period

	columnFocus int
	width       int
	height      int
	err         error

	quitting bool

	entryCursor int

	creating      bool
	creatingError string
	contentInput  textinput.Model

	// Animation state
	marqueeOffset int
	marqueeTimer  int
}

func initModel(svc *journal.Service, opts Options) model {
	input := textinput.New()
	input.Placeholder = "Slept 7 hours, 30 minute run, feeling good"
	input.CharLimit = 2048

	return model{
		svc:          svc,
		opts:         opts,
		entries:      []health.JournalEntry{},
		period:       report.DefaultPeriod,
		columnFocus:  focusEntries,
		contentInput: input,
	}
}

func tick() tea.Cmd {
	return tea.Tick(marqueeTickDuration, func(t time.Time) tea.Msg {
		return t
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		loadEntries(m.svc),
		loadReport(m.svc, m.period),
		loadWater(m.svc),
		tick(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case error:
		if m.creating {
			m.creatingError = msg.Error()
			return m, nil
		}
		m.err = msg
		return m, nil

	case entriesMsg:
		m.entries = msg
		if m.entryCursor >= len(m.entries) {
			m.entryCursor = max(len(m.entries)-1, 0)
		}
		return m, nil

	case reportMsg:
		m.report = report.Report(msg)
		return m, nil

	case waterMsg:
		m.water = int(msg)
		return m, nil

	case entryCreatedMsg:
		m.creating = false
		m.creatingError = ""
		m.contentInput.Reset()
		m.contentInput.Blur()
		m.entryCursor = 0
		m.columnFocus = focusDetails
		return m, tea.Batch(loadEntries(m.svc), loadReport(m.svc, m.period))

	case tea.KeyMsg:
		if m.creating {
			return m.updateCreating(msg)
		}
		return m.updateNavigation(msg)

	case time.Time:
		m.marqueeTimer++
		if m.marqueeTimer >= 10 {
			m.marqueeTimer = 0
			m.marqueeOffset++
		}
		return m, tick()
	}

	return m, nil
}

func (m model) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creating = false
		m.creatingError = ""
		m.contentInput.Blur()
		return m, nil
	case "enter":
		content := strings.TrimSpace(m.contentInput.Value())
		if content == "" {
			m.creatingError = "Entry cannot be empty."
			return m, nil
		}
		return m, createEntry(m.svc, content, m.opts.UseAnalyzer)
	}

	var cmd tea.Cmd
	m.contentInput, cmd = m.contentInput.Update(msg)
	return m, cmd
}

func (m model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.ExitAltScreen, tea.Quit)

	case "up", "k":
		if m.columnFocus != focusOverview && m.entryCursor > 0 {
			m.entryCursor--
		}

	case "down", "j":
		if m.columnFocus != focusOverview && m.entryCursor < len(m.entries)-1 {
			m.entryCursor++
		}

	case "right", "l":
		if m.columnFocus < focusDetails && (m.columnFocus == focusOverview || len(m.entries) > 0) {
			m.columnFocus++
		}

	case "left", "h":
		if m.columnFocus > focusOverview {
			m.columnFocus--
		}

	case "n":
		m.creating = true
		m.creatingError = ""
		m.contentInput.Reset()
		return m, m.contentInput.Focus()

	case "p":
		m.period = nextPeriod(m.period)
		return m, loadReport(m.svc, m.period)

	case "+", "w":
		return m, adjustWater(m.svc, journal.WaterStep)

	case "-":
		return m, adjustWater(m.svc, -journal.WaterStep)

	case "r":
		return m, tea.Batch(loadEntries(m.svc), loadReport(m.svc, m.period), loadWater(m.svc))
	}
	return m, nil
}

func nextPeriod(p report.Period) report.Period {
	for i, candidate := range periods {
		if candidate == p {
			return periods[(i+1)%len(periods)]
		}
	}
	return report.DefaultPeriod
}

func (m model) selectedEntry() (health.JournalEntry, bool) {
	if m.entryCursor < 0 || m.entryCursor >= len(m.entries) {
		return health.JournalEntry{}, false
	}
	return m.entries[m.entryCursor], true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m model) View() string {
	if m.quitting {
		return "Journal saved. Take care.\n"
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	titleBar := titleStyle.Width(m.width).Render("HealthScribe - AI health journal")

	leftWidth, middleWidth, rightWidth := m.columnWidths()
	m.contentInput.Width = rightWidth - bordersAndPaddingWidth*2
	panelHeight := m.height - 3

	leftPanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(0, 2).
		Width(leftWidth).Height(panelHeight).
		Render(m.overviewView(leftWidth))

	middlePanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(0, 2).
		Width(middleWidth).Height(panelHeight).
		Render(m.entriesView(middleWidth))

	rightPanel := lipgloss.NewStyle().Padding(0, 2).
		Width(rightWidth).Height(panelHeight).
		Render(m.detailsView(rightWidth))

	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, middlePanel, rightPanel)

	footerText := "\n↑/↓ navigate • ←/→ switch column • n new entry • p period • +/- water • r reload • q quit"
	footerBar := footerStyle.Width(m.width).Render(footerText)

	return titleBar + "\n\n" + columns + footerBar
}

func (m model) overviewView(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render("  Overview"))
	b.WriteString("\n\n")

	r := m.report
	b.WriteString(label("Period", string(m.period)) + "\n")
	b.WriteString(labelStyle.Render("Health score: ") +
		TextStatusColorize(strconv.Itoa(r.HealthScore), scoreStatus(r.HealthScore)) + "\n\n")
	b.WriteString(label("Entries", strconv.Itoa(r.Overview.TotalEntries)) + "\n")
	b.WriteString(label("Goals done", strconv.Itoa(r.Overview.CompletedGoals)) + "\n")
	b.WriteString(label("Active habits", strconv.Itoa(r.Overview.ActiveHabits)) + "\n")
	b.WriteString(label("Avg calories", strconv.Itoa(r.Overview.AvgCalories)) + "\n\n")

	b.WriteString(label("Avg sleep", formatNumber(r.SleepAnalysis.Average)+"h") + "\n")
	b.WriteString(label("Sleep consistency", strconv.Itoa(r.SleepAnalysis.Consistency)+"%") + "\n")
	b.WriteString(label("Weekly exercise", strconv.Itoa(r.ExerciseAnalysis.WeeklyAverage)+" min") + "\n")
	b.WriteString(label("Most active", r.ExerciseAnalysis.MostActiveDay) + "\n\n")

	b.WriteString(label("Water", fmt.Sprintf("%d ml", m.water)) + "\n\n")

	dbStatus := statusBad
	if m.opts.DBFile != "" {
		dbStatus = statusGood
	}
	analyzerStatus := statusUnknown
	if m.opts.UseAnalyzer {
		analyzerStatus = statusGood
	}
	b.WriteString(labelStyle.Render("Database: ") + TextStatusColorize(m.opts.DBFile, dbStatus) + "\n")
	b.WriteString(labelStyle.Render("Analyzer: ") +
		TextStatusColorize(strconv.FormatBool(m.opts.UseAnalyzer), analyzerStatus) + "\n")
	return b.String()
}

func (m model) entriesView(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render("  Entries"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString("No entries yet. Press 'n' to write one.\n")
		return b.String()
	}

	for i, entry := range m.entries {
		pointer := "  "
		itemStyle := inactiveStyle
		availableWidth := width - len(pointer) - bordersAndPaddingWidth - 1

		text := entryLine(entry)
		if i == m.entryCursor && m.columnFocus != focusOverview {
			if m.columnFocus == focusEntries {
				pointer = "> "
			}
			itemStyle = selectedStyle
			text = m.marqueeText(text, availableWidth)
		} else {
			text = truncate(text, availableWidth)
		}
		text = lipgloss.NewStyle().MaxWidth(availableWidth).Render(text)
		b.WriteString(pointer + itemStyle.Render(text) + "\n")
	}
	return b.String()
}

// entryLine is the one-line summary shown in the entries column.
func entryLine(e health.JournalEntry) string {
	date := e.Date
	if t, ok := e.Time(); ok {
		date = t.Local().Format("Jan 2 15:04")
	}
	return date + "  " + strings.Join(strings.Fields(e.Content), " ")
}

func (m model) detailsView(width int) string {
	var b strings.Builder

	subtitle := "Entry"
	if m.creating {
		subtitle = "New Entry"
	}
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render(subtitle))
	b.WriteString("\n\n")

	if m.creating {
		b.WriteString(m.contentInput.View() + "\n\n")
		b.WriteString("(enter to save, esc to cancel)")
		if m.creatingError != "" {
			b.WriteString("\n\n" + errorStyle.Render(m.creatingError) + "\n")
		}
		return b.String()
	}

	entry, ok := m.selectedEntry()
	if !ok {
		b.WriteString("Select an entry to view details.")
		return b.String()
	}

	metrics := entry.MetricsOrDefault()
	b.WriteString(label("Sleep", formatNumber(metrics.Sleep)+" hours") + "\n")
	b.WriteString(label("Exercise", formatNumber(metrics.Exercise)+" minutes") + "\n")
	b.WriteString(label("Mood", string(metrics.Mood)) + "\n")
	b.WriteString(label("Energy", string(metrics.Energy)) + "\n")

	symptoms := "-"
	if len(metrics.Symptoms) > 0 {
		symptoms = strings.Join(metrics.Symptoms, ", ")
	}
	b.WriteString(labelStyle.Render("Symptoms: ") + symptomStyle.Render(symptoms) + "\n\n")

	b.WriteString(valueStyle.Render(entry.Content) + "\n\n")

	b.WriteString(subtitleStyle.Render("Insights") + "\n")
	for _, line := range extract.Insights(metrics) {
		b.WriteString("• " + line + "\n")
	}
	b.WriteString("\n" + subtitleStyle.Render("Suggestions") + "\n")
	for _, line := range extract.Suggestions(metrics) {
		b.WriteString("• " + line + "\n")
	}
	return b.String()
}

// ShowTUI runs the dashboard until the user quits.
func ShowTUI(svc *journal.Service, opts Options) error {
	p := tea.NewProgram(initModel(svc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
