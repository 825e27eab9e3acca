package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray     = "#353b52"
	colorWhite    = "#ffffff"
	colorGreen    = "#acfab4"
	colorGreenDim = "#b4c4b4"
	colorRed      = "#e61f44"
	colorRedDim   = "#d06178"
	colorPurple   = "#b9a3eb"
	colorBlue     = "#89ddff"

	marqueeTickDuration = time.Second / 20

	bordersAndPaddingWidth = 4
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2).Align(lipgloss.Center)
	subtitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)).
			Background(lipgloss.Color(colorGreen))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	symptomStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPurple))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray))
)

// Status values accepted by TextStatusColorize.
const (
	statusUnknown = iota
	statusGood
	statusBad
)

// TextStatusColorize renders text green for statusGood, red for statusBad
// and gray otherwise.
func TextStatusColorize(text string, status int) string {
	switch status {
	case statusGood:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreenDim)).Render(text)
	case statusBad:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorRedDim)).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Render(text)
	}
}

// scoreStatus maps a 0..100 health score onto a display status.
func scoreStatus(score int) int {
	switch {
	case score >= 70:
		return statusGood
	case score < 40:
		return statusBad
	default:
		return statusUnknown
	}
}

// label renders "name: value" with the panel colors.
func label(name, value string) string {
	return labelStyle.Render(name+": ") + valueStyle.Render(value)
}

// marqueeText scrolls text that does not fit into availableWidth.
func (m model) marqueeText(text string, availableWidth int) string {
	if len(text) <= availableWidth {
		return text
	}
	paddedText := text + "    " + text
	offset := m.marqueeOffset % (len(text) + bordersAndPaddingWidth)
	if offset+availableWidth <= len(paddedText) {
		text = paddedText[offset : offset+availableWidth]
	}
	return text
}

// truncate shortens text to width, marking the cut with two dots.
func truncate(text string, width int) string {
	if len(text) <= width {
		return text
	}
	if width <= 3 {
		return text[:max(width, 0)]
	}
	return strings.TrimRight(text[:width-2], " ") + ".."
}

// columnWidths splits the terminal between the overview, entries and detail
// columns, widening whichever column has focus.
func (m model) columnWidths() (int, int, int) {
	var leftWidth, middleWidth int
	switch m.columnFocus {
	case focusOverview:
		leftWidth = (m.width * 30) / 100
		middleWidth = (m.width * 35) / 100
	case focusEntries:
		leftWidth = (m.width * 20) / 100
		middleWidth = (m.width * 40) / 100
	default:
		leftWidth = (m.width * 20) / 100
		middleWidth = (m.width * 25) / 100
	}
	return leftWidth, middleWidth, m.width - leftWidth - middleWidth
}
