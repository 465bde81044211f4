package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"twinpage/internal/processor"
)

var (
	ColorInk       = lipgloss.Color("#E5E9F0")
	ColorDim       = lipgloss.Color("#7A8291")
	ColorAccent    = lipgloss.Color("#88C0D0")
	ColorAccentAlt = lipgloss.Color("#81A1C1")
	ColorSuccess   = lipgloss.Color("#A3BE8C")
	ColorWarn      = lipgloss.Color("#EBCB8B")
)

type SummaryRow struct {
	Label string
	Value string
}

// SummaryRows describes a run. Groups and Copied rows appear only when set.
func SummaryRows(s processor.Summary) []SummaryRow {
	rows := []SummaryRow{
		{Label: "Files examined", Value: fmt.Sprintf("%d", s.Total)},
		{Label: "Pages fingerprinted", Value: fmt.Sprintf("%d", s.Fingerprinted)},
		{Label: "Failed to render", Value: fmt.Sprintf("%d", s.Errors)},
	}
	if s.Groups > 0 {
		rows = append(rows, SummaryRow{Label: "Groups", Value: fmt.Sprintf("%d", s.Groups)})
	}
	if s.Copied > 0 {
		rows = append(rows, SummaryRow{Label: "Distinct files copied", Value: fmt.Sprintf("%d", s.Copied)})
	}
	return rows
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row.Label))
		valueWidth = max(valueWidth, len(row.Value))
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}
	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		lines = append(lines, fmt.Sprintf("%s | %s", labelStyle.Render(label), summaryValueStyle.Render(value)))
	}
	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var summaryValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
