package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"twinpage/internal/grouping"
)

// RenderGroups lists every group with more than one member. Numbering counts
// all groups, so singletons leave gaps.
func RenderGroups(groups []grouping.Group) string {
	var lines []string
	for i, g := range groups {
		if len(g) < 2 {
			continue
		}
		header := fmt.Sprintf("Group %d (%d):", i+1, len(g))
		lines = append(lines, GroupStyle.Render(header)+" "+ValueStyle.Render("["+strings.Join(g, ", ")+"]"))
	}
	if len(lines) == 0 {
		return DimStyle.Render("no duplicate groups")
	}
	return strings.Join(lines, "\n")
}

// RenderList renders names as an indented bullet list under title.
func RenderList(title string, names []string) string {
	lines := []string{GroupStyle.Render(title)}
	if len(names) == 0 {
		lines = append(lines, "  "+BulletStyle.Render("-")+" "+DimStyle.Render("none"))
	}
	for _, name := range names {
		lines = append(lines, "  "+BulletStyle.Render("-")+" "+ValueStyle.Render(name))
	}
	return strings.Join(lines, "\n")
}

var (
	FileStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	GroupStyle  = lipgloss.NewStyle().Foreground(ColorAccentAlt)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorInk)
	DimStyle    = lipgloss.NewStyle().Foreground(ColorDim)
	BulletStyle = lipgloss.NewStyle().Foreground(ColorDim)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	OKStyle     = lipgloss.NewStyle().Foreground(ColorSuccess)
)
