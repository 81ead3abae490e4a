package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded box with its title set into the top border.
type Pane struct {
	Title   string
	Content string
	// Accent colours the border; empty uses the muted border colour.
	Accent lipgloss.Color
}

// Render draws the pane width columns wide and as tall as its content.
func (p Pane) Render(width int) string {
	if width < 6 {
		width = 6
	}
	border := lipgloss.Color("#6c7086")
	if p.Accent != "" {
		border = p.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		titleText = " " + ansi.Truncate(t, max(1, innerWidth-3), "…") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	rows := []string{top}
	for _, line := range wrapLines(p.Content, contentWidth) {
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func wrapLines(s string, width int) []string {
	if strings.TrimSpace(s) == "" {
		return []string{""}
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, strings.Split(ansi.Wordwrap(line, width, ""), "\n")...)
	}
	return out
}
