package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorSubtle   lipgloss.Color = "#7f849c"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorWarm     lipgloss.Color = "#f9e2af"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
)

var (
	brandStyle = lipgloss.NewStyle().Foreground(colorWarm).Bold(true)
	navStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	titleStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(colorWarm)
	bodyStyle     = lipgloss.NewStyle().Foreground(colorMuted)

	primaryButton = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorText).
			Padding(0, 2)
	ghostButton = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	dotActive   = lipgloss.NewStyle().Foreground(colorText)
	dotInactive = lipgloss.NewStyle().Foreground(colorSubtle)

	footerStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)

	menuItemStyle     = lipgloss.NewStyle().Foreground(colorText)
	menuActiveStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	menuDescStyle     = lipgloss.NewStyle().Foreground(colorSubtle)
	modalHeaderStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	fieldFocusStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	fieldErrorStyle   = lipgloss.NewStyle().Foreground(colorError)
	summaryKeyStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	successTitleStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
)
