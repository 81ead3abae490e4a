package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/wildroam/internal/booking"
	"github.com/jask/wildroam/internal/catalog"
	"github.com/jask/wildroam/internal/widgets"
)

const (
	drawerWidth  = 34
	contentWidth = 72
)

func (a *App) View() string {
	width, height := max(a.width, 40), max(a.height, 12)
	cur := a.sel.Current()

	top := a.renderNavbar(width)
	bottom := lipgloss.JoinVertical(lipgloss.Left,
		a.renderFooter(cur, width),
		a.renderStatus(width),
		a.renderHelp(width),
	)
	middleHeight := max(1, height-lipgloss.Height(top)-lipgloss.Height(bottom))
	middle := lipgloss.Place(width, middleHeight, lipgloss.Center, lipgloss.Center, a.renderHero(cur, width))
	screen := lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)

	if a.sel.MenuVisible() {
		screen = widgets.RenderDrawer(screen, a.renderMenu(), drawerWidth, width, height)
	}
	if a.sel.BookingOpen() {
		screen = widgets.RenderPopup(screen, a.renderBookingModal(a.now()), width, height)
	}
	if a.jump.active() {
		screen = widgets.RenderPopup(screen, a.renderJump(), width, height)
	}
	return screen
}

func (a *App) renderNavbar(width int) string {
	left := brandStyle.Render("◆ WildRoam")
	right := navStyle.Render("‹ prev   next ›   ☰ menu")
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return " " + left + strings.Repeat(" ", gap) + right + " "
}

func (a *App) renderHero(d catalog.Destination, width int) string {
	w := min(contentWidth, width-4)
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)

	learn := "Learn More"
	if a.sel.ShowInfo() {
		learn = "Hide Details"
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		primaryButton.Render("Book Adventure"), "  ", ghostButton.Render(learn))

	parts := []string{
		center.Render(titleStyle.Render(strings.ToUpper(d.Name))),
		center.Render(locationStyle.Render(d.Location)),
		"",
		center.Render(bodyStyle.Render(ansi.Wordwrap(d.Description, w, ""))),
		"",
		center.Render(buttons),
	}
	if a.sel.ShowInfo() {
		parts = append(parts, "", center.Render(renderDetails(d, min(w, 56))))
	}
	parts = append(parts, "", center.Render(a.renderDots()))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func renderDetails(d catalog.Destination, width int) string {
	var b strings.Builder
	for _, h := range d.Highlights {
		b.WriteString("✓ " + h + "\n")
	}
	b.WriteString("\n")
	b.WriteString(summaryKeyStyle.Render("Duration        ") + d.Duration + "\n")
	b.WriteString(summaryKeyStyle.Render("Starting Price  ") + d.Price)
	return widgets.Pane{Title: "Experience Highlights", Content: b.String(), Accent: colorBorder}.Render(width)
}

func (a *App) renderDots() string {
	n := a.sel.Catalog().Len()
	dots := make([]string, n)
	for i := 0; i < n; i++ {
		if i == a.sel.Index() {
			dots[i] = dotActive.Render("━━━")
		} else {
			dots[i] = dotInactive.Render("•")
		}
	}
	return strings.Join(dots, " ")
}

func (a *App) renderFooter(d catalog.Destination, width int) string {
	line := "  ⌖ " + d.Location + "    ◷ " + d.Duration + "    $ From " + d.Price
	return footerStyle.Width(width).Render(ansi.Truncate(line, width, "…"))
}

func (a *App) renderStatus(width int) string {
	style := statusBarStyle
	if a.statusErr {
		style = statusErrBarStyle
	}
	return style.Width(width).Render(ansi.Truncate(" "+a.status, width, "…"))
}

func (a *App) renderHelp(width int) string {
	parts := make([]string, 0, 8)
	for _, b := range a.activeBindings() {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return ansi.Truncate(" "+strings.Join(parts, "  "), width, "…")
}

func (a *App) activeBindings() []key.Binding {
	switch {
	case a.jump.active():
		return []key.Binding{a.keys.Activate, a.keys.Close}
	case a.sel.BookingOpen() && a.form.State() == booking.Submitting:
		return a.keys.submittingHelp()
	case a.sel.BookingOpen():
		return a.keys.formHelp()
	case a.sel.MenuVisible():
		return a.keys.menuHelp()
	}
	return a.keys.carouselHelp()
}
