package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	icon        string
	label       string
	description string
}

var menuItems = []menuItem{
	{"⌂", "Home", "Return to main page"},
	{"◎", "Destinations", "Explore all locations"},
	{"▦", "My Bookings", "View your trips"},
	{"★", "Reviews", "Read traveler stories"},
	{"ⓘ", "About Us", "Our mission"},
	{"☏", "Contact", "Get in touch"},
}

const menuDestinations = "Destinations"

func (a *App) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Close), key.Matches(msg, a.keys.Menu):
		a.closeMenu()
	case key.Matches(msg, a.keys.Up):
		a.menuCursor = (a.menuCursor - 1 + len(menuItems)) % len(menuItems)
	case key.Matches(msg, a.keys.Down):
		a.menuCursor = (a.menuCursor + 1) % len(menuItems)
	case key.Matches(msg, a.keys.Activate):
		return a.activateMenuItem(menuItems[a.menuCursor])
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	}
	return nil
}

// activateMenuItem closes the menu; Destinations also opens the finder.
func (a *App) activateMenuItem(item menuItem) tea.Cmd {
	a.closeMenu()
	a.log.Debug().Str("item", item.label).Msg("menu item")
	if item.label == menuDestinations {
		return a.openJump()
	}
	a.setStatus(item.label)
	return nil
}

func (a *App) renderMenu() string {
	var b strings.Builder
	b.WriteString(brandStyle.Render("Menu") + "\n\n")
	for i, item := range menuItems {
		style, prefix := menuItemStyle, "  "
		if i == a.menuCursor {
			style, prefix = menuActiveStyle, "› "
		}
		b.WriteString(style.Render(prefix+item.icon+" "+item.label) + "\n")
		b.WriteString(menuDescStyle.Render("    "+item.description) + "\n")
	}
	b.WriteString("\n" + primaryButton.Render("Speak to an Expert"))
	return b.String()
}
