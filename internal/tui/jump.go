package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// jumpPrompt is the "find a destination" box. A nil input means it is closed.
type jumpPrompt struct {
	input *textinput.Model
}

func (j jumpPrompt) active() bool { return j.input != nil }

func (a *App) openJump() tea.Cmd {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "tiger, kenya, birds…"
	in.CharLimit = 40
	in.Width = 28
	a.jump = jumpPrompt{input: &in}
	return in.Focus()
}

func (a *App) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.jump = jumpPrompt{}
		return nil
	case msg.Type == tea.KeyEnter:
		query := strings.TrimSpace(a.jump.input.Value())
		a.jump = jumpPrompt{}
		a.jumpTo(query)
		return nil
	}
	updated, cmd := a.jump.input.Update(msg)
	*a.jump.input = updated
	return cmd
}

func (a *App) jumpTo(query string) {
	if query == "" {
		return
	}
	idx, ok := a.sel.Catalog().Closest(query)
	if !ok {
		a.setError(fmt.Errorf("no destination matches %q", query))
		return
	}
	if err := a.sel.SelectIndex(idx); err != nil {
		a.setError(err)
		return
	}
	a.setStatus("Showing " + a.sel.Current().Name)
}

func (a *App) renderJump() string {
	var names []string
	for _, d := range a.sel.Catalog().All() {
		names = append(names, d.Name)
	}
	return modalHeaderStyle.Render("Find a destination") + "\n\n" +
		a.jump.input.View() + "\n\n" +
		summaryKeyStyle.Render(strings.Join(names, " · ")) + "\n" +
		summaryKeyStyle.Render("enter: go  esc: cancel")
}
