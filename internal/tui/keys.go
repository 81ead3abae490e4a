package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Pick key.Binding
	Info key.Binding
	Book key.Binding
	Menu key.Binding
	Jump key.Binding
	Quit key.Binding

	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Close    key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Adjust    key.Binding
}

// newKeyMap binds digits 1..count to direct destination selection.
func newKeyMap(count int) keyMap {
	digits := make([]string, 0, min(count, 9))
	for i := 1; i <= count && i <= 9; i++ {
		digits = append(digits, strconv.Itoa(i))
	}
	pickHelp := "1"
	if len(digits) > 1 {
		pickHelp = "1-" + digits[len(digits)-1]
	}
	return keyMap{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Pick: key.NewBinding(key.WithKeys(digits...), key.WithHelp(pickHelp, "go to")),
		Info: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "details")),
		Book: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book")),
		Menu: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Jump: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "request booking")),
		Adjust:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "guests")),
	}
}

func (k keyMap) carouselHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pick, k.Info, k.Book, k.Menu, k.Jump, k.Quit}
}

func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Close}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Adjust, k.Submit, k.Close}
}

func (k keyMap) submittingHelp() []key.Binding {
	return []key.Binding{k.Close, k.Prev, k.Next, k.Menu, k.Quit}
}

// pickIndex maps a digit key to a zero-based destination index.
func pickIndex(msg tea.KeyMsg) (int, bool) {
	n, err := strconv.Atoi(msg.String())
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
