package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/wildroam/internal/booking"
)

type formField struct {
	name  string
	label string
}

var formFields = []formField{
	{booking.FieldName, "Full Name"},
	{booking.FieldEmail, "Email"},
	{booking.FieldGuests, "Number of Guests"},
	{booking.FieldDate, "Preferred Date"},
}

// bookingModal holds the widgets for the form. The values themselves live in
// booking.Form; inputs are re-synced into it after every keystroke.
type bookingModal struct {
	inputs map[string]*textinput.Model
	focus  int
}

func newBookingModal(form *booking.Form, minDate string) bookingModal {
	mk := func(placeholder string, limit int) *textinput.Model {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 30
		return &in
	}
	m := bookingModal{inputs: map[string]*textinput.Model{
		booking.FieldName:  mk("John Doe", 120),
		booking.FieldEmail: mk("john@example.com", 254),
		booking.FieldDate:  mk(minDate, len(booking.DateLayout)),
	}}
	d := form.Draft()
	m.inputs[booking.FieldName].SetValue(d.Name)
	m.inputs[booking.FieldEmail].SetValue(d.Email)
	m.inputs[booking.FieldDate].SetValue(d.Date)
	m.setFocus(0)
	return m
}

func (m *bookingModal) focused() string { return formFields[m.focus].name }

func (m *bookingModal) setFocus(i int) tea.Cmd {
	n := len(formFields)
	m.focus = (i%n + n) % n
	var cmd tea.Cmd
	for name, in := range m.inputs {
		if name == m.focused() {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// handleFormKey routes a key while the form is editable.
func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.closeBooking()
		return nil
	case key.Matches(msg, a.keys.Submit):
		return a.submitBooking()
	case key.Matches(msg, a.keys.NextField):
		return a.modal.setFocus(a.modal.focus + 1)
	case key.Matches(msg, a.keys.PrevField):
		return a.modal.setFocus(a.modal.focus - 1)
	}

	field := a.modal.focused()
	if field == booking.FieldGuests {
		a.handleGuestsKey(msg)
		return nil
	}
	in := a.modal.inputs[field]
	updated, cmd := in.Update(msg)
	*in = updated
	if err := a.form.UpdateField(field, in.Value()); err != nil {
		a.setError(err)
	}
	return cmd
}

// handleGuestsKey steps the guest selector or sets it from a digit.
func (a *App) handleGuestsKey(msg tea.KeyMsg) {
	maxGuests := a.form.MaxGuests()
	n := a.form.Draft().GuestCount()
	switch {
	case key.Matches(msg, a.keys.Adjust):
		if msg.String() == "left" {
			n--
		} else {
			n++
		}
	default:
		d, err := strconv.Atoi(msg.String())
		if err != nil {
			return
		}
		n = d
	}
	n = min(max(n, 1), maxGuests)
	if err := a.form.UpdateField(booking.FieldGuests, strconv.Itoa(n)); err != nil {
		a.setError(err)
	}
}

func (a *App) renderBookingModal(now time.Time) string {
	dest := a.form.Destination()
	var b strings.Builder
	b.WriteString(modalHeaderStyle.Render("Book Your Adventure") + "\n")
	b.WriteString(bodyStyle.Render(dest.Name) + "\n\n")

	if a.form.State() == booking.Submitting {
		b.WriteString(successTitleStyle.Render("✓ Booking Requested!") + "\n")
		b.WriteString(bodyStyle.Render("We'll be in touch soon to confirm your adventure.") + "\n")
		return b.String()
	}

	summary := [][2]string{
		{"Destination", dest.Location},
		{"Duration", dest.Duration},
		{"Price per person", dest.Price},
	}
	for _, row := range summary {
		b.WriteString(summaryKeyStyle.Render(fmt.Sprintf("%-18s", row[0])) + row[1] + "\n")
	}
	b.WriteString("\n")

	draft := a.form.Draft()
	for i, f := range formFields {
		label := fieldLabelStyle.Render("  " + f.label)
		if i == a.modal.focus {
			label = fieldFocusStyle.Render("› " + f.label)
		}
		b.WriteString(label + "\n")
		if f.name == booking.FieldGuests {
			b.WriteString("    " + guestLabel(draft.GuestCount(), a.form.MaxGuests()) + "\n")
		} else {
			b.WriteString("    " + a.modal.inputs[f.name].View() + "\n")
		}
		if f.name == booking.FieldDate {
			b.WriteString(summaryKeyStyle.Render("    earliest "+a.form.MinDate(now)) + "\n")
		}
		if msg := a.form.FieldError(f.name); msg != "" {
			b.WriteString(fieldErrorStyle.Render("    "+msg) + "\n")
		}
	}
	b.WriteString("\n")
	if err := a.form.LastError(); err != nil {
		b.WriteString(fieldErrorStyle.Render(err.Error()) + "\n")
		b.WriteString(primaryButton.Render("Retry Booking") + "\n")
	} else {
		b.WriteString(primaryButton.Render("Request Booking") + "\n")
	}
	b.WriteString("\n" + summaryKeyStyle.Render("A travel specialist will contact you within 24 hours"))
	return b.String()
}

func guestLabel(n, maxGuests int) string {
	noun := "Guests"
	if n == 1 {
		noun = "Guest"
	}
	left, right := "‹", "›"
	if n <= 1 {
		left = " "
	}
	if n >= maxGuests {
		right = " "
	}
	return fmt.Sprintf("%s %d %s %s", left, n, noun, right)
}
