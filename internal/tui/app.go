package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/wildroam/internal/booking"
	"github.com/jask/wildroam/internal/config"
	"github.com/jask/wildroam/internal/selection"
)

// App routes terminal events to the selection and booking coordinators and
// renders their state.
type App struct {
	ctx       context.Context
	cfg       config.Config
	log       zerolog.Logger
	sel       *selection.Coordinator
	form      *booking.Form
	submitter booking.Submitter
	now       func() time.Time
	keys      keyMap

	width      int
	height     int
	status     string
	statusErr  bool
	menuCursor int
	modal      bookingModal
	jump       jumpPrompt

	unsubscribe func()
}

type Deps struct {
	Selection *selection.Coordinator
	Form      *booking.Form
	Submitter booking.Submitter
	Logger    zerolog.Logger
}

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	submitter := deps.Submitter
	if submitter == nil {
		submitter = booking.SimulatedSubmitter{Delay: cfg.Booking.SubmitDelay}
	}
	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		log:       deps.Logger,
		sel:       deps.Selection,
		form:      deps.Form,
		submitter: submitter,
		now:       time.Now,
		keys:      newKeyMap(deps.Selection.Catalog().Len()),
		width:     100,
		height:    32,
		status:    "Ready",
	}
	a.unsubscribe = a.sel.Subscribe(func(transition string, s selection.Snapshot) {
		a.log.Debug().
			Str("transition", transition).
			Int("index", s.Index).
			Str("destination", s.Current.Name).
			Bool("show_info", s.ShowInfo).
			Bool("menu", s.MenuVisible).
			Bool("booking", s.BookingOpen).
			Msg("selection")
	})
	return a
}

func (a *App) Init() tea.Cmd {
	a.log.Info().Int("destinations", a.sel.Catalog().Len()).Msg("ui started")
	return nil
}

// submitDoneMsg is the scheduled continuation of a booking submission.
type submitDoneMsg struct {
	ticket       booking.Ticket
	confirmation booking.Confirmation
	err          error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case submitDoneMsg:
		a.finishSubmission(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}
	if a.jump.active() {
		return a.handleJumpKey(msg)
	}
	if a.sel.BookingOpen() {
		if a.form.State() != booking.Submitting {
			return a.handleFormKey(msg)
		}
		// A pending submission leaves the rest of the UI live.
		if key.Matches(msg, a.keys.Close) {
			a.closeBooking()
			return nil
		}
	}
	if a.sel.MenuVisible() {
		return a.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Prev):
		a.sel.SelectPrevious()
		a.setStatus("Showing " + a.sel.Current().Name)
	case key.Matches(msg, a.keys.Next):
		a.sel.SelectNext()
		a.setStatus("Showing " + a.sel.Current().Name)
	case key.Matches(msg, a.keys.Pick):
		if i, ok := pickIndex(msg); ok {
			if err := a.sel.SelectIndex(i); err != nil {
				a.setError(err)
				return nil
			}
			a.setStatus("Showing " + a.sel.Current().Name)
		}
	case key.Matches(msg, a.keys.Info):
		a.sel.ToggleInfo()
	case key.Matches(msg, a.keys.Menu):
		a.sel.ToggleMenu()
		a.menuCursor = 0
	case key.Matches(msg, a.keys.Book):
		return a.openBooking()
	case key.Matches(msg, a.keys.Jump):
		return a.openJump()
	}
	return nil
}

func (a *App) closeMenu() {
	a.sel.CloseMenu()
}

func (a *App) openBooking() tea.Cmd {
	if a.sel.BookingOpen() {
		return nil
	}
	a.sel.OpenBooking()
	a.form.Open(a.sel.Current())
	a.modal = newBookingModal(a.form, a.form.MinDate(a.now()))
	a.log.Info().
		Str("session", a.form.Session().String()).
		Uint64("generation", a.form.Generation()).
		Str("destination", a.form.Destination().Name).
		Msg("booking opened")
	return a.modal.setFocus(0)
}

// closeBooking handles cancel and backdrop close. Any in-flight submission is
// cancelled and its continuation will be discarded.
func (a *App) closeBooking() {
	session := a.form.Session().String()
	inFlight := a.form.Close()
	a.sel.CloseBooking()
	a.modal = bookingModal{}
	a.log.Info().Str("session", session).Bool("in_flight", inFlight).Msg("booking closed")
	if inFlight {
		a.setStatus("Booking request cancelled")
	}
}

func (a *App) submitBooking() tea.Cmd {
	ticket, err := a.form.Submit(a.now())
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			a.setError(errors.New("please fix the highlighted fields"))
		} else {
			a.setError(err)
		}
		a.log.Debug().Err(err).Msg("booking rejected")
		return nil
	}
	a.log.Info().
		Str("session", ticket.Session.String()).
		Uint64("generation", ticket.Generation).
		Str("reference", ticket.Request.Reference).
		Str("destination", ticket.Request.Destination.Name).
		Msg("booking submitted")
	a.setStatus("Sending booking request…")
	return a.submitCmd(ticket)
}

// submitCmd runs the submitter off the UI goroutine and reports back with a
// submitDoneMsg.
func (a *App) submitCmd(ticket booking.Ticket) tea.Cmd {
	ctx, cancel := context.WithCancel(a.ctx)
	a.form.Track(ticket, cancel)
	submitter := a.submitter
	return func() tea.Msg {
		defer cancel()
		conf, err := submitter.Submit(ctx, ticket.Request)
		return submitDoneMsg{ticket: ticket, confirmation: conf, err: err}
	}
}

func (a *App) finishSubmission(m submitDoneMsg) {
	ev := a.log.With().
		Str("session", m.ticket.Session.String()).
		Uint64("generation", m.ticket.Generation).
		Str("reference", m.ticket.Request.Reference).
		Logger()
	switch a.form.Complete(m.ticket, m.err) {
	case booking.OutcomeConfirmed:
		a.sel.CloseBooking()
		a.modal = bookingModal{}
		ev.Info().Str("destination", m.confirmation.Destination).Msg("booking confirmed")
		req := m.ticket.Request
		a.setStatus("Booking requested for " + req.Destination.Name + " on " + a.displayDate(req.Draft.Date) + " · ref " + m.confirmation.Reference)
	case booking.OutcomeFailed:
		ev.Warn().Err(m.err).Msg("booking failed")
		a.setError(a.form.LastError())
	default:
		ev.Debug().AnErr("result", m.err).Msg("stale booking completion dropped")
	}
}

// displayDate renders a draft date using ui.date_format.
func (a *App) displayDate(s string) string {
	if a.cfg.UI.DateFormat == "" {
		return s
	}
	d, err := time.Parse(booking.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format(a.cfg.UI.DateFormat)
}

func (a *App) quit() tea.Cmd {
	if a.form.State() == booking.Submitting {
		a.form.Close()
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.log.Info().Msg("ui stopped")
	return tea.Quit
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
	a.log.Debug().Err(err).Msg("status error")
}
