// Package booking owns the booking modal's form: the draft being edited, the
// simulated submission, and the session guard that keeps a late completion
// from touching a newer modal session.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/wildroam/internal/catalog"
)

var ErrNotEditing = errors.New("booking form is not accepting edits")

type State int

const (
	Editing State = iota
	Submitting
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Failed:
		return "failed"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Outcome reports what Complete did with a continuation.
type Outcome int

const (
	// OutcomeStale means the ticket belonged to a superseded session.
	OutcomeStale Outcome = iota
	// OutcomeConfirmed means the draft was reset and the modal should close.
	OutcomeConfirmed
	// OutcomeFailed means the form moved to Failed with the draft kept.
	OutcomeFailed
)

// Ticket identifies one in-flight submission.
type Ticket struct {
	Session    uuid.UUID
	Generation uint64
	Request    Request
}

type Options struct {
	DefaultGuests int
	MaxGuests     int
	Location      *time.Location
}

func (o Options) withDefaults() Options {
	if o.DefaultGuests <= 0 {
		o.DefaultGuests = DefaultGuests
	}
	if o.MaxGuests <= 0 {
		o.MaxGuests = MaxGuests
	}
	if o.DefaultGuests > o.MaxGuests {
		o.DefaultGuests = o.MaxGuests
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

type Form struct {
	opts        Options
	draft       Draft
	state       State
	destination catalog.Destination
	session     uuid.UUID
	generation  uint64
	pending     *Ticket
	cancel      context.CancelFunc
	lastErr     error
	fieldErrs   map[string]string
}

func NewForm(opts Options) *Form {
	opts = opts.withDefaults()
	return &Form{opts: opts, draft: NewDraft(opts.DefaultGuests)}
}

// Open starts a new modal session for dest with a fresh draft.
func (f *Form) Open(dest catalog.Destination) {
	f.abandon()
	f.generation++
	f.session = uuid.New()
	f.destination = dest
	f.resetDraft()
}

// Close ends the session. The draft resets immediately and any pending
// submission is cancelled and can no longer complete. It reports whether a
// submission was in flight.
func (f *Form) Close() bool {
	inFlight := f.abandon()
	f.generation++
	f.session = uuid.Nil
	f.resetDraft()
	return inFlight
}

// UpdateField replaces one draft value. Edits clear that field's inline error.
func (f *Form) UpdateField(field, value string) error {
	if f.state == Submitting {
		return ErrNotEditing
	}
	if err := f.draft.set(field, value); err != nil {
		return err
	}
	delete(f.fieldErrs, field)
	return nil
}

// Submit validates the draft and, if it passes, moves to Submitting. From
// Failed it acts as a retry with the preserved draft.
func (f *Form) Submit(now time.Time) (Ticket, error) {
	if f.state == Submitting {
		return Ticket{}, ErrNotEditing
	}
	if err := Validate(f.draft, f.Today(now), f.opts.MaxGuests); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			f.fieldErrs = verr.Fields
		}
		return Ticket{}, err
	}
	if f.session == uuid.Nil {
		f.session = uuid.New()
	}
	f.fieldErrs = nil
	f.lastErr = nil
	f.state = Submitting
	t := Ticket{
		Session:    f.session,
		Generation: f.generation,
		Request: Request{
			Reference:   newReference(),
			Destination: f.destination,
			Draft:       f.draft,
			SubmittedAt: now,
		},
	}
	f.pending = &t
	return t, nil
}

// Track attaches the cancel func for a ticket's work. A stale ticket is
// cancelled straight away.
func (f *Form) Track(t Ticket, cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	if !f.isCurrent(t) {
		cancel()
		return
	}
	f.cancel = cancel
}

// Complete applies the result of a submission. Results for anything other
// than the current in-flight ticket are dropped.
func (f *Form) Complete(t Ticket, err error) Outcome {
	if !f.isCurrent(t) {
		return OutcomeStale
	}
	f.pending = nil
	f.cancel = nil
	if err != nil {
		f.state = Failed
		f.lastErr = fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
		return OutcomeFailed
	}
	f.generation++
	f.session = uuid.Nil
	f.resetDraft()
	return OutcomeConfirmed
}

func (f *Form) isCurrent(t Ticket) bool {
	return f.state == Submitting &&
		f.pending != nil &&
		t.Generation == f.generation &&
		t.Session == f.session &&
		t.Request.Reference == f.pending.Request.Reference
}

func (f *Form) abandon() bool {
	inFlight := f.state == Submitting
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.pending = nil
	return inFlight
}

func (f *Form) resetDraft() {
	f.draft = NewDraft(f.opts.DefaultGuests)
	f.state = Editing
	f.lastErr = nil
	f.fieldErrs = nil
}

func (f *Form) Draft() Draft                     { return f.draft }
func (f *Form) State() State                     { return f.state }
func (f *Form) Session() uuid.UUID               { return f.session }
func (f *Form) Generation() uint64               { return f.generation }
func (f *Form) Destination() catalog.Destination { return f.destination }
func (f *Form) LastError() error                 { return f.lastErr }
func (f *Form) MaxGuests() int                   { return f.opts.MaxGuests }

// FieldError returns the inline message for a field, if any.
func (f *Form) FieldError(field string) string {
	return f.fieldErrs[field]
}

// Today is the first bookable day in the form's clock.
func (f *Form) Today(now time.Time) time.Time {
	y, m, d := now.In(f.opts.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, f.opts.Location)
}

// MinDate is Today formatted for the date field.
func (f *Form) MinDate(now time.Time) string {
	return f.Today(now).Format(DateLayout)
}

func newReference() string {
	return "WR-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
