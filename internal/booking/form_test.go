package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/wildroam/internal/catalog"
)

var testNow = time.Date(2025, 5, 20, 15, 4, 0, 0, time.UTC)

func newForm(t *testing.T) (*Form, catalog.Destination) {
	t.Helper()
	dest := catalog.MustDefault().At(0)
	f := NewForm(Options{Location: time.UTC})
	f.Open(dest)
	return f, dest
}

func fillJane(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.UpdateField(FieldName, "Jane"))
	require.NoError(t, f.UpdateField(FieldEmail, "jane@x.com"))
	require.NoError(t, f.UpdateField(FieldGuests, "3"))
	require.NoError(t, f.UpdateField(FieldDate, "2025-06-01"))
}

func defaultDraft() Draft {
	return Draft{Name: "", Email: "", Guests: "2", Date: ""}
}

func TestNewFormDefaults(t *testing.T) {
	t.Parallel()

	f := NewForm(Options{})
	require.Equal(t, defaultDraft(), f.Draft())
	require.Equal(t, Editing, f.State())
	require.Equal(t, MaxGuests, f.MaxGuests())

	clamped := NewForm(Options{DefaultGuests: 12, MaxGuests: 4})
	require.Equal(t, "4", clamped.Draft().Guests)
}

func TestUpdateField(t *testing.T) {
	t.Parallel()

	f, _ := newForm(t)
	fillJane(t, f)
	require.Equal(t, Draft{Name: "Jane", Email: "jane@x.com", Guests: "3", Date: "2025-06-01"}, f.Draft())

	err := f.UpdateField("phone", "555")
	require.ErrorIs(t, err, ErrUnknownField)

	v, err := f.Draft().Get(FieldGuests)
	require.NoError(t, err)
	require.Equal(t, "3", v)
	require.Equal(t, 3, f.Draft().GuestCount())
}

func TestSubmitThenCompleteResetsDraft(t *testing.T) {
	t.Parallel()

	f, dest := newForm(t)
	fillJane(t, f)
	genBefore := f.Generation()

	ticket, err := f.Submit(testNow)
	require.NoError(t, err)
	require.Equal(t, Submitting, f.State())
	require.Equal(t, dest.ID, ticket.Request.Destination.ID)
	require.Equal(t, "Jane", ticket.Request.Draft.Name)
	require.Regexp(t, `^WR-[0-9A-F]{8}$`, ticket.Request.Reference)
	require.Equal(t, genBefore, ticket.Generation)

	require.ErrorIs(t, f.UpdateField(FieldName, "Other"), ErrNotEditing)
	_, err = f.Submit(testNow)
	require.ErrorIs(t, err, ErrNotEditing)

	require.Equal(t, OutcomeConfirmed, f.Complete(ticket, nil))
	require.Equal(t, Editing, f.State())
	require.Equal(t, defaultDraft(), f.Draft())

	// A second delivery of the same continuation is harmless.
	require.Equal(t, OutcomeStale, f.Complete(ticket, nil))
}

func TestCloseWhileEditingResetsImmediately(t *testing.T) {
	t.Parallel()

	f, _ := newForm(t)
	fillJane(t, f)
	require.False(t, f.Close())
	require.Equal(t, defaultDraft(), f.Draft())
	require.Equal(t, Editing, f.State())
	require.Equal(t, uuid.Nil, f.Session())
}

func TestStaleCompletionDoesNotTouchNewSession(t *testing.T) {
	t.Parallel()

	f, dest := newForm(t)
	fillJane(t, f)
	old, err := f.Submit(testNow)
	require.NoError(t, err)

	cancelled := false
	f.Track(old, func() { cancelled = true })

	require.True(t, f.Close())
	require.True(t, cancelled)

	f.Open(dest)
	require.NotEqual(t, old.Session, f.Session())
	require.NoError(t, f.UpdateField(FieldName, "Sam"))
	require.NoError(t, f.UpdateField(FieldEmail, "sam@y.org"))

	require.Equal(t, OutcomeStale, f.Complete(old, nil))
	require.Equal(t, OutcomeStale, f.Complete(old, context.Canceled))
	require.Equal(t, "Sam", f.Draft().Name)
	require.Equal(t, "sam@y.org", f.Draft().Email)
	require.Equal(t, Editing, f.State())
}

func TestStaleCompletionWhileNewSessionSubmitting(t *testing.T) {
	t.Parallel()

	f, _ := newForm(t)
	fillJane(t, f)
	old, err := f.Submit(testNow)
	require.NoError(t, err)
	f.Close()

	other := catalog.MustDefault().At(2)
	f.Open(other)
	fillJane(t, f)
	current, err := f.Submit(testNow)
	require.NoError(t, err)

	require.Equal(t, OutcomeStale, f.Complete(old, nil))
	require.Equal(t, Submitting, f.State())
	require.Equal(t, OutcomeConfirmed, f.Complete(current, nil))
	require.Equal(t, other.ID, current.Request.Destination.ID)
}

func TestTrackStaleTicketCancelsAtOnce(t *testing.T) {
	t.Parallel()

	f, _ := newForm(t)
	fillJane(t, f)
	ticket, err := f.Submit(testNow)
	require.NoError(t, err)
	f.Close()

	cancelled := false
	f.Track(ticket, func() { cancelled = true })
	require.True(t, cancelled)
}

func TestFailedSubmissionKeepsDraftAndAllowsRetry(t *testing.T) {
	t.Parallel()

	f, _ := newForm(t)
	fillJane(t, f)
	ticket, err := f.Submit(testNow)
	require.NoError(t, err)

	boom := errors.New("connection refused")
	require.Equal(t, OutcomeFailed, f.Complete(ticket, boom))
	require.Equal(t, Failed, f.State())
	require.ErrorIs(t, f.LastError(), ErrSubmissionFailed)
	require.ErrorIs(t, f.LastError(), boom)
	require.Equal(t, "Jane", f.Draft().Name)

	require.NoError(t, f.UpdateField(FieldGuests, "4"))
	retry, err := f.Submit(testNow)
	require.NoError(t, err)
	require.Nil(t, f.LastError())
	require.Equal(t, "4", retry.Request.Draft.Guests)
	require.NotEqual(t, ticket.Request.Reference, retry.Request.Reference)

	require.Equal(t, OutcomeStale, f.Complete(ticket, nil))
	require.Equal(t, OutcomeConfirmed, f.Complete(retry, nil))
}

func TestSubmitRejectsInvalidDraft(t *testing.T) {
	t.Parallel()

	f, _ := newForm(t)
	require.NoError(t, f.UpdateField(FieldEmail, "not-an-email"))

	_, err := f.Submit(testNow)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, Editing, f.State())
	require.Equal(t, "This field is required", f.FieldError(FieldName))
	require.Equal(t, "Invalid email format", f.FieldError(FieldEmail))
	require.Equal(t, "This field is required", f.FieldError(FieldDate))
	require.Empty(t, f.FieldError(FieldGuests))

	require.NoError(t, f.UpdateField(FieldName, "Jane"))
	require.Empty(t, f.FieldError(FieldName))
	require.Equal(t, "not-an-email", f.Draft().Email)
}

func TestMinDateUsesFormClock(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+10", 10*60*60)
	f := NewForm(Options{Location: loc})
	late := time.Date(2025, 5, 20, 20, 0, 0, 0, time.UTC)
	require.Equal(t, "2025-05-21", f.MinDate(late))
	require.Equal(t, "2025-05-20", NewForm(Options{Location: time.UTC}).MinDate(late))
}

func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "editing", Editing.String())
	require.Equal(t, "submitting", Submitting.String())
	require.Equal(t, "failed", Failed.String())
	require.Equal(t, "state(9)", State(9).String())
}
