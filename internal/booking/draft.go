package booking

import (
	"errors"
	"fmt"
	"strconv"
)

// Form field names accepted by UpdateField.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldGuests = "guests"
	FieldDate   = "date"
)

// Fields lists the draft fields in form order.
var Fields = []string{FieldName, FieldEmail, FieldGuests, FieldDate}

const (
	DefaultGuests = 2
	MaxGuests     = 8
	// DateLayout is the wire shape of Draft.Date.
	DateLayout = "2006-01-02"
)

var ErrUnknownField = errors.New("unknown booking field")

// Draft is the editable form data for one modal session. All values are kept as
// entered; Guests is an integer rendered as a string.
type Draft struct {
	Name   string `form:"name"`
	Email  string `form:"email"`
	Guests string `form:"guests"`
	Date   string `form:"date"`
}

// NewDraft returns the empty draft with the given guest count preselected.
func NewDraft(guests int) Draft {
	return Draft{Guests: strconv.Itoa(guests)}
}

// Get returns the value of a named field.
func (d Draft) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return d.Name, nil
	case FieldEmail:
		return d.Email, nil
	case FieldGuests:
		return d.Guests, nil
	case FieldDate:
		return d.Date, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func (d *Draft) set(field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldGuests:
		d.Guests = value
	case FieldDate:
		d.Date = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// GuestCount parses Guests, returning 0 when it is not a number.
func (d Draft) GuestCount() int {
	n, err := strconv.Atoi(d.Guests)
	if err != nil {
		return 0
	}
	return n
}
