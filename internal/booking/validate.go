package booking

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report form field names rather than Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(checkSubmission, submission{})
}

// submission is the shape handed to the validator. Today and MaxGuests carry
// the runtime bounds the struct-level check needs.
type submission struct {
	Name      string    `form:"name" validate:"required,max=120"`
	Email     string    `form:"email" validate:"required,email"`
	Guests    string    `form:"guests" validate:"required,number"`
	Date      string    `form:"date" validate:"required,datetime=2006-01-02"`
	Today     time.Time `form:"-" validate:"-"`
	MaxGuests int       `form:"-" validate:"-"`
}

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid booking: " + strings.Join(parts, "; ")
}

// Validate checks a draft against the form rules. today is the first bookable
// day, compared at date granularity.
func Validate(d Draft, today time.Time, maxGuests int) error {
	s := submission{
		Name:      strings.TrimSpace(d.Name),
		Email:     strings.TrimSpace(d.Email),
		Guests:    strings.TrimSpace(d.Guests),
		Date:      strings.TrimSpace(d.Date),
		Today:     today,
		MaxGuests: maxGuests,
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

func checkSubmission(sl validator.StructLevel) {
	s := sl.Current().Interface().(submission)

	if n, err := strconv.Atoi(s.Guests); err == nil {
		if n < 1 || (s.MaxGuests > 0 && n > s.MaxGuests) {
			sl.ReportError(s.Guests, "guests", "Guests", "guestrange", strconv.Itoa(s.MaxGuests))
		}
	}

	if d, err := time.Parse(DateLayout, s.Date); err == nil && !s.Today.IsZero() {
		first := s.Today.Format(DateLayout)
		if d.Format(DateLayout) < first {
			sl.ReportError(s.Date, "date", "Date", "notpast", first)
		}
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "max":
		return "Value is too long (max: " + fe.Param() + ")"
	case "number":
		return "Must be a number"
	case "datetime":
		return "Use the YYYY-MM-DD format"
	case "guestrange":
		return "Choose between 1 and " + fe.Param() + " guests"
	case "notpast":
		return "Date cannot be before " + fe.Param()
	default:
		return "Invalid value"
	}
}
