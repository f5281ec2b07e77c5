package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Violation is a single field-level schema violation.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error is returned when a payload fails schema validation. It carries the
// full list of violations so the caller can fix and resubmit.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return "invalid payload"
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Amounts travel as decimal strings ("299.00"), never floats.
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})

	return v
}

// BindJSON decodes a request body into dst and validates it against the
// struct's schema tags. Fields the schema does not declare are rejected, so
// clients cannot smuggle in ids or timestamps the store is supposed to
// assign. The payload itself is never mutated. On failure the returned error
// is an *Error with field-level violations.
func BindJSON(r io.Reader, dst interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return &Error{Violations: []Violation{decodeViolation(err)}}
	}

	if err := validate.Struct(dst); err != nil {
		var ferrs validator.ValidationErrors
		if !errors.As(err, &ferrs) {
			return &Error{Violations: []Violation{{Rule: "struct", Message: err.Error()}}}
		}
		violations := make([]Violation, 0, len(ferrs))
		for _, fe := range ferrs {
			violations = append(violations, Violation{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()),
			})
		}
		return &Error{Violations: violations}
	}

	return nil
}

func decodeViolation(err error) Violation {
	msg := err.Error()
	if strings.Contains(msg, "unknown field") {
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return Violation{
			Field:   field,
			Rule:    "unknown",
			Message: fmt.Sprintf("field '%s' is not part of the schema", field),
		}
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return Violation{
			Field:   ute.Field,
			Rule:    "type",
			Message: fmt.Sprintf("field '%s' must be of type %s", ute.Field, ute.Type),
		}
	}
	return Violation{Rule: "json", Message: "request body is not valid JSON"}
}

// ParseAmount parses a decimal amount string, rejecting negatives. Used
// after binding to convert the wire form into a decimal value.
func ParseAmount(amount string) (decimal.Decimal, error) {
	if amount == "" {
		return decimal.Zero, fmt.Errorf("amount cannot be empty")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %w", err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative")
	}
	return d, nil
}
