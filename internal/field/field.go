// Package field holds the validated scalar values a contact is built from:
// a Name, a PhoneNumber and a BirthdayDate.
//
// Every value is checked once, at construction, with go-playground/validator.
// After that it is immutable and String() returns its canonical form, so
//
//	p, _ := field.NewPhoneNumber(s)
//	q, _ := field.NewPhoneNumber(p.String()) // q == p
//
// holds for every value the constructors accept.
package field

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the textual format of a BirthdayDate: DD.MM.YYYY.
const DateLayout = "02.01.2006"

// Validation tags, one per field kind.
const (
	nameTag  = "required"
	phoneTag = "len=10,number"
	dateTag  = "datetime=" + DateLayout
)

// validate is shared by every constructor in this package. A *validator.Validate
// caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// ValidationError reports a malformed raw value passed to a constructor.
type ValidationError struct {
	Field string // "name", "phone" or "birthday"
	Value string // raw input as received
	Tag   string // validator tag that failed, empty when the failure came from elsewhere
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

// check runs a single-value validation and converts the validator's
// error shape into a *ValidationError carrying msg.
func check(fieldName, raw, tag, msg string) error {
	err := validate.Var(raw, tag)
	if err == nil {
		return nil
	}

	verr := &ValidationError{Field: fieldName, Value: raw, Msg: msg}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		verr.Tag = fieldErrs[0].ActualTag()
	}
	return verr
}
