// Package record implements a single contact: a name, an ordered list of
// phone numbers and an optional birthday.
package record

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aanand-mishra/address-book/internal/field"
)

// NotFound is what FindPhone returns when the number is not on the record.
const NotFound = "phone number not found"

// Record is one contact. Phones keep insertion order and may repeat.
// The zero value is not usable; create records with New.
type Record struct {
	name     field.Name
	phones   []field.PhoneNumber
	birthday *field.BirthdayDate
}

// New returns an empty Record for name.
func New(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, fmt.Errorf("record.New: %w", err)
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []field.PhoneNumber { return slices.Clone(r.phones) }

// Birthday reports the birthday and whether one has been set.
func (r *Record) Birthday() (field.BirthdayDate, bool) {
	if r.birthday == nil {
		return field.BirthdayDate{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it.
func (r *Record) AddPhone(raw string) error {
	p, err := field.NewPhoneNumber(raw)
	if err != nil {
		return fmt.Errorf("add phone to %q: %w", r.name, err)
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw. It returns false and
// logs a warning when there is none.
func (r *Record) RemovePhone(raw string) bool {
	i := r.index(raw)
	if i < 0 {
		slog.Warn("phone number not found",
			slog.String("name", r.name.String()),
			slog.String("phone", raw))
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

// EditPhone is RemovePhone(from) followed by AddPhone(to). If from is not on
// the record the remove does nothing and to is still appended. If to is
// invalid the error is returned and from stays removed.
func (r *Record) EditPhone(from, to string) error {
	r.RemovePhone(from)
	return r.AddPhone(to)
}

// FindPhone returns raw's canonical form if the record has it, and NotFound
// otherwise.
func (r *Record) FindPhone(raw string) (string, bool) {
	i := r.index(raw)
	if i < 0 {
		return NotFound, false
	}
	return r.phones[i].String(), true
}

// AddBirthday validates raw and sets it as the birthday, replacing any
// previous one.
func (r *Record) AddBirthday(raw string) error {
	b, err := field.NewBirthdayDate(raw)
	if err != nil {
		return fmt.Errorf("add birthday to %q: %w", r.name, err)
	}
	r.birthday = &b
	return nil
}

func (r *Record) index(raw string) int {
	return slices.IndexFunc(r.phones, func(p field.PhoneNumber) bool { return p.String() == raw })
}

// String renders the record as
//
//	Contact name: <name>, Phones: <p1>; <p2>, Birthday: <DD.MM.YYYY or empty>
func (r *Record) String() string {
	phones := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		phones = append(phones, p.String())
	}

	var birthday string
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, Phones: %s, Birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
