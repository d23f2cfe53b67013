// Package render writes records and birthday reports for the driver, either
// as plain lines or as JSON documents.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aanand-mishra/address-book/internal/addressbook"
	"github.com/aanand-mishra/address-book/internal/field"
	"github.com/aanand-mishra/address-book/internal/record"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Contact is the JSON shape of a record.
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Congratulation is the JSON shape of an upcoming-birthday entry.
type Congratulation struct {
	Contact Contact `json:"contact"`
	Date    string  `json:"congratulation_date"`
}

func contact(r *record.Record) Contact {
	c := Contact{Name: r.Name(), Phones: make([]string, 0)}
	for _, p := range r.Phones() {
		c.Phones = append(c.Phones, p.String())
	}
	if b, ok := r.Birthday(); ok {
		c.Birthday = b.String()
	}
	return c
}

// Records writes rs one per line, or as a JSON array.
func Records(w io.Writer, format string, rs []*record.Record) error {
	if format == FormatJSON {
		body := make([]Contact, 0, len(rs))
		for _, r := range rs {
			body = append(body, contact(r))
		}
		return WriteJSON(w, body)
	}

	for _, r := range rs {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

// Congratulations writes cs under a heading, or as a JSON array.
func Congratulations(w io.Writer, format string, cs []addressbook.Congratulation) error {
	if format == FormatJSON {
		body := make([]Congratulation, 0, len(cs))
		for _, c := range cs {
			body = append(body, Congratulation{
				Contact: contact(c.Record),
				Date:    formatDate(c.Date),
			})
		}
		return WriteJSON(w, body)
	}

	if _, err := fmt.Fprintln(w, "Upcoming Birthdays:"); err != nil {
		return err
	}
	for _, c := range cs {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes data with two-space indentation.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func formatDate(t time.Time) string { return t.Format(field.DateLayout) }
