package addressbook

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aanand-mishra/address-book/internal/field"
	"github.com/aanand-mishra/address-book/internal/record"
)

const (
	weekLength     = 7
	workweekLength = 5
)

// Congratulation is a record whose birthday falls in the upcoming week,
// paired with the day to congratulate them on.
type Congratulation struct {
	Record *record.Record
	Date   time.Time
}

// String renders the entry as
//
//	<record>, Congratulation date: DD.MM.YYYY
func (c Congratulation) String() string {
	return fmt.Sprintf("%s, Congratulation date: %s", c.Record, c.Date.Format(field.DateLayout))
}

// UpcomingBirthdays lists, in insertion order, the records whose birthday
// this year is between today and six days after today, both inclusive.
// Birthdays on a Saturday or Sunday are congratulated on the following Monday.
//
// Only the calendar date of today is used. Records whose birthday cannot be
// placed in today's year (29 February outside a leap year) are logged and
// skipped.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Congratulation {
	b.mu.Lock()
	records := b.snapshot()
	b.mu.Unlock()

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var out []Congratulation
	for _, r := range records {
		date, ok, err := congratulationDate(r, day)
		if err != nil {
			b.logger.Warn("skipping birthday",
				slog.String("name", r.Name()),
				slog.String("error", err.Error()))
			continue
		}
		if ok {
			out = append(out, Congratulation{Record: r, Date: date})
		}
	}
	return out
}

// congratulationDate reports when to congratulate r, and whether r's birthday
// is in the window starting at today (midnight UTC) at all.
func congratulationDate(r *record.Record, today time.Time) (time.Time, bool, error) {
	birthday, ok := r.Birthday()
	if !ok {
		return time.Time{}, false, nil
	}

	next, err := birthday.In(today.Year())
	if err != nil {
		return time.Time{}, false, err
	}

	delta := int(next.Sub(today).Hours() / 24)
	if delta < 0 || delta >= weekLength {
		return time.Time{}, false, nil
	}

	if wd := mondayIndex(next.Weekday()); wd >= workweekLength {
		next = next.AddDate(0, 0, weekLength-wd)
	}
	return next, true, nil
}

// mondayIndex maps Monday..Sunday to 0..6.
func mondayIndex(d time.Weekday) int { return (int(d) + 6) % 7 }
