package field

import "time"

// BirthdayDate is a calendar date without a time component.
type BirthdayDate struct {
	year  int
	month time.Month
	day   int
}

// NewBirthdayDate parses raw as DD.MM.YYYY. Day and month must be two digits,
// the year four, and the day must exist in that month and year.
func NewBirthdayDate(raw string) (BirthdayDate, error) {
	if err := check("birthday", raw, dateTag, "invalid date format"); err != nil {
		return BirthdayDate{}, err
	}

	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return BirthdayDate{}, &ValidationError{Field: "birthday", Value: raw, Msg: "invalid date format"}
	}
	return BirthdayDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func (b BirthdayDate) Year() int         { return b.year }
func (b BirthdayDate) Month() time.Month { return b.month }
func (b BirthdayDate) Day() int          { return b.day }

// Time returns the date at midnight UTC.
func (b BirthdayDate) Time() time.Time {
	return time.Date(b.year, b.month, b.day, 0, 0, 0, 0, time.UTC)
}

// In projects the birthday's month and day onto year, at midnight UTC.
// A 29 February birthday has no such day in a non-leap year; that case
// is reported as a *ValidationError instead of rolling over to 1 March.
func (b BirthdayDate) In(year int) (time.Time, error) {
	t := time.Date(year, b.month, b.day, 0, 0, 0, 0, time.UTC)
	if t.Month() != b.month || t.Day() != b.day {
		return time.Time{}, &ValidationError{
			Field: "birthday",
			Value: b.String(),
			Msg:   "birthday does not exist in year",
		}
	}
	return t, nil
}

func (b BirthdayDate) String() string { return b.Time().Format(DateLayout) }
