package field

// PhoneNumber is a string of exactly ten ASCII digits.
type PhoneNumber struct{ value string }

// NewPhoneNumber accepts raw only when it is ten digits with nothing around
// them. Whitespace, signs, separators and non-ASCII digits are rejected.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if err := check("phone", raw, phoneTag, "invalid phone format"); err != nil {
		return PhoneNumber{}, err
	}
	return PhoneNumber{value: raw}, nil
}

func (p PhoneNumber) String() string { return p.value }
