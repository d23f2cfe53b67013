package field

import "strings"

// Name is the identifier of a contact. It is the key a contact is stored
// under in an address book.
type Name struct{ value string }

// NewName trims raw and rejects it if nothing is left.
func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if err := check("name", v, nameTag, "invalid name format"); err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }
