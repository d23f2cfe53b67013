// Package storage defines the Storage interface, the contract the driver
// program uses to hold contacts.
//
// Callers depend on this interface rather than on *addressbook.AddressBook,
// so a test can hand them any implementation that keeps the same semantics:
//
//   - lookups and removals of absent names never fail, they report false
//   - iteration follows insertion order
package storage

import (
	"time"

	"github.com/aanand-mishra/address-book/internal/addressbook"
	"github.com/aanand-mishra/address-book/internal/record"
)

// Storage is the contact book contract.
type Storage interface {
	// AddRecord stores a record under its name, replacing any record
	// already stored under that name.
	AddRecord(r *record.Record)

	// Find returns the record stored under name, or false.
	Find(name string) (*record.Record, bool)

	// Delete removes the record stored under name. Returns false if there
	// was none.
	Delete(name string) bool

	// Records returns every record in insertion order.
	Records() []*record.Record

	// UpcomingBirthdays returns the records to congratulate during the
	// seven days starting at today.
	UpcomingBirthdays(today time.Time) []addressbook.Congratulation
}

var _ Storage = (*addressbook.AddressBook)(nil)
