// Package addressbook keeps contacts keyed by name and answers which of
// them have a birthday coming up.
package addressbook

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/aanand-mishra/address-book/internal/record"
)

// AddressBook maps names to records and iterates them in insertion order.
//
// The mutex guards the mapping only. Records handed out by Find and Records
// are shared with the book and are not synchronised.
type AddressBook struct {
	mu      sync.Mutex
	logger  *slog.Logger
	records map[string]*record.Record
	order   []string
}

// New returns an empty AddressBook. A nil logger means slog.Default().
func New(logger *slog.Logger) *AddressBook {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressBook{
		logger:  logger,
		records: make(map[string]*record.Record),
	}
}

// AddRecord stores r under its name. An existing record with the same name is
// replaced entirely and keeps its position in the iteration order.
func (b *AddressBook) AddRecord(r *record.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*record.Record, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. It returns false and logs a
// warning when there is none.
func (b *AddressBook) Delete(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[name]; !ok {
		b.logger.Warn("contact not found", slog.String("name", name))
		return false
	}
	delete(b.records, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	return true
}

// Records returns every record in insertion order.
func (b *AddressBook) Records() []*record.Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshot()
}

func (b *AddressBook) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.order)
}

func (b *AddressBook) snapshot() []*record.Record {
	out := make([]*record.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}
