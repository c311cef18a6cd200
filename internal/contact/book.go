// Package contact holds the in-memory contact book: validated phone numbers,
// contact records, and the insertion-ordered Book that owns them.
package contact

import "strings"

// Book maps contact names to records, remembering insertion order.
// A Book is not safe for concurrent use; it belongs to a single session.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook creates an empty Book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add stores r under its name. An existing record with the same name is
// replaced wholesale, keeping its position in the listing.
func (b *Book) Add(r *Record) {
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. Deleting an absent name is a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.order) }

// Names returns record names in insertion order.
func (b *Book) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// String renders every record, one per line, in insertion order.
func (b *Book) String() string {
	lines := make([]string, len(b.order))
	for i, name := range b.order {
		lines[i] = b.records[name].String()
	}
	return strings.Join(lines, "\n")
}
