package contact

import (
	"fmt"
	"strings"
)

// Record is one contact: an immutable name and an ordered list of phones.
// Duplicate phones are permitted; order is insertion order.
type Record struct {
	name   string
	phones []Phone
}

// NewRecord creates an empty record for name.
// Returns an error wrapping ErrMissingArgument if name is blank.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: contact name", ErrMissingArgument)
	}
	return &Record{name: name}, nil
}

// Name returns the record's key in the Book.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the record's phones in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates raw and appends it.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return fmt.Errorf("%w: %q in %s", ErrPhoneNotFound, raw, r.name)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone equal to old with next.
// The candidate is validated before assignment, so a failed edit leaves the
// record untouched. A missing old phone takes precedence over a malformed next.
func (r *Record) EditPhone(old, next string) error {
	i := r.indexOf(old)
	if i < 0 {
		return fmt.Errorf("%w: %q in %s", ErrPhoneNotFound, old, r.name)
	}
	p, err := AttemptEdit(r.phones[i], next)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// AttemptEdit returns the phone that would result from editing p to next,
// without touching any record.
func AttemptEdit(p Phone, next string) (Phone, error) {
	candidate, err := NewPhone(next)
	if err != nil {
		return p, fmt.Errorf("editing %s: %w", p, err)
	}
	return candidate, nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.value == raw {
			return i
		}
	}
	return -1
}

// String renders the record as "Name: <name>, phones: <p1>, <p2>".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return fmt.Sprintf("Name: %s, phones: %s", r.name, strings.Join(values, ", "))
}
