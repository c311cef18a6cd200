package contact

import "errors"

// Sentinel errors returned by Book and Record operations. Callers compare with
// errors.Is; wrapped variants carry the offending value.
var (
	// ErrInvalidFormat indicates a phone value is not exactly ten decimal digits.
	ErrInvalidFormat = errors.New("contact: invalid phone format")

	// ErrNotFound is the parent of every lookup failure.
	ErrNotFound = errors.New("contact: not found")

	// ErrContactNotFound indicates no record exists under a name.
	ErrContactNotFound = notFound("contact: no such contact")

	// ErrPhoneNotFound indicates a record holds no phone with the given value.
	ErrPhoneNotFound = notFound("contact: no such phone")

	// ErrMissingArgument indicates a required positional argument was not supplied.
	ErrMissingArgument = errors.New("contact: missing argument")
)

// lookupError is a not-found sentinel that also matches ErrNotFound.
type lookupError struct {
	msg string
}

func notFound(msg string) error {
	return &lookupError{msg: msg}
}

func (e *lookupError) Error() string { return e.msg }

// Is lets errors.Is(err, ErrNotFound) match both lookup sentinels.
func (e *lookupError) Is(target error) bool {
	return target == ErrNotFound
}
