package contact

import "fmt"

// PhoneLength is the exact number of digits a phone number carries.
const PhoneLength = 10

// Phone is a validated phone number. The zero value is not a valid phone;
// construct one with NewPhone.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
// Returns an error wrapping ErrInvalidFormat unless raw is exactly
// PhoneLength ASCII digits.
func NewPhone(raw string) (Phone, error) {
	if err := ValidatePhone(raw); err != nil {
		return Phone{}, err
	}
	return Phone{value: raw}, nil
}

// ValidatePhone reports whether raw is a well-formed phone number.
// Only ASCII 0-9 count as digits; digits from other scripts are rejected.
func ValidatePhone(raw string) error {
	if len(raw) != PhoneLength {
		return fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidFormat, raw, len(raw), PhoneLength)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return fmt.Errorf("%w: %q contains non-digit %q", ErrInvalidFormat, raw, raw[i])
		}
	}
	return nil
}

// Value returns the digits of the phone number.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }
