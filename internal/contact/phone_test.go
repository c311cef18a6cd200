package contact

import (
	"errors"
	"testing"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"ten digits", "0001230001", false},
		{"all nines", "9999999999", false},
		{"too short", "123", true},
		{"too long", "12345678901", true},
		{"empty", "", true},
		{"letters", "12345abcde", true},
		{"spaces", "12345 6789", true},
		{"plus prefix", "+123456789", true},
		{"unicode digits", "١٢٣٤٥٦٧٨٩٠", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("NewPhone(%q) error = %v, want ErrInvalidFormat", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPhone(%q) error = %v", tt.raw, err)
			}
			if p.Value() != tt.raw {
				t.Errorf("Value() = %q, want %q", p.Value(), tt.raw)
			}
			if p.String() != tt.raw {
				t.Errorf("String() = %q, want %q", p.String(), tt.raw)
			}
		})
	}
}

func TestNewPhone_EveryDigit(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		raw := string([]rune{d, d, d, d, d, d, d, d, d, d})
		if _, err := NewPhone(raw); err != nil {
			t.Errorf("NewPhone(%q) error = %v", raw, err)
		}
	}
}

func TestNewPhone_RejectsNonASCIIDigits(t *testing.T) {
	for _, raw := range []string{"١٢٣٤٥٦٧٨٩٠", "１２３４５６７８９０"} {
		if _, err := NewPhone(raw); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("NewPhone(%q) error = %v, want ErrInvalidFormat", raw, err)
		}
	}
}
