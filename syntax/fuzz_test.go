package syntax

import (
	"errors"
	"strings"
	"testing"
)

// Parsing must never panic, and anything accepted must survive a round trip through the canonical form.
func FuzzParseCIK(f *testing.F) {
	f.Add("")
	f.Add("320193")
	f.Add("0000320193")
	f.Add("9999999999")
	f.Add("10000000000")
	f.Add("12a45")
	f.Add("-1")
	f.Add("１２３")
	f.Add(string([]byte{0x00, 0xff, 0x31}))

	f.Fuzz(func(t *testing.T, input string) {
		cik, err := ParseCIK(input)
		if err != nil {
			if IsValidCIK(input) {
				t.Errorf("IsValidCIK disagrees with ParseCIK for %q", input)
			}
			if !errors.Is(err, ErrEmpty) && !errors.Is(err, ErrTooLong) && !errors.Is(err, ErrInvalidCharacter) {
				t.Errorf("unexpected error kind for %q: %v", input, err)
			}
			return
		}

		if cik.Integer() > MaxCIK {
			t.Errorf("value out of range for %q: %d", input, cik.Integer())
		}
		trimmed := strings.TrimLeft(input, "0")
		if trimmed == "" {
			trimmed = "0"
		}
		if cik.String() != trimmed {
			t.Errorf("canonical form of %q is %q, expected %q", input, cik.String(), trimmed)
		}
		again, err := ParseCIK(cik.String())
		if err != nil || again != cik {
			t.Errorf("round trip failed for %q", input)
		}
		fromInt, err := CIKFromInteger(cik.Integer())
		if err != nil || fromInt != cik {
			t.Errorf("integer round trip failed for %q", input)
		}
	})
}
