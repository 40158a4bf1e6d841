package syntax

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

const (
	// Largest value representable with 10 decimal digits.
	MaxCIK uint64 = 9_999_999_999

	// Maximum number of characters accepted by [ParseCIK], including leading zeros.
	MaxCIKLength = 10
)

// Represents a syntactically valid Central Index Key.
//
// CIKs are rendered in the wild both with and without leading zeros, and are sometimes stored as integers. The canonical value is numeric, so leading zeros in the input are not preserved. The zero value is the (valid) CIK 0.
//
// Always use [ParseCIK] or [CIKFromInteger] to construct values, especially when working with network or file input.
type CIK struct {
	v uint64
}

// Parses a CIK from its decimal string form.
//
// The input must be 1 to 10 ASCII digits, with no sign, whitespace, or separators. Leading zeros are accepted. Failures are returned as [ErrEmpty], a [*LengthError], or a [*CharacterError].
func ParseCIK(raw string) (CIK, error) {
	if raw == "" {
		return CIK{}, ErrEmpty
	}

	// length and position are counted in characters (runes), not bytes
	n := utf8.RuneCountInString(raw)
	if n > MaxCIKLength {
		return CIK{}, &LengthError{Length: n}
	}
	idx := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return CIK{}, &CharacterError{Char: r, Index: idx}
		}
		idx++
	}

	// all ASCII from here on
	var v uint64
	for i := 0; i < len(raw); i++ {
		d := uint64(raw[i] - '0')
		// unreachable given the length bound
		if v > (MaxCIK-d)/10 {
			return CIK{}, &RangeError{Value: v}
		}
		v = v*10 + d
	}
	return CIK{v: v}, nil
}

// Constructs a CIK from an integer, such as one read from a database or decoded from JSON. Returns a [*RangeError] if the value is larger than [MaxCIK].
func CIKFromInteger(v uint64) (CIK, error) {
	if v > MaxCIK {
		return CIK{}, &RangeError{Value: v}
	}
	return CIK{v: v}, nil
}

// Checks CIK syntax without returning a value.
func IsValidCIK(raw string) bool {
	_, err := ParseCIK(raw)
	return err == nil
}

// Returns the numeric value of this CIK, in the range 0 to [MaxCIK].
func (c CIK) Integer() uint64 {
	return c.v
}

// Reports whether both CIKs have the same numeric value. Equivalent to ==.
func (c CIK) Equal(other CIK) bool {
	return c.v == other.v
}

// Compares numerically, returning -1, 0, or +1. Suitable for [slices.SortFunc].
func (c CIK) Compare(other CIK) int {
	switch {
	case c.v < other.v:
		return -1
	case c.v > other.v:
		return 1
	}
	return 0
}

// The canonical form: decimal digits with no leading zeros. CIK 0 renders as "0".
func (c CIK) String() string {
	return strconv.FormatUint(c.v, 10)
}

// Zero-padded 10-digit form, as used in EDGAR bulk data file names (eg, "CIK0000320193.json").
func (c CIK) Padded() string {
	return fmt.Sprintf("%0*d", MaxCIKLength, c.v)
}

func (c CIK) GoString() string {
	return fmt.Sprintf("syntax.CIK(%d)", c.v)
}
