package syntax

import (
	"errors"
	"fmt"
)

// Input string was empty.
var ErrEmpty = errors.New("expected CIK, got empty string")

// Input string was longer than [MaxCIKLength] characters. Returned wrapped in a [*LengthError].
var ErrTooLong = errors.New("CIK is too long")

// Input string contained something other than ASCII digits. Returned wrapped in a [*CharacterError].
var ErrInvalidCharacter = errors.New("CIK contains a non-digit character")

// Integer value was larger than [MaxCIK]. Returned wrapped in a [*RangeError].
var ErrOutOfRange = errors.New("CIK value out of range")

type LengthError struct {
	// Number of characters in the rejected input
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("CIK is too long (%d chars, %d max)", e.Length, MaxCIKLength)
}

func (e *LengthError) Unwrap() error {
	return ErrTooLong
}

type CharacterError struct {
	Char rune
	// Zero-based character (not byte) position in the input
	Index int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("CIK contains invalid character %q at index %d (only digits 0-9 allowed)", e.Char, e.Index)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

type RangeError struct {
	Value uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("CIK value %d out of range (0 to %d)", e.Value, MaxCIK)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
