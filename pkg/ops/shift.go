package ops

import (
	"github.com/aretw0/scrambler/pkg/domain"
)

const alphabetSize = 26

// ShiftChar moves c by delta positions inside the 26-letter alphabet of its
// own case, wrapping in both directions for any delta.
func ShiftChar(c rune, delta int) (rune, error) {
	var base rune
	switch {
	case c >= 'A' && c <= 'Z':
		base = 'A'
	case c >= 'a' && c <= 'z':
		base = 'a'
	default:
		return c, domain.ErrNotALetter
	}
	// Reduce before adding so deltas near the int limits cannot overflow.
	off := (int(c-base) + delta%alphabetSize) % alphabetSize
	if off < 0 {
		off += alphabetSize
	}
	return base + rune(off), nil
}

// Shift moves the letter at index i forward by k (backward when k < 0).
func Shift(msg string, i, k int) (string, error) {
	if err := checkIndex(domain.FamilyShift, msg, i); err != nil {
		return "", err
	}
	c, err := ShiftChar(rune(msg[i]), k)
	if err != nil {
		return "", &domain.AlphabetError{Pos: i, Char: rune(msg[i])}
	}
	b := []byte(msg)
	b[i] = byte(c)
	return string(b), nil
}

// Unshift is the inverse of Shift(msg, i, k). k is reduced first because
// -math.MinInt overflows.
func Unshift(msg string, i, k int) (string, error) {
	return Shift(msg, i, -(k % alphabetSize))
}

func checkIndex(op domain.Family, msg string, i int) error {
	if i < 0 || i >= len(msg) {
		return &domain.IndexError{Op: op, Index: i, Length: len(msg)}
	}
	return nil
}
