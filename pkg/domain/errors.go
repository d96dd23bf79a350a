package domain

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("parse error")

// ErrIndex is matched by every *IndexError.
var ErrIndex = errors.New("index out of range")

// ErrAlignment is matched by every *AlignmentError.
var ErrAlignment = errors.New("message and command lines are not aligned")

// ErrNotALetter is returned when a shift targets a character outside A-Z and a-z.
var ErrNotALetter = errors.New("not a letter")

// ParseError reports a malformed command token.
type ParseError struct {
	Token  string // Offending token as written
	Pos    int    // Byte offset inside Token where parsing stopped
	Reason string // Human-readable reason for failure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %q: %s at offset %d", e.Token, e.Reason, e.Pos)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IndexError reports a position, count or group parameter that does not fit
// the message it is applied to.
type IndexError struct {
	Op     Family
	Index  int
	Length int
	Reason string
}

func (e *IndexError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: index %d out of range for length %d", e.Op, e.Index, e.Length)
	}
	return fmt.Sprintf("%s: %s (index %d, length %d)", e.Op, e.Reason, e.Index, e.Length)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// AlphabetError reports a shift applied to a non-letter.
type AlphabetError struct {
	Pos  int
	Char rune
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("shift: character %q at index %d is not a letter", e.Char, e.Pos)
}

func (e *AlphabetError) Is(target error) bool { return target == ErrNotALetter }

// AlignmentError is returned by line drivers when the message and command
// inputs have a different number of lines.
type AlignmentError struct {
	MessageLines int
	CommandLines int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%d message lines but %d command lines", e.MessageLines, e.CommandLines)
}

func (e *AlignmentError) Is(target error) bool { return target == ErrAlignment }

// LineError attaches a 1-based input line number to a failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
