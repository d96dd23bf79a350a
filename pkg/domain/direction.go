package domain

import (
	"fmt"
	"strings"
)

// Direction selects which variant of each operator the interpreter dispatches.
type Direction int

const (
	Encode Direction = iota
	Decode
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "encode"/"decode" as well as the single-letter
// answers of the interactive prompt ("E"/"D", case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "encode", "encrypt":
		return Encode, nil
	case "d", "decode", "decrypt":
		return Decode, nil
	}
	return Encode, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
