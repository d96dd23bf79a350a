package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "SCRAMBLER_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrNonASCII      = errors.New("input contains non-ASCII characters")
)

// SanitizeInput applies the input policy for messages and command lines that
// reach the engine through network adapters: a size limit, ASCII only (the
// operators address bytes), and no control characters. Line terminators and
// other control characters are stripped; everything else is rejected rather
// than altered.
func SanitizeInput(input string) (string, error) {
	limit := getMaxInputSize()
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	clean := true
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c > unicode.MaxASCII {
			return "", fmt.Errorf("%w: byte %d", ErrNonASCII, i)
		}
		if unicode.IsControl(rune(c)) {
			clean = false
		}
	}
	if clean {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if !unicode.IsControl(rune(input[i])) {
			b.WriteByte(input[i])
		}
	}
	return b.String(), nil
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
