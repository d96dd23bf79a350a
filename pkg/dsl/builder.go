package dsl

import (
	"fmt"
	"strings"

	"github.com/aretw0/scrambler/internal/compiler"
	"github.com/aretw0/scrambler/internal/runtime"
	"github.com/aretw0/scrambler/pkg/domain"
)

// Builder accumulates a command sequence in encode order.
// The first invalid parameter is remembered and reported by Build.
type Builder struct {
	cmds []domain.Command
	err  error
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{}
}

// Then appends an arbitrary command.
func (b *Builder) Then(cmd domain.Command) *Builder {
	b.cmds = append(b.cmds, cmd)
	return b
}

// Shift shifts the letter at index i forward by one.
func (b *Builder) Shift(i int) *Builder {
	return b.Then(domain.Shift{Index: i, Delta: 1})
}

// ShiftBy shifts the letter at index i by k (negative moves backward).
func (b *Builder) ShiftBy(i, k int) *Builder {
	return b.Then(domain.Shift{Index: i, Delta: k})
}

// Rotate moves the last character to the front.
func (b *Builder) Rotate() *Builder {
	return b.Then(domain.Rotate{Amount: 1})
}

// RotateBy right-rotates by n (negative rotates left).
func (b *Builder) RotateBy(n int) *Builder {
	return b.Then(domain.Rotate{Amount: n})
}

// Duplicate inserts one copy of the character at index i after it.
func (b *Builder) Duplicate(i int) *Builder {
	return b.Then(domain.Duplicate{Index: i, Count: 1})
}

// DuplicateN inserts k copies of the character at index i after it.
func (b *Builder) DuplicateN(i, k int) *Builder {
	if k < 0 && b.err == nil {
		b.err = fmt.Errorf("command %d: negative duplicate count %d", len(b.cmds)+1, k)
	}
	return b.Then(domain.Duplicate{Index: i, Count: k})
}

// Trade swaps the characters at i and j.
func (b *Builder) Trade(i, j int) *Builder {
	return b.Then(domain.Trade{I: i, J: j})
}

// TradeGroups swaps groups i and j out of g equal groups.
func (b *Builder) TradeGroups(g, i, j int) *Builder {
	if g <= 0 && b.err == nil {
		b.err = fmt.Errorf("command %d: group count must be positive, got %d", len(b.cmds)+1, g)
	}
	return b.Then(domain.Trade{Groups: g, I: i, J: j})
}

// Commands returns a copy of the accumulated sequence.
func (b *Builder) Commands() []domain.Command {
	out := make([]domain.Command, len(b.cmds))
	copy(out, b.cmds)
	return out
}

// Build renders the ';'-joined encode line and checks that it parses back to
// the same sequence.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	tokens := make([]string, len(b.cmds))
	for i, cmd := range b.cmds {
		tokens[i] = cmd.String()
	}
	line := strings.Join(tokens, ";")

	parsed, err := compiler.NewParser().ParseLine(line)
	if err != nil {
		return "", fmt.Errorf("failed to build command line: %w", err)
	}
	for i := range parsed {
		if parsed[i] != b.cmds[i] {
			return "", fmt.Errorf("command %d (%s) does not round-trip", i+1, b.cmds[i])
		}
	}
	return line, nil
}

// BuildDecode renders the decode form of the sequence.
func (b *Builder) BuildDecode() (string, error) {
	line, err := b.Build()
	if err != nil {
		return "", err
	}
	return runtime.ReverseOperations(line), nil
}
