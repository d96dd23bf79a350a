package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/scrambler/pkg/domain"
)

// Step is one row of an explanation: the command and the message it produced.
type Step struct {
	Command domain.Command
	Result  string
}

// Describe says in words what a command does when run in dir.
func Describe(cmd domain.Command, dir domain.Direction) string {
	decode := dir == domain.Decode
	switch c := cmd.(type) {
	case domain.Shift:
		k := c.Delta
		if decode {
			k = -k
		}
		return fmt.Sprintf("shift letter %d by %+d", c.Index, k)
	case domain.Rotate:
		n := c.Amount
		if decode {
			n = -n
		}
		if n < 0 {
			return fmt.Sprintf("rotate left by %d", -n)
		}
		return fmt.Sprintf("rotate right by %d", n)
	case domain.Duplicate:
		if decode {
			return fmt.Sprintf("remove %d character(s) after index %d", c.Count, c.Index)
		}
		return fmt.Sprintf("follow character %d with %d copies", c.Index, c.Count)
	case domain.Trade:
		if c.Groups == 0 {
			return fmt.Sprintf("swap characters %d and %d", c.I, c.J)
		}
		return fmt.Sprintf("swap groups %d and %d of %d", c.I, c.J, c.Groups)
	}
	return cmd.String()
}

// ExplainMarkdown renders a markdown table for a command sequence. When
// input is non-empty, steps carry the intermediate messages.
func ExplainMarkdown(title, input string, dir domain.Direction, steps []Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if input != "" {
		fmt.Fprintf(&b, "Input: `%s` (%s)\n\n", input, dir)
		b.WriteString("| # | Token | Effect | Result |\n|---|---|---|---|\n")
	} else {
		fmt.Fprintf(&b, "Direction: %s\n\n", dir)
		b.WriteString("| # | Token | Effect |\n|---|---|---|\n")
	}
	for i, s := range steps {
		if input != "" {
			fmt.Fprintf(&b, "| %d | `%s` | %s | `%s` |\n", i+1, s.Command, Describe(s.Command, dir), s.Result)
		} else {
			fmt.Fprintf(&b, "| %d | `%s` | %s |\n", i+1, s.Command, Describe(s.Command, dir))
		}
	}
	return b.String()
}
