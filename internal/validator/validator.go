package validator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/scrambler/internal/compiler"
	"github.com/aretw0/scrambler/pkg/domain"
)

// Encoder is the dry-run dependency of ValidatePairs.
type Encoder interface {
	Encode(ctx context.Context, message, commandLine string) (string, error)
}

// Report summarises a validation pass.
type Report struct {
	Lines    int
	Commands int
}

// ValidateCommands parses every line of a command file. Unlike the runner it
// does not stop at the first bad line: all problems are collected and
// returned together, each prefixed with its 1-based line number.
func ValidateCommands(r io.Reader, parser *compiler.Parser) (Report, error) {
	var rep Report
	var problems []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rep.Lines++
		cmds, err := parser.ParseLine(strings.TrimRight(sc.Text(), " \t\r\n"))
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %v", rep.Lines, err))
			continue
		}
		rep.Commands += len(cmds)
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("failed to read commands: %w", err)
	}
	return rep, joinProblems(problems)
}

// ValidatePairs dry-runs the encode of every message/command pair so index
// problems surface before any output file is written.
func ValidatePairs(ctx context.Context, enc Encoder, messages, commands io.Reader) (Report, error) {
	var rep Report
	var problems []string

	msgs := bufio.NewScanner(messages)
	cmds := bufio.NewScanner(commands)
	for {
		hasMsg, hasCmd := msgs.Scan(), cmds.Scan()
		if !hasMsg && !hasCmd {
			break
		}
		if hasMsg != hasCmd {
			longer := cmds
			if hasMsg {
				longer = msgs
			}
			extra := 1
			for longer.Scan() {
				extra++
			}
			alignErr := &domain.AlignmentError{MessageLines: rep.Lines, CommandLines: rep.Lines}
			if hasMsg {
				alignErr.MessageLines += extra
			} else {
				alignErr.CommandLines += extra
			}
			problems = append(problems, alignErr.Error())
			break
		}
		rep.Lines++
		msg := strings.TrimRight(msgs.Text(), " \t\r\n")
		line := strings.TrimRight(cmds.Text(), " \t\r\n")
		if _, err := enc.Encode(ctx, msg, line); err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %v", rep.Lines, err))
		}
	}
	if err := firstErr(msgs.Err(), cmds.Err()); err != nil {
		return rep, fmt.Errorf("failed to read input: %w", err)
	}
	return rep, joinProblems(problems)
}

func joinProblems(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("found %d errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
