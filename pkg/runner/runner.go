package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/scrambler/pkg/domain"
)

// Engine is the subset of *scrambler.Engine the runner needs.
type Engine interface {
	Encode(ctx context.Context, message, commandLine string) (string, error)
	Decode(ctx context.Context, message, commandLine string) (string, error)
}

// Summary reports what a run processed.
type Summary struct {
	Lines int `json:"lines"`
}

// Runner drives an Engine over aligned message and command streams.
type Runner struct {
	Engine Engine

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// NewRunner creates a Runner for the given engine.
func NewRunner(engine Engine) *Runner {
	return &Runner{
		Engine: engine,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run processes both streams line by line until they are exhausted.
// Buffered writers are flushed before Run returns, on success or failure.
//
// A line that fails to parse or apply aborts the run with a *domain.LineError;
// records already written stay written and the failing line produces none.
// Streams with a different number of lines yield a *domain.AlignmentError
// once the shorter one runs out.
func (r *Runner) Run(ctx context.Context, messages, commands io.Reader, w RecordWriter, dir domain.Direction) (Summary, error) {
	sum, err := r.run(ctx, messages, commands, w, dir)
	if f, ok := w.(interface{ Flush() error }); ok {
		if ferr := f.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("failed to flush output: %w", ferr)
		}
	}
	return sum, err
}

func (r *Runner) run(ctx context.Context, messages, commands io.Reader, w RecordWriter, dir domain.Direction) (Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	msgs := bufio.NewScanner(messages)
	cmds := bufio.NewScanner(commands)
	var sum Summary

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		hasMsg := msgs.Scan()
		hasCmd := cmds.Scan()
		if err := firstErr(msgs.Err(), cmds.Err()); err != nil {
			return sum, fmt.Errorf("failed to read input: %w", err)
		}
		if !hasMsg && !hasCmd {
			break
		}
		if hasMsg != hasCmd {
			return sum, r.misaligned(sum.Lines, hasMsg, msgs, cmds)
		}

		lineNo := sum.Lines + 1
		msg := strings.TrimRight(msgs.Text(), " \t\r\n")
		line := strings.TrimRight(cmds.Text(), " \t\r\n")

		var out string
		var err error
		if dir == domain.Decode {
			out, err = r.Engine.Decode(ctx, msg, line)
		} else {
			out, err = r.Engine.Encode(ctx, msg, line)
		}
		if err != nil {
			logger.WarnContext(ctx, "line failed", "line", lineNo, "direction", dir, "error", err)
			return sum, &domain.LineError{Line: lineNo, Err: err}
		}

		if err := w.WriteRecord(Record{Line: lineNo, Input: msg, Commands: line, Direction: dir, Output: out}); err != nil {
			return sum, fmt.Errorf("failed to write line %d: %w", lineNo, err)
		}
		logger.DebugContext(ctx, "line processed", "line", lineNo, "input", msg, "output", out)
		sum.Lines++
	}
	return sum, nil
}

// misaligned counts the rest of the longer stream to report both totals.
func (r *Runner) misaligned(done int, hasMsg bool, msgs, cmds *bufio.Scanner) error {
	longer := cmds
	if hasMsg {
		longer = msgs
	}
	extra := 1
	for longer.Scan() {
		extra++
	}
	if hasMsg {
		return &domain.AlignmentError{MessageLines: done + extra, CommandLines: done}
	}
	return &domain.AlignmentError{MessageLines: done, CommandLines: done + extra}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
