package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/scrambler/internal/presentation/tui"
	"github.com/aretw0/scrambler/pkg/domain"
	"github.com/aretw0/scrambler/pkg/runner"
)

// SessionOptions configures the interactive prompt session.
type SessionOptions struct {
	Settings

	In  io.Reader
	Out io.Writer

	// Terminal is set when Out is an interactive terminal; only then is the
	// banner printed.
	Terminal bool
}

// RunSession asks for the message, operations and output files and the
// direction, then transforms every line. Results are echoed to Out and
// written to the output file.
func RunSession(ctx context.Context, opts SessionOptions) (err error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	cfg, err := LoadConfig(opts.Settings)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug, cfg.LogLevel)

	if opts.Terminal && cfg.Banner {
		tui.PrintBanner(opts.Out)
	}

	p := &prompter{in: bufio.NewReader(opts.In), out: opts.Out}
	msgPath, err := p.ask("Please enter the message file: ")
	if err != nil {
		return handleExecutionError(err)
	}
	cmdsPath, err := p.ask("Please enter the operations file: ")
	if err != nil {
		return handleExecutionError(err)
	}
	outPath, err := p.ask("Please enter output file name: ")
	if err != nil {
		return handleExecutionError(err)
	}
	dir, err := p.direction()
	if err != nil {
		return handleExecutionError(err)
	}

	messages, err := openInput("message", msgPath)
	if err != nil {
		return err
	}
	defer messages.Close()

	commands, err := openInput("operations", cmdsPath)
	if err != nil {
		return err
	}
	defer commands.Close()

	if outPath == "" {
		return fmt.Errorf("missing output file")
	}
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer closeOutput(outFile, &err)

	fmt.Fprintln(opts.Out, "Generating output...")

	engine := createEngine(cfg, opts.Debug, logger)
	r := runner.NewRunner(engine)
	r.Logger = logger

	w := runner.MultiWriter{runner.NewTextWriter(outFile), runner.NewTextWriter(opts.Out)}
	sum, err := r.Run(ctx, messages, commands, w, dir)
	if err != nil {
		return handleExecutionError(err)
	}

	printSystemMessage(opts.Out, "Wrote %d line(s) to %s.", sum.Lines, outPath)
	return nil
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints prompt and returns the trimmed answer. A final answer without
// a trailing newline is accepted.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input closed before %q was answered", strings.TrimSpace(prompt))
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// direction repeats the question until the answer names a direction.
func (p *prompter) direction() (domain.Direction, error) {
	for {
		answer, err := p.ask("(E)ncrypt or (D)ecrypt ? ")
		if err != nil {
			return domain.Encode, err
		}
		dir, err := domain.ParseDirection(answer)
		if err == nil {
			return dir, nil
		}
		fmt.Fprintf(p.out, "Please answer E or D (got %q).\n", answer)
	}
}
