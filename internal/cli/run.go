package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/scrambler/internal/config"
	"github.com/aretw0/scrambler/pkg/domain"
	"github.com/aretw0/scrambler/pkg/runner"
)

// RunOptions contains all the configuration for the encode and decode commands.
type RunOptions struct {
	Settings

	Direction    domain.Direction
	MessagesPath string
	CommandsPath string
	OutputPath   string // Empty means Stdout
	JSON         bool

	// Inline mode: a single message and command line from flags.
	Text string
	Ops  string

	Stdout io.Writer
}

// Inline reports whether the options describe a single inline transform.
func (o RunOptions) Inline() bool {
	return o.Ops != ""
}

// Execute handles the 'encode' and 'decode' command logic, dispatching to
// inline or file mode.
func Execute(ctx context.Context, opts RunOptions) (err error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	cfg, err := LoadConfig(opts.Settings)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug, cfg.LogLevel)
	engine := createEngine(cfg, opts.Debug, logger)
	jsonMode := opts.JSON || cfg.Output == config.OutputJSON

	if opts.Inline() {
		if opts.MessagesPath != "" || opts.CommandsPath != "" {
			return fmt.Errorf("--text/--ops cannot be combined with --messages/--commands")
		}
		transform := engine.Encode
		if opts.Direction == domain.Decode {
			transform = engine.Decode
		}
		out, err := transform(ctx, opts.Text, opts.Ops)
		if err != nil {
			return err
		}
		if jsonMode {
			return runner.NewJSONWriter(opts.Stdout).WriteRecord(runner.Record{
				Line: 1, Input: opts.Text, Commands: opts.Ops, Direction: opts.Direction, Output: out,
			})
		}
		_, err = fmt.Fprintln(opts.Stdout, out)
		return err
	}

	messages, err := openInput("message", opts.MessagesPath)
	if err != nil {
		return err
	}
	defer messages.Close()

	commands, err := openInput("operations", opts.CommandsPath)
	if err != nil {
		return err
	}
	defer commands.Close()

	dst := opts.Stdout
	if opts.OutputPath != "" {
		f, createErr := os.Create(opts.OutputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer closeOutput(f, &err)
		dst = f
	}

	var w runner.RecordWriter = runner.NewTextWriter(dst)
	if jsonMode {
		w = runner.NewJSONWriter(dst)
	}

	r := runner.NewRunner(engine)
	r.Logger = logger
	sum, err := r.Run(ctx, messages, commands, w, opts.Direction)
	if err != nil {
		return handleExecutionError(err)
	}
	logger.Info("run finished", "lines", sum.Lines, "direction", opts.Direction)
	return nil
}
