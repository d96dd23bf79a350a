package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/scrambler"
	"github.com/aretw0/scrambler/internal/compiler"
	"github.com/aretw0/scrambler/internal/presentation/tui"
	"github.com/aretw0/scrambler/internal/validator"
	"github.com/aretw0/scrambler/pkg/domain"
)

// ExplainOptions configures the explain command.
type ExplainOptions struct {
	Settings

	Ops       string
	Text      string // Optional; when set each step shows its intermediate message
	Direction domain.Direction
	Render    bool // Render markdown with glamour
	Out       io.Writer
}

// Explain prints a table of the commands in a line, in the order they run
// for the chosen direction.
func Explain(ctx context.Context, opts ExplainOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	cfg, err := LoadConfig(opts.Settings)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug, cfg.LogLevel)

	line := opts.Ops
	if opts.Direction == domain.Decode {
		line = scrambler.ReverseOperations(line)
	}

	var results []string
	recorder := domain.LifecycleHooks{
		OnCommandApply: func(_ context.Context, e *domain.CommandEvent) {
			results = append(results, e.After)
		},
	}
	engine := createEngine(cfg, opts.Debug, logger, recorder)

	cmds, err := engine.Parse(line)
	if err != nil {
		return err
	}
	if opts.Text != "" {
		if _, err := engine.Transform(ctx, opts.Text, line, opts.Direction); err != nil {
			return err
		}
	}

	steps := make([]tui.Step, len(cmds))
	for i, c := range cmds {
		steps[i].Command = c
		if i < len(results) {
			steps[i].Result = results[i]
		}
	}

	md := tui.ExplainMarkdown(fmt.Sprintf("%s: %s", opts.Direction, opts.Ops), opts.Text, opts.Direction, steps)
	if opts.Render {
		rendered, err := tui.NewRenderer()(md)
		if err == nil {
			md = rendered
		}
	}
	_, err = io.WriteString(opts.Out, md)
	return err
}

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Settings

	CommandsPath string
	MessagesPath string // Optional; enables the encode dry run
	Out          io.Writer
}

// Validate checks a command file and, when a message file is given, that
// every pair encodes.
func Validate(ctx context.Context, opts ValidateOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	cfg, err := LoadConfig(opts.Settings)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug, cfg.LogLevel)

	commands, err := openInput("operations", opts.CommandsPath)
	if err != nil {
		return err
	}
	defer commands.Close()

	rep, err := validator.ValidateCommands(commands, compiler.NewParser())
	if err != nil {
		return err
	}

	if opts.MessagesPath != "" {
		messages, err := openInput("message", opts.MessagesPath)
		if err != nil {
			return err
		}
		defer messages.Close()

		if _, err := commands.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("failed to rewind operations file: %w", err)
		}
		engine := createEngine(cfg, opts.Debug, logger)
		if _, err := validator.ValidatePairs(ctx, engine, messages, commands); err != nil {
			return err
		}
	}

	printSystemMessage(opts.Out, "%d line(s), %d command(s): valid.", rep.Lines, rep.Commands)
	return nil
}
