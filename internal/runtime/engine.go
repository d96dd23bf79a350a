package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/scrambler/internal/compiler"
	"github.com/aretw0/scrambler/pkg/domain"
	"github.com/aretw0/scrambler/pkg/ops"
)

// Engine is the command-sequence interpreter. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	parser       *compiler.Parser
	logger       *slog.Logger
	hooks        domain.LifecycleHooks
	legacyUndupe bool
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLegacyDuplicateInverse makes decode use ops.UnduplicateLegacy for
// multi-copy duplicates, matching files produced by the historical tool.
func WithLegacyDuplicateInverse(enabled bool) EngineOption {
	return func(e *Engine) {
		e.legacyUndupe = enabled
	}
}

// NewEngine creates a new interpreter.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		parser: compiler.NewParser(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parser returns the token parser used by the engine.
func (e *Engine) Parser() *compiler.Parser {
	return e.parser
}

// Transform parses cmdLine and folds it over msg left to right.
// The delimiter of cmdLine is irrelevant: dir alone decides whether the
// forward or the inverse variant of each operator is dispatched.
func (e *Engine) Transform(ctx context.Context, msg, cmdLine string, dir domain.Direction) (string, error) {
	cmds, err := e.parser.ParseLine(cmdLine)
	if err != nil {
		e.lineDone(ctx, dir, 0, err)
		return "", fmt.Errorf("failed to parse commands: %w", err)
	}
	out, err := e.Apply(ctx, msg, cmds, dir)
	e.lineDone(ctx, dir, len(cmds), err)
	return out, err
}

// Apply folds an already parsed sequence over msg. Every index is checked
// against the message as it is at that step.
func (e *Engine) Apply(ctx context.Context, msg string, cmds []domain.Command, dir domain.Direction) (string, error) {
	for n, cmd := range cmds {
		next, err := e.step(msg, cmd, dir)
		if err != nil {
			e.logger.DebugContext(ctx, "command failed", "pos", n, "token", cmd.String(), "direction", dir, "error", err)
			return "", fmt.Errorf("command %d (%s): %w", n+1, cmd, err)
		}
		e.logger.DebugContext(ctx, "command applied", "token", cmd.String(), "direction", dir, "before", msg, "after", next)
		if e.hooks.OnCommandApply != nil {
			e.hooks.OnCommandApply(ctx, &domain.CommandEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCommandApply},
				Family:    cmd.Family(),
				Token:     cmd.String(),
				Direction: dir,
				Before:    msg,
				After:     next,
			})
		}
		msg = next
	}
	return msg, nil
}

func (e *Engine) step(msg string, cmd domain.Command, dir domain.Direction) (string, error) {
	decode := dir == domain.Decode
	switch c := cmd.(type) {
	case domain.Shift:
		if decode {
			return ops.Unshift(msg, c.Index, c.Delta)
		}
		return ops.Shift(msg, c.Index, c.Delta)
	case domain.Rotate:
		if decode {
			return ops.Unrotate(msg, c.Amount), nil
		}
		return ops.Rotate(msg, c.Amount), nil
	case domain.Duplicate:
		switch {
		case !decode:
			return ops.Duplicate(msg, c.Index, c.Count)
		case e.legacyUndupe:
			return ops.UnduplicateLegacy(msg, c.Index, c.Count)
		default:
			return ops.Unduplicate(msg, c.Index, c.Count)
		}
	case domain.Trade:
		if c.Groups == 0 {
			return ops.Trade(msg, c.I, c.J)
		}
		return ops.TradeGroups(msg, c.Groups, c.I, c.J)
	default:
		return "", fmt.Errorf("unsupported command %T", cmd)
	}
}

func (e *Engine) lineDone(ctx context.Context, dir domain.Direction, n int, err error) {
	if e.hooks.OnLineDone == nil {
		return
	}
	e.hooks.OnLineDone(ctx, &domain.LineEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLineDone},
		Direction: dir,
		Commands:  n,
		Err:       err,
	})
}
