package scrambler

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/scrambler/internal/runtime"
	"github.com/aretw0/scrambler/pkg/domain"
)

// Engine is the high-level entry point for the scrambler library.
// It wraps the internal interpreter and exposes the encode/decode contract.
type Engine struct {
	runtime      *runtime.Engine
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	legacyUndupe bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLegacyDuplicateInverse restores the historical multi-copy duplicate
// inverse when decoding. Leave it off unless you must reproduce old output.
func WithLegacyDuplicateInverse(enabled bool) Option {
	return func(e *Engine) {
		e.legacyUndupe = enabled
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLegacyDuplicateInverse(eng.legacyUndupe),
	)
	return eng
}

// Encode applies every command of commandLine to message, left to right.
func (e *Engine) Encode(ctx context.Context, message, commandLine string) (string, error) {
	return e.runtime.Transform(ctx, message, commandLine, domain.Encode)
}

// Decode undoes Encode: the commands are reversed and each one is replaced by
// its inverse.
func (e *Engine) Decode(ctx context.Context, message, commandLine string) (string, error) {
	return e.runtime.Transform(ctx, message, runtime.ReverseOperations(commandLine), domain.Decode)
}

// Transform runs commandLine in the given direction without reordering it.
// Decode callers normally want Decode, which reverses the sequence first.
func (e *Engine) Transform(ctx context.Context, message, commandLine string, dir domain.Direction) (string, error) {
	return e.runtime.Transform(ctx, message, commandLine, dir)
}

// Parse validates a command line and returns its typed commands.
func (e *Engine) Parse(commandLine string) ([]domain.Command, error) {
	return e.runtime.Parser().ParseLine(commandLine)
}

// ReverseOperations returns the decode form of an encode command line.
func ReverseOperations(commandLine string) string {
	return runtime.ReverseOperations(commandLine)
}
