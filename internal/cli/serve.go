package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpAdapter "github.com/aretw0/scrambler/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/scrambler/pkg/adapters/mcp"
	"github.com/aretw0/scrambler/pkg/observability"
)

// Serve runs the HTTP adapter with /metrics until ctx is cancelled.
// The listen address comes from the listen_addr setting.
func Serve(ctx context.Context, s Settings) error {
	cfg, err := LoadConfig(s)
	if err != nil {
		return err
	}
	logger := createLogger(s.Debug, cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	engine := createEngine(cfg, s.Debug, logger, metrics.Hooks())
	handler := httpAdapter.NewHandler(engine,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetrics(reg),
	)

	return httpAdapter.ListenAndServe(ctx, cfg.ListenAddr, handler, logger)
}

// ServeMCP runs the MCP adapter on Stdin/Stdout. Logs must stay on Stderr
// so they do not corrupt the JSON-RPC stream.
func ServeMCP(s Settings) error {
	cfg, err := LoadConfig(s)
	if err != nil {
		return err
	}
	logger := createLogger(s.Debug, cfg.LogLevel)
	engine := createEngine(cfg, s.Debug, logger)

	logger.Info("Starting scrambler MCP server (stdio)")
	return mcpAdapter.NewServer(engine).ServeStdio()
}
