package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/scrambler"
	"github.com/aretw0/scrambler/pkg/domain"
	"github.com/aretw0/scrambler/pkg/runner"
)

// Engine defines the encode/decode contract served over HTTP.
type Engine interface {
	Encode(ctx context.Context, message, commandLine string) (string, error)
	Decode(ctx context.Context, message, commandLine string) (string, error)
}

// TransformRequest is the body of POST /encode and POST /decode.
type TransformRequest struct {
	Message  string `json:"message"`
	Commands string `json:"commands"`
}

// TransformResponse is returned by POST /encode and POST /decode.
type TransformResponse struct {
	Output string `json:"output"`
}

// ReverseRequest is the body of POST /reverse.
type ReverseRequest struct {
	Commands string `json:"commands"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server holds the HTTP handlers.
type Server struct {
	Engine Engine
	Logger *slog.Logger

	gatherer prometheus.Gatherer
}

// HandlerOption configures the handler.
type HandlerOption func(*Server)

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) HandlerOption {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...HandlerOption) http.Handler {
	s := &Server{
		Engine: engine,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/encode", s.Encode)
	r.Post("/decode", s.Decode)
	r.Post("/reverse", s.Reverse)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Encode handles the POST /encode request.
func (s *Server) Encode(w http.ResponseWriter, r *http.Request) {
	s.transform(w, r, domain.Encode)
}

// Decode handles the POST /decode request.
func (s *Server) Decode(w http.ResponseWriter, r *http.Request) {
	s.transform(w, r, domain.Decode)
}

func (s *Server) transform(w http.ResponseWriter, r *http.Request, dir domain.Direction) {
	var body TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	msg, err := runner.SanitizeInput(body.Message)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid message: %w", err))
		return
	}
	cmds, err := runner.SanitizeInput(body.Commands)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid commands: %w", err))
		return
	}

	var out string
	if dir == domain.Decode {
		out, err = s.Engine.Decode(r.Context(), msg, cmds)
	} else {
		out, err = s.Engine.Encode(r.Context(), msg, cmds)
	}
	if err != nil {
		s.Logger.Warn("transform failed", "direction", dir, "error", err)
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, TransformResponse{Output: out})
}

// Reverse handles the POST /reverse request.
func (s *Server) Reverse(w http.ResponseWriter, r *http.Request) {
	var body ReverseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	s.writeJSON(w, http.StatusOK, ReverseRequest{Commands: scrambler.ReverseOperations(body.Commands)})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "scrambler-http",
		"version": strings.TrimSpace(scrambler.Version),
	})
}

// statusFor maps engine errors: malformed commands are the client's syntax
// problem (400), well-formed commands that do not fit the message are 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrIndex), errors.Is(err, domain.ErrNotALetter):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logger.Info("shutting down HTTP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
