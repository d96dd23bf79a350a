package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/scrambler"
	"github.com/aretw0/scrambler/pkg/runner"
)

// TransformResult is the structured output of the encode and decode tools.
type TransformResult struct {
	Output string `json:"output" jsonschema_description:"The transformed message"`
}

// ReverseResult is the structured output of reverse_operations.
type ReverseResult struct {
	Commands string `json:"commands" jsonschema_description:"Space-separated decode form of the command line"`
}

// Engine defines what the MCP server needs from scrambler.
type Engine interface {
	Encode(ctx context.Context, message, commandLine string) (string, error)
	Decode(ctx context.Context, message, commandLine string) (string, error)
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("scrambler-mcp", strings.TrimSpace(scrambler.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	encodeTool := mcp.NewTool("encode",
		mcp.WithDescription("Apply a ';'-separated command line (S<i>[,<k>], R[<n>], D<i>[,<k>], T[(<g>)]<i>,<j>) to a message."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The plain message")),
		mcp.WithString("commands", mcp.Required(), mcp.Description("Encode command line, e.g. S0;R2;T(4)0,2")),
		mcp.WithOutputSchema[TransformResult](),
	)
	s.mcpServer.AddTool(encodeTool, mcp.NewStructuredToolHandler(s.handleEncode))

	decodeTool := mcp.NewTool("decode",
		mcp.WithDescription("Undo an encode command line: commands are reversed and inverted."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The encoded message")),
		mcp.WithString("commands", mcp.Required(), mcp.Description("The same command line used to encode")),
		mcp.WithOutputSchema[TransformResult](),
	)
	s.mcpServer.AddTool(decodeTool, mcp.NewStructuredToolHandler(s.handleDecode))

	reverseTool := mcp.NewTool("reverse_operations",
		mcp.WithDescription("Return the decode form (reversed, space-separated) of an encode command line."),
		mcp.WithString("commands", mcp.Required(), mcp.Description("Encode command line")),
		mcp.WithOutputSchema[ReverseResult](),
	)
	s.mcpServer.AddTool(reverseTool, mcp.NewStructuredToolHandler(s.handleReverse))
}

func (s *Server) handleEncode(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TransformResult, error) {
	msg, cmds, err := transformArgs(args)
	if err != nil {
		return TransformResult{}, err
	}
	out, err := s.engine.Encode(ctx, msg, cmds)
	if err != nil {
		slog.Warn("MCP encode failed", "error", err)
		return TransformResult{}, fmt.Errorf("encode failed: %w", err)
	}
	return TransformResult{Output: out}, nil
}

func (s *Server) handleDecode(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TransformResult, error) {
	msg, cmds, err := transformArgs(args)
	if err != nil {
		return TransformResult{}, err
	}
	out, err := s.engine.Decode(ctx, msg, cmds)
	if err != nil {
		slog.Warn("MCP decode failed", "error", err)
		return TransformResult{}, fmt.Errorf("decode failed: %w", err)
	}
	return TransformResult{Output: out}, nil
}

func (s *Server) handleReverse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ReverseResult, error) {
	cmds, _ := args["commands"].(string)
	return ReverseResult{Commands: scrambler.ReverseOperations(cmds)}, nil
}

func transformArgs(args map[string]interface{}) (string, string, error) {
	msg, _ := args["message"].(string)
	cmds, _ := args["commands"].(string)

	cleanMsg, err := runner.SanitizeInput(msg)
	if err != nil {
		return "", "", fmt.Errorf("message rejected: %w", err)
	}
	cleanCmds, err := runner.SanitizeInput(cmds)
	if err != nil {
		return "", "", fmt.Errorf("commands rejected: %w", err)
	}
	return cleanMsg, cleanCmds, nil
}
