package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/isdmx/scriptbox/config"
	"github.com/isdmx/scriptbox/toolspec"
)

// ScriptRunner runs a script and renders its outcome as text
type ScriptRunner interface {
	RunPythonFile(ctx context.Context, workingDir, filePath string, args ...string) string
}

// MCPServer represents the MCP server
type MCPServer struct {
	config     *config.Config
	logger     *zap.Logger
	runner     ScriptRunner
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

// New creates a new MCPServer
func New(cfg *config.Config, logger *zap.Logger, runner ScriptRunner) (*MCPServer, error) {
	s := &MCPServer{
		config: cfg,
		logger: logger,
		runner: runner,
	}

	logger.Info("configuration loaded",
		zap.String("server.transport", cfg.Server.Transport),
		zap.Int("server.http_port", cfg.Server.HTTPPort),
		zap.String("runner.working_directory", cfg.Runner.WorkingDirectory),
		zap.String("runner.backend", cfg.Runner.Backend),
		zap.String("runner.interpreter", cfg.Runner.Interpreter),
		zap.String("runner.extension", cfg.Runner.Extension),
		zap.Int("runner.timeout_sec", cfg.Runner.TimeoutSec),
		zap.Int("runner.max_output_bytes", cfg.Runner.MaxOutputBytes),
	)

	s.mcpServer = server.NewMCPServer("scriptbox", "1.0.0", server.WithToolCapabilities(false))

	s.mcpServer.AddTool(toolspec.RunPythonFile().MCPTool(), s.handleRunPythonFile)
	s.httpServer = server.NewStreamableHTTPServer(s.mcpServer)

	return s, nil
}

// handleRunPythonFile handles the run_python_file tool. The working
// directory comes from configuration, never from the caller.
func (s *MCPServer) handleRunPythonFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := request.RequireString(toolspec.ParamFilePath)
	if err != nil {
		return nil, fmt.Errorf("file_path parameter is required: %w", err)
	}

	args, err := stringSlice(request.GetArguments()[toolspec.ParamArgs])
	if err != nil {
		return nil, fmt.Errorf("invalid args parameter: %w", err)
	}

	s.logger.Info("script execution requested",
		zap.String("file_path", filePath),
		zap.Int("arg_count", len(args)))

	output := s.runner.RunPythonFile(ctx, s.config.Runner.WorkingDirectory, filePath, args...)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: output,
			},
		},
		IsError: strings.HasPrefix(output, "Error:"),
	}, nil
}

// stringSlice accepts a missing value, []string or a JSON array of strings.
func stringSlice(v any) ([]string, error) {
	switch vals := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return append([]string{}, vals...), nil
	case []any:
		out := make([]string, 0, len(vals))
		for i, item := range vals {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, want string", i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, errors.New("must be an array of strings")
	}
}

// ServeStdio starts the server on stdio
func (s *MCPServer) ServeStdio() error {
	s.logger.Info("starting MCP server on stdio")
	return server.ServeStdio(s.mcpServer)
}

// ServeHTTP starts the server on HTTP
func (s *MCPServer) ServeHTTP() error {
	port := s.config.Server.HTTPPort
	s.logger.Info("starting MCP server on HTTP", zap.Int("port", port))

	return s.httpServer.Start(fmt.Sprintf(":%d", port))
}

// Shutdown stops the HTTP transport
func (s *MCPServer) Shutdown(ctx context.Context) error {
	s.logger.Info("stopping MCP server")
	return s.httpServer.Shutdown(ctx)
}

// GetMCPServer returns the underlying MCP server
func (s *MCPServer) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}
