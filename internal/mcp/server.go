package mcp

import (
	"context"
	"encoding/json"

	"recap/internal/logging"
	"recap/internal/toolerr"
	"recap/internal/tools"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around the tool dispatcher. Every tool
// shares one response shape: a single JSON text block carrying either the
// tool's payload or a structured error envelope with IsError set.
type Server struct {
	MCPServer *sdkmcp.Server

	handler *tools.Handler
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Tool    string `json:"tool"`
}

// NewServer creates an MCP server exposing the summary tools.
func NewServer(handler *tools.Handler, version string) *Server {
	s := &Server{handler: handler}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "recap", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	for _, def := range tools.Definitions() {
		name := def.Name
		s.MCPServer.AddTool(&sdkmcp.Tool{
			Name:        name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			return s.call(ctx, name, req.Params.Arguments)
		})
	}
}

func (s *Server) call(ctx context.Context, name string, args json.RawMessage) (*sdkmcp.CallToolResult, error) {
	logger := logging.New("mcp-server")
	logger.Debug("tool call", "tool", name)

	result, err := s.handler.Dispatch(ctx, name, args)
	if err != nil {
		te := toolerr.Wrap(err, toolerr.CodeGenerationFailed, "Tool execution failed")
		logger.Error("tool failed", "tool", name, "code", te.Code, "message", te.Message)
		return errorResult(name, te), nil
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("result encoding failed", "tool", name, "error", err)
		return errorResult(name, toolerr.New(toolerr.CodeGenerationFailed,
			"Failed to encode tool result", err.Error())), nil
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(body)}},
	}, nil
}

func errorResult(tool string, te *toolerr.Error) *sdkmcp.CallToolResult {
	env := errorEnvelope{
		Error: errorBody{
			Code:    te.Code,
			Message: te.Message,
			Details: te.Details,
			Tool:    tool,
		},
	}
	body, _ := json.MarshalIndent(env, "", "  ")
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(body)}},
		IsError: true,
	}
}
