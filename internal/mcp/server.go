package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"sie-mcp/internal/tool"
)

// Server handles incoming JSON-RPC requests and exposes tools via the
// MCP protocol. Responses are written through a mutex-guarded writer so
// concurrent tool executions never interleave output frames.
type Server struct {
	tools   map[string]tool.Tool
	order   []string
	output  io.Writer
	logger  *slog.Logger
	mu      sync.Mutex
	running bool

	name    string
	version string
}

// NewServer creates an MCP server exposing the given tools.
func NewServer(name, version string, tools []tool.Tool, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	toolMap := make(map[string]tool.Tool, len(tools))
	order := make([]string, 0, len(tools))
	for _, t := range tools {
		toolMap[t.Name()] = t
		order = append(order, t.Name())
	}

	return &Server{
		tools:   toolMap,
		order:   order,
		logger:  logger,
		name:    name,
		version: version,
	}
}

// Serve reads newline-delimited JSON-RPC requests from input and writes
// responses to output. It blocks until input is exhausted or the
// context is cancelled.
func (s *Server) Serve(ctx context.Context, input io.Reader, output io.Writer) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}
	s.running = true
	s.output = output
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.sendError(0, -32700, "Parse error", nil)
			continue
		}

		s.handleRequest(ctx, &req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

func (s *Server) handleRequest(ctx context.Context, req *JSONRPCRequest) {
	s.logger.Info("request received", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "notifications/initialized":
		s.logger.Info("client initialized")
		// Notification, no response needed.
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(ctx, req)
	default:
		s.logger.Warn("unknown method", "method", req.Method)
		s.sendError(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

func (s *Server) handleInitialize(req *JSONRPCRequest) {
	s.logger.Info("initializing server", "name", s.name, "version", s.version)
	result := map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    s.name,
			"version": s.version,
		},
	}
	s.sendResult(req.ID, result)
}

func (s *Server) handleToolsList(req *JSONRPCRequest) {
	tools := make([]map[string]interface{}, 0, len(s.order))
	for _, name := range s.order {
		t := s.tools[name]
		tools = append(tools, map[string]interface{}{
			"name":        t.Name(),
			"description": t.Description(),
			"inputSchema": t.Parameters(),
		})
	}

	s.logger.Info("listing tools", "count", len(tools))
	s.sendResult(req.ID, map[string]interface{}{"tools": tools})
}

func (s *Server) handleToolsCall(ctx context.Context, req *JSONRPCRequest) {
	params, ok := req.Params.(map[string]interface{})
	if !ok {
		s.sendError(req.ID, -32602, "Invalid params", nil)
		return
	}

	name, ok := params["name"].(string)
	if !ok {
		s.sendError(req.ID, -32602, "Missing tool name", nil)
		return
	}

	t, exists := s.tools[name]
	if !exists {
		s.logger.Warn("unknown tool requested", "tool", name)
		s.sendToolResult(req.ID, fmt.Sprintf("Unknown tool: %s", name), true)
		return
	}

	args, _ := params["arguments"].(map[string]interface{})
	if args == nil {
		args = make(map[string]interface{})
	}

	s.logger.Info("executing tool", "tool", name)

	result, err := t.Execute(ctx, args)
	if err != nil {
		s.logger.Error("tool execution error", "tool", name, "error", err)
		s.sendToolResult(req.ID, fmt.Sprintf("Tool execution error: %v", err), true)
		return
	}

	if !result.Success {
		s.logger.Warn("tool returned error", "tool", name, "error", result.Error)
		s.sendToolResult(req.ID, result.Error, true)
		return
	}

	s.logger.Info("tool succeeded", "tool", name)
	s.sendToolResult(req.ID, result.Output, false)
}

func (s *Server) sendResult(id int, result interface{}) {
	s.writeResponse(JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *Server) sendError(id int, code int, message string, data interface{}) {
	s.writeResponse(JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}

// sendToolResult sends a tool call result in MCP content format.
func (s *Server) sendToolResult(id int, content string, isError bool) {
	s.sendResult(id, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": content,
			},
		},
		"isError": isError,
	})
}

func (s *Server) writeResponse(resp JSONRPCResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	s.output.Write(append(data, '\n'))
}
