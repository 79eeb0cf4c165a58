// Package tool defines the Tool interface and the economic-series tool
// implementations exposed over MCP.
package tool

import (
	"context"

	"sie-mcp/internal/sie"
)

// ToolResult is the outcome of a tool execution. Error is a fixed
// human-readable message shown to the caller when Success is false.
type ToolResult struct {
	Success bool
	Output  string
	Error   string
}

// Tool defines the interface for tools exposed by the MCP server.
// Each tool has a name, description, parameter schema, and an Execute method.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what the tool does.
	Description() string

	// Parameters returns a JSON Schema object describing the tool's input parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with the provided arguments and returns the result.
	Execute(ctx context.Context, args map[string]interface{}) (*ToolResult, error)
}

// SeriesFetcher is the slice of the SIE client the tools depend on,
// kept as an interface so tests can inject stubs.
type SeriesFetcher interface {
	Fetch(ctx context.Context, endpointPath string) (*sie.Payload, error)
}

// Backend bundles what every series tool needs: the upstream fetcher
// and whether an access token was configured at all. When HasToken is
// false the fetcher is never invoked and tools report a fixed
// configuration message instead.
type Backend struct {
	Fetcher  SeriesFetcher
	HasToken bool
}
