package tool

import "context"

// HealthTool reports server liveness for container monitoring. It never
// touches the upstream API and works with or without a token.
type HealthTool struct{}

// NewHealthTool creates a new HealthTool.
func NewHealthTool() *HealthTool {
	return &HealthTool{}
}

// Name returns the tool's identifier.
func (t *HealthTool) Name() string {
	return "health_check"
}

// Description returns what the tool does.
func (t *HealthTool) Description() string {
	return "Health check endpoint for container monitoring"
}

// Parameters returns the JSON Schema for the tool's input.
func (t *HealthTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// Execute reports a healthy status.
func (t *HealthTool) Execute(ctx context.Context, args map[string]interface{}) (*ToolResult, error) {
	return &ToolResult{Success: true, Output: `{"status":"healthy"}`}, nil
}
