package tool

import (
	"context"
	"fmt"

	"sie-mcp/internal/sie"
)

// MetadataTool retrieves catalog metadata (title, date range, frequency,
// unit) for a caller-supplied series.
type MetadataTool struct {
	backend         Backend
	defaultSeriesID string
}

// NewMetadataTool creates a MetadataTool defaulting to the given series.
func NewMetadataTool(backend Backend, defaultSeriesID string) *MetadataTool {
	return &MetadataTool{backend: backend, defaultSeriesID: defaultSeriesID}
}

// Name returns the tool's identifier.
func (t *MetadataTool) Name() string {
	return "get_series_metadata"
}

// Description returns what the tool does.
func (t *MetadataTool) Description() string {
	return "Gets metadata for a Banxico series, including title, description, and date range"
}

// Parameters returns the JSON Schema for the tool's input.
func (t *MetadataTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"series_id": map[string]interface{}{
				"type":        "string",
				"description": fmt.Sprintf("The series ID to get metadata for (default: %s for USD/MXN)", t.defaultSeriesID),
			},
		},
	}
}

// Execute fetches and renders the series metadata.
func (t *MetadataTool) Execute(ctx context.Context, args map[string]interface{}) (*ToolResult, error) {
	if !t.backend.HasToken {
		return &ToolResult{Success: false, Error: missingTokenMessage}, nil
	}

	seriesID := t.defaultSeriesID
	if v, ok := args["series_id"].(string); ok && v != "" {
		seriesID = v
	}

	payload, err := t.backend.Fetcher.Fetch(ctx, sie.MetadataPath(seriesID))
	if err != nil {
		return &ToolResult{Success: false, Error: fetchErrorMessage(err)}, nil
	}

	return &ToolResult{Success: true, Output: sie.FormatMetadata(payload)}, nil
}
