package tool

import (
	"context"
	"fmt"

	"sie-mcp/internal/sie"
)

// DateRangeTool retrieves series data between two inclusive dates.
type DateRangeTool struct {
	backend         Backend
	defaultSeriesID string
}

// NewDateRangeTool creates a DateRangeTool defaulting to the given series.
func NewDateRangeTool(backend Backend, defaultSeriesID string) *DateRangeTool {
	return &DateRangeTool{backend: backend, defaultSeriesID: defaultSeriesID}
}

// Name returns the tool's identifier.
func (t *DateRangeTool) Name() string {
	return "get_date_range_data"
}

// Description returns what the tool does.
func (t *DateRangeTool) Description() string {
	return "Gets exchange rate data for a specific date range"
}

// Parameters returns the JSON Schema for the tool's input.
func (t *DateRangeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"start_date": map[string]interface{}{
				"type":        "string",
				"description": "Start date in YYYY-MM-DD format",
			},
			"end_date": map[string]interface{}{
				"type":        "string",
				"description": "End date in YYYY-MM-DD format",
			},
			"series_id": map[string]interface{}{
				"type":        "string",
				"description": fmt.Sprintf("The series ID (default: %s for USD/MXN)", t.defaultSeriesID),
			},
		},
		"required": []string{"start_date", "end_date"},
	}
}

// Execute fetches and formats the requested date range.
func (t *DateRangeTool) Execute(ctx context.Context, args map[string]interface{}) (*ToolResult, error) {
	if !t.backend.HasToken {
		return &ToolResult{Success: false, Error: missingTokenMessage}, nil
	}

	startDate, ok := args["start_date"].(string)
	if !ok || startDate == "" {
		return &ToolResult{Success: false, Error: "missing or invalid 'start_date' argument"}, nil
	}

	endDate, ok := args["end_date"].(string)
	if !ok || endDate == "" {
		return &ToolResult{Success: false, Error: "missing or invalid 'end_date' argument"}, nil
	}

	seriesID := t.defaultSeriesID
	if v, ok := args["series_id"].(string); ok && v != "" {
		seriesID = v
	}

	payload, err := t.backend.Fetcher.Fetch(ctx, sie.RangePath(seriesID, startDate, endDate))
	if err != nil {
		return &ToolResult{Success: false, Error: fetchErrorMessage(err)}, nil
	}

	return &ToolResult{Success: true, Output: sie.Format(payload, sie.Generic, 0)}, nil
}
