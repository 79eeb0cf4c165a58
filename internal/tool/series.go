package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"sie-mcp/internal/sie"
)

// SeriesSpec declares one series tool: which catalog series it reads,
// which view of it, how values are styled, and how many points it keeps
// by default. The full tool set is a table of these specs (see catalog.go)
// rather than one bespoke implementation per tool.
type SeriesSpec struct {
	Name        string
	Description string

	// SeriesID is the fixed catalog code this tool reads. Ignored when
	// SeriesByType is set.
	SeriesID string

	// SeriesByType maps a caller-supplied type argument to a catalog
	// code, for tools that expose several related series (e.g. monthly
	// vs annual inflation). TypeArg names the argument, TypeDefault is
	// used when the caller omits it.
	SeriesByType map[string]string
	TypeArg      string
	TypeDefault  string

	// Latest selects the most-recent-value endpoint instead of full history.
	Latest bool

	Domain       sie.Domain
	DefaultLimit int
	AcceptsLimit bool
}

// SeriesTool is a generic data tool driven by a SeriesSpec.
type SeriesTool struct {
	spec    SeriesSpec
	backend Backend
}

// NewSeriesTool creates a tool for the given spec and backend.
func NewSeriesTool(spec SeriesSpec, backend Backend) *SeriesTool {
	return &SeriesTool{spec: spec, backend: backend}
}

// Name returns the tool's identifier.
func (t *SeriesTool) Name() string {
	return t.spec.Name
}

// Description returns what the tool does.
func (t *SeriesTool) Description() string {
	return t.spec.Description
}

// Parameters returns the JSON Schema for the tool's input.
func (t *SeriesTool) Parameters() map[string]interface{} {
	props := map[string]interface{}{}

	if t.spec.TypeArg != "" {
		props[t.spec.TypeArg] = map[string]interface{}{
			"type":        "string",
			"enum":        t.typeNames(),
			"description": fmt.Sprintf("Type of data to retrieve (default: %s)", t.spec.TypeDefault),
		}
	}

	if t.spec.AcceptsLimit {
		props["limit"] = map[string]interface{}{
			"type":        "integer",
			"description": fmt.Sprintf("Maximum number of recent data points to return (default: %d)", t.spec.DefaultLimit),
		}
	}

	return map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
}

// Execute fetches the configured series view and formats it.
func (t *SeriesTool) Execute(ctx context.Context, args map[string]interface{}) (*ToolResult, error) {
	if !t.backend.HasToken {
		return &ToolResult{Success: false, Error: missingTokenMessage}, nil
	}

	seriesID := t.spec.SeriesID
	if t.spec.TypeArg != "" {
		typ := t.spec.TypeDefault
		if v, ok := args[t.spec.TypeArg].(string); ok && v != "" {
			typ = v
		}
		id, ok := t.spec.SeriesByType[typ]
		if !ok {
			return &ToolResult{
				Success: false,
				Error:   fmt.Sprintf("Invalid %s: %q. Available types: %s", t.spec.TypeArg, typ, strings.Join(t.typeNames(), ", ")),
			}, nil
		}
		seriesID = id
	}

	limit := t.spec.DefaultLimit
	if t.spec.AcceptsLimit {
		if v, ok := args["limit"]; ok {
			limit = intArg(v, limit)
		}
	}

	path := sie.HistoryPath(seriesID)
	if t.spec.Latest {
		path = sie.LatestPath(seriesID)
	}

	payload, err := t.backend.Fetcher.Fetch(ctx, path)
	if err != nil {
		return &ToolResult{Success: false, Error: fetchErrorMessage(err)}, nil
	}

	return &ToolResult{Success: true, Output: sie.Format(payload, t.spec.Domain, limit)}, nil
}

func (t *SeriesTool) typeNames() []string {
	names := make([]string, 0, len(t.spec.SeriesByType))
	for name := range t.spec.SeriesByType {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// intArg converts a JSON-decoded argument to an int. JSON numbers
// arrive as float64; plain ints are accepted for callers constructing
// argument maps directly.
func intArg(v interface{}, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return fallback
	}
}
