package sie

import (
	"strconv"
	"strings"
)

// Domain selects the presentation rules applied to a series' values.
type Domain int

const (
	// Generic renders values unchanged.
	Generic Domain = iota
	// Percentage appends "%" to values that parse as numbers; values
	// that do not parse (upstream "not available" sentinels) are
	// rendered unchanged.
	Percentage
	// Currency adds a unit header line when the series carries a
	// non-empty unit; values are rendered unchanged.
	Currency
)

const (
	noDataMessage = "No data available"
	unknownTitle  = "Unknown Series"
)

// Format renders a payload as line-oriented text: one header line per
// series block (title, plus a unit line for the Currency domain),
// followed by one "{date}: {value}" line per retained data point.
//
// A positive limit keeps the last limit points of each block — the
// most recent, assuming upstream chronological order, which Format
// preserves without re-sorting. A limit of zero or below keeps all
// points. A payload with no series yields a single explanatory line;
// the result is never empty. Format is pure: identical inputs always
// produce identical output.
func Format(p *Payload, domain Domain, limit int) string {
	if p == nil || len(p.Series) == 0 {
		return noDataMessage
	}

	var lines []string
	for _, s := range p.Series {
		title := s.Title
		if title == "" {
			title = unknownTitle
		}
		lines = append(lines, title)

		if domain == Currency && s.Unit != "" {
			lines = append(lines, "Unit: "+s.Unit)
		}

		for _, d := range tail(s.Data, limit) {
			lines = append(lines, renderPoint(d, domain))
		}
	}

	return strings.Join(lines, "\n")
}

// FormatMetadata renders series metadata (from the metadata endpoint)
// as labeled lines, one block per series. Missing fields fall back to
// "Unknown" rather than being omitted.
func FormatMetadata(p *Payload) string {
	if p == nil || len(p.Series) == 0 {
		return "No series metadata found"
	}

	blocks := make([]string, 0, len(p.Series))
	for _, s := range p.Series {
		lines := []string{
			"Series ID: " + orUnknown(s.ID),
			"Title: " + orUnknown(s.Title),
			"Start Date: " + orUnknown(s.StartDate),
			"End Date: " + orUnknown(s.EndDate),
			"Frequency: " + orUnknown(s.Frequency),
			"Type: " + orUnknown(s.FigureType),
			"Unit: " + orUnknown(s.Unit),
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

// tail returns the last limit points, or all of them when limit is not
// positive or exceeds the slice length. The upstream order is kept.
func tail(points []DataPoint, limit int) []DataPoint {
	if limit <= 0 || limit >= len(points) {
		return points
	}
	return points[len(points)-limit:]
}

func renderPoint(d DataPoint, domain Domain) string {
	value := d.Value
	if domain == Percentage {
		// Raw value is kept verbatim; only the suffix is added, so
		// non-numeric sentinels pass through untouched.
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			value += "%"
		}
	}
	return d.Date + ": " + value
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
