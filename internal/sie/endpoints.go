package sie

import "fmt"

// HistoryPath returns the endpoint path for a series' full history.
func HistoryPath(seriesID string) string {
	return fmt.Sprintf("series/%s/datos", seriesID)
}

// LatestPath returns the endpoint path for a series' most recent value.
func LatestPath(seriesID string) string {
	return fmt.Sprintf("series/%s/datos/oportuno", seriesID)
}

// RangePath returns the endpoint path for an inclusive date-range query.
// Dates must be in YYYY-MM-DD format as required by the upstream API.
func RangePath(seriesID, startDate, endDate string) string {
	return fmt.Sprintf("series/%s/datos/%s/%s", seriesID, startDate, endDate)
}

// MetadataPath returns the endpoint path for a series' metadata.
func MetadataPath(seriesID string) string {
	return fmt.Sprintf("series/%s", seriesID)
}
