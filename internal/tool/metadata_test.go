package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sie-mcp/internal/sie"
)

func metadataPayload() *sie.Payload {
	return &sie.Payload{
		Series: []sie.Series{
			{
				ID:        "SF63528",
				Title:     "USD/MXN Exchange Rate",
				Frequency: "Diaria",
				Unit:      "Pesos por Dólar",
			},
		},
	}
}

func TestMetadataTool_DefaultSeries(t *testing.T) {
	fetcher := &stubFetcher{payload: metadataPayload()}
	tool := NewMetadataTool(backendWith(fetcher), SeriesUSDMXN)

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "series/SF63528", fetcher.gotPath)
	assert.Contains(t, result.Output, "Series ID: SF63528")
	assert.Contains(t, result.Output, "Frequency: Diaria")
}

func TestMetadataTool_ExplicitSeries(t *testing.T) {
	fetcher := &stubFetcher{payload: metadataPayload()}
	tool := NewMetadataTool(backendWith(fetcher), SeriesUSDMXN)

	_, err := tool.Execute(context.Background(), map[string]interface{}{"series_id": "SL1"})
	require.NoError(t, err)
	assert.Equal(t, "series/SL1", fetcher.gotPath)
}

func TestMetadataTool_FetchError(t *testing.T) {
	fetcher := &stubFetcher{err: &sie.FetchError{Kind: sie.KindHTTPStatus, StatusCode: 500}}
	tool := NewMetadataTool(backendWith(fetcher), SeriesUSDMXN)

	result, err := tool.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "500")
}

func TestDateRangeTool_BuildsRangePath(t *testing.T) {
	fetcher := &stubFetcher{payload: ratePayload()}
	tool := NewDateRangeTool(backendWith(fetcher), SeriesUSDMXN)

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "series/SF63528/datos/2024-01-01/2024-01-31", fetcher.gotPath)
}

func TestDateRangeTool_ExplicitSeries(t *testing.T) {
	fetcher := &stubFetcher{payload: ratePayload()}
	tool := NewDateRangeTool(backendWith(fetcher), SeriesUSDMXN)

	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"start_date": "2024-01-01",
		"end_date":   "2024-01-31",
		"series_id":  "SP68257",
	})
	require.NoError(t, err)
	assert.Equal(t, "series/SP68257/datos/2024-01-01/2024-01-31", fetcher.gotPath)
}

func TestDateRangeTool_MissingDates(t *testing.T) {
	fetcher := &stubFetcher{payload: ratePayload()}
	tool := NewDateRangeTool(backendWith(fetcher), SeriesUSDMXN)

	result, err := tool.Execute(context.Background(), map[string]interface{}{"start_date": "2024-01-01"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "end_date")
	assert.Empty(t, fetcher.gotPath)
}
