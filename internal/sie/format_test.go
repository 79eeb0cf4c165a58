package sie

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usdMXNPayload() *Payload {
	return &Payload{
		Series: []Series{
			{
				Title: "USD/MXN",
				Data: []DataPoint{
					{Date: "01/01/2024", Value: "16.50"},
					{Date: "02/01/2024", Value: "16.55"},
				},
			},
		},
	}
}

func TestFormat_GenericWithLimit(t *testing.T) {
	got := Format(usdMXNPayload(), Generic, 1)
	assert.Equal(t, "USD/MXN\n02/01/2024: 16.55", got)
}

func TestFormat_GenericNoLimit(t *testing.T) {
	got := Format(usdMXNPayload(), Generic, 0)
	assert.Equal(t, "USD/MXN\n01/01/2024: 16.50\n02/01/2024: 16.55", got)
}

func TestFormat_NegativeLimitMeansNoLimit(t *testing.T) {
	assert.Equal(t, Format(usdMXNPayload(), Generic, 0), Format(usdMXNPayload(), Generic, -5))
}

func TestFormat_LimitLargerThanData(t *testing.T) {
	got := Format(usdMXNPayload(), Generic, 100)
	assert.Equal(t, "USD/MXN\n01/01/2024: 16.50\n02/01/2024: 16.55", got)
}

func TestFormat_Percentage(t *testing.T) {
	p := &Payload{
		Series: []Series{
			{
				Title: "Monthly Inflation",
				Data: []DataPoint{
					{Date: "01/01/2024", Value: "4.5"},
				},
			},
		},
	}
	got := Format(p, Percentage, 0)
	assert.Equal(t, "Monthly Inflation\n01/01/2024: 4.5%", got)
}

func TestFormat_PercentageNonNumericSentinel(t *testing.T) {
	p := &Payload{
		Series: []Series{
			{
				Title: "Monthly Inflation",
				Data: []DataPoint{
					{Date: "01/01/2024", Value: "N/A"},
					{Date: "01/02/2024", Value: "N/E"},
				},
			},
		},
	}
	got := Format(p, Percentage, 0)
	assert.Equal(t, "Monthly Inflation\n01/01/2024: N/A\n01/02/2024: N/E", got)
	assert.NotContains(t, got, "%")
}

func TestFormat_CurrencyUnitLine(t *testing.T) {
	p := &Payload{
		Series: []Series{
			{
				Title: "International Reserves",
				Unit:  "Millones de Dólares",
				Data: []DataPoint{
					{Date: "05/01/2024", Value: "212970.1"},
				},
			},
		},
	}
	got := Format(p, Currency, 0)
	assert.Equal(t, "International Reserves\nUnit: Millones de Dólares\n05/01/2024: 212970.1", got)
}

func TestFormat_CurrencyWithoutUnitOmitsUnitLine(t *testing.T) {
	p := &Payload{
		Series: []Series{
			{
				Title: "International Reserves",
				Data: []DataPoint{
					{Date: "05/01/2024", Value: "212970.1"},
				},
			},
		},
	}
	got := Format(p, Currency, 0)
	assert.Equal(t, "International Reserves\n05/01/2024: 212970.1", got)
}

func TestFormat_EmptySeries(t *testing.T) {
	assert.Equal(t, "No data available", Format(&Payload{}, Generic, 0))
	assert.Equal(t, "No data available", Format(nil, Percentage, 10))
}

func TestFormat_MissingTitleFallsBack(t *testing.T) {
	p := &Payload{
		Series: []Series{
			{
				Data: []DataPoint{{Date: "01/01/2024", Value: "1.0"}},
			},
		},
	}
	got := Format(p, Generic, 0)
	assert.Equal(t, "Unknown Series\n01/01/2024: 1.0", got)
}

func TestFormat_BlockWithNoDataKeepsHeader(t *testing.T) {
	p := &Payload{Series: []Series{{Title: "USD/MXN"}}}
	assert.Equal(t, "USD/MXN", Format(p, Generic, 0))
}

func TestFormat_Idempotent(t *testing.T) {
	p := usdMXNPayload()
	first := Format(p, Percentage, 1)
	second := Format(p, Percentage, 1)
	assert.Equal(t, first, second)
}

// The concrete end-to-end scenario: decode the upstream envelope, then
// format with domain Generic and limit 1.
func TestFormat_DecodedEnvelopeScenario(t *testing.T) {
	raw := `{"bmx":{"series":[{"titulo":"USD/MXN","datos":[{"fecha":"01/01/2024","dato":"16.50"},{"fecha":"02/01/2024","dato":"16.55"}]}]}}`

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	require.NotNil(t, env.BMX)

	got := Format(env.BMX, Generic, 1)
	assert.Equal(t, "USD/MXN\n02/01/2024: 16.55", got)
}

func TestFormatMetadata(t *testing.T) {
	p := &Payload{
		Series: []Series{
			{
				ID:         "SF63528",
				Title:      "USD/MXN Exchange Rate",
				StartDate:  "12/11/1991",
				EndDate:    "20/08/2026",
				Frequency:  "Diaria",
				FigureType: "Tipo de Cambio",
				Unit:       "Pesos por Dólar",
			},
		},
	}
	got := FormatMetadata(p)
	assert.Equal(t,
		"Series ID: SF63528\n"+
			"Title: USD/MXN Exchange Rate\n"+
			"Start Date: 12/11/1991\n"+
			"End Date: 20/08/2026\n"+
			"Frequency: Diaria\n"+
			"Type: Tipo de Cambio\n"+
			"Unit: Pesos por Dólar",
		got)
}

func TestFormatMetadata_MissingFields(t *testing.T) {
	p := &Payload{Series: []Series{{ID: "SL1"}}}
	got := FormatMetadata(p)
	assert.Contains(t, got, "Series ID: SL1")
	assert.Contains(t, got, "Title: Unknown")
	assert.Contains(t, got, "Unit: Unknown")
}

func TestFormatMetadata_Empty(t *testing.T) {
	assert.Equal(t, "No series metadata found", FormatMetadata(&Payload{}))
	assert.Equal(t, "No series metadata found", FormatMetadata(nil))
}
