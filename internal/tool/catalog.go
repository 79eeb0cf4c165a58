package tool

import "sie-mcp/internal/sie"

// SIE catalog codes for the series exposed by this server.
const (
	SeriesUSDMXN               = "SF63528"
	SeriesMonthlyInflation     = "SP30577"
	SeriesAnnualInflation      = "SP30578"
	SeriesAccumulatedInflation = "SP30579"
	SeriesUDIS                 = "SP68257"
	SeriesCETES28              = "SF282"
	SeriesReserves             = "SF308843"
	SeriesUnemployment         = "SL1"
)

// seriesSpecs is the declarative table of data tools. Each entry fixes
// the (series, endpoint view, formatting domain, default limit) tuple
// for one tool; SeriesTool interprets the rest.
var seriesSpecs = []SeriesSpec{
	{
		Name:        "get_latest_usd_mxn_rate",
		Description: "Gets the latest USD/MXN exchange rate from Banxico",
		SeriesID:    SeriesUSDMXN,
		Latest:      true,
		Domain:      sie.Generic,
	},
	{
		Name:         "get_usd_mxn_historical_data",
		Description:  "Gets historical USD/MXN exchange rate data from Banxico",
		SeriesID:     SeriesUSDMXN,
		Domain:       sie.Generic,
		DefaultLimit: 30,
		AcceptsLimit: true,
	},
	{
		Name:        "get_inflation_data",
		Description: "Gets inflation data from Banxico, formatted as percentages",
		SeriesByType: map[string]string{
			"monthly":     SeriesMonthlyInflation,
			"accumulated": SeriesAccumulatedInflation,
			"annual":      SeriesAnnualInflation,
		},
		TypeArg:      "inflation_type",
		TypeDefault:  "monthly",
		Domain:       sie.Percentage,
		DefaultLimit: 12,
		AcceptsLimit: true,
	},
	{
		Name:         "get_udis_data",
		Description:  "Gets UDIS (Investment Units) values from Banxico",
		SeriesID:     SeriesUDIS,
		Domain:       sie.Generic,
		DefaultLimit: 30,
		AcceptsLimit: true,
	},
	{
		Name:         "get_cetes_28_data",
		Description:  "Gets CETES 28-day interest rate data from Banxico",
		SeriesID:     SeriesCETES28,
		Domain:       sie.Percentage,
		DefaultLimit: 30,
		AcceptsLimit: true,
	},
	{
		Name:         "get_banxico_reserves_data",
		Description:  "Gets Banxico international reserve assets data",
		SeriesID:     SeriesReserves,
		Domain:       sie.Currency,
		DefaultLimit: 30,
		AcceptsLimit: true,
	},
	{
		// Two years of monthly observations by default.
		Name:         "get_unemployment_data",
		Description:  "Gets unemployment rate data from Banxico",
		SeriesID:     SeriesUnemployment,
		Domain:       sie.Percentage,
		DefaultLimit: 24,
		AcceptsLimit: true,
	},
}

// Catalog returns every tool exposed by the server, bound to the given
// backend.
func Catalog(backend Backend) []Tool {
	tools := []Tool{NewHealthTool()}
	for _, spec := range seriesSpecs {
		tools = append(tools, NewSeriesTool(spec, backend))
	}
	tools = append(tools,
		NewMetadataTool(backend, SeriesUSDMXN),
		NewDateRangeTool(backend, SeriesUSDMXN),
	)
	return tools
}
