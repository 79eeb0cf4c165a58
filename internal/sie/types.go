// Package sie provides a client and formatter for the Bank of Mexico
// SIE REST API (Sistema de Información Económica). It is the shared
// fetch-and-format pipeline that every exposed tool specializes.
package sie

// envelope is the fixed top-level wrapper the SIE API nests every
// response under.
type envelope struct {
	BMX *Payload `json:"bmx"`
}

// Payload is the decoded body of a SIE response: zero or more series
// blocks in upstream order.
type Payload struct {
	Series []Series `json:"series"`
}

// Series is one economic data series block. Metadata fields are only
// populated by the metadata endpoint; data endpoints fill Title and Data.
type Series struct {
	ID         string      `json:"idSerie"`
	Title      string      `json:"titulo"`
	Unit       string      `json:"unidad"`
	Frequency  string      `json:"periodicidad"`
	StartDate  string      `json:"fechaInicio"`
	EndDate    string      `json:"fechaFin"`
	FigureType string      `json:"cifra"`
	Data       []DataPoint `json:"datos"`
}

// DataPoint is a single observation. Date uses the upstream DD/MM/YYYY
// format. Value is kept as the raw string because upstream uses
// non-numeric sentinels such as "N/E" for unavailable observations.
type DataPoint struct {
	Date  string `json:"fecha"`
	Value string `json:"dato"`
}
