package tool

import (
	"errors"
	"fmt"

	"sie-mcp/internal/sie"
)

// missingTokenMessage is returned by every data tool when no access
// token was configured. The upstream API is never contacted in that case.
const missingTokenMessage = "Error: BANXICO_API_TOKEN environment variable not set. Please configure your API token."

// fetchErrorMessage maps each fetch failure kind to one fixed
// human-readable message.
func fetchErrorMessage(err error) string {
	var fe *sie.FetchError
	if errors.As(err, &fe) {
		switch fe.Kind {
		case sie.KindTimeout:
			return "The request to the Banxico API timed out. Please try again later."
		case sie.KindTransport:
			return "Failed to reach the Banxico API. Please check your network connection."
		case sie.KindHTTPStatus:
			return fmt.Sprintf("The Banxico API returned HTTP status %d. Please check your API token.", fe.StatusCode)
		case sie.KindDecode:
			return "The Banxico API returned an unexpected response. Please try again later."
		}
	}
	return "Failed to retrieve data. Please check your API token and network connection."
}
