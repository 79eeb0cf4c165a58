package sie

import "fmt"

// FetchErrorKind classifies how a fetch failed.
type FetchErrorKind int

const (
	// KindTimeout means no response arrived within the client's bound.
	KindTimeout FetchErrorKind = iota
	// KindTransport means a connection-level failure (DNS, refused,
	// reset) before any HTTP status was obtained.
	KindTransport
	// KindHTTPStatus means a response arrived with a status outside
	// the 200-299 range. StatusCode carries the exact code.
	KindHTTPStatus
	// KindDecode means the status was success but the body was not
	// valid JSON or lacked the expected top-level wrapper key.
	KindDecode
)

// String returns a short label for the kind, used in logs.
func (k FetchErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is the failure outcome of Client.Fetch. It carries no
// retry state: the client makes a single attempt and fails fast.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch e.Kind {
	case KindTimeout:
		return "sie: request timed out"
	case KindHTTPStatus:
		return fmt.Sprintf("sie: unexpected HTTP status %d", e.StatusCode)
	case KindDecode:
		if e.Err != nil {
			return fmt.Sprintf("sie: failed to decode response: %v", e.Err)
		}
		return "sie: failed to decode response"
	default:
		if e.Err != nil {
			return fmt.Sprintf("sie: request failed: %v", e.Err)
		}
		return "sie: request failed"
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *FetchError) Unwrap() error {
	return e.Err
}
