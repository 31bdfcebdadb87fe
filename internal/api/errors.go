package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
)

// ErrorKind is the category of an API failure.
type ErrorKind int

const (
	// KindNetwork is a transport failure (connection refused, DNS, reset)
	KindNetwork ErrorKind = iota
	// KindTimeout is a request that exceeded the configured timeout
	KindTimeout
	// KindHTTP is a non-2xx response
	KindHTTP
	// KindParse is a response body that is not the expected JSON
	KindParse
)

// String returns a human-readable name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "Network Error"
	case KindTimeout:
		return "Timeout"
	case KindHTTP:
		return "HTTP Error"
	case KindParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is returned by every Client method.
type Error struct {
	Kind       ErrorKind
	Message    string // For KindHTTP, the detail reported by the backend
	StatusCode int    // Set for KindHTTP
	Err        error  // Underlying error, if any
}

// Error implements the error interface. HTTP errors render as the backend's
// detail alone so it can be shown to the user verbatim.
func (e *Error) Error() string {
	if e.Kind == KindHTTP || e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNetworkError classifies a transport error as network or timeout.
func NewNetworkError(message string, err error) *Error {
	kind := KindNetwork
	var netErr net.Error
	if os.IsTimeout(err) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewHTTPError creates an error for a non-2xx response
func NewHTTPError(statusCode int, detail string) *Error {
	return &Error{Kind: KindHTTP, Message: detail, StatusCode: statusCode}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *Error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

func kindOf(err error) (ErrorKind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsNetworkError reports whether err is a transport failure, timeouts included
func IsNetworkError(err error) bool {
	kind, ok := kindOf(err)
	return ok && (kind == KindNetwork || kind == KindTimeout)
}

// IsTimeout reports whether err is a request timeout
func IsTimeout(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindTimeout
}

// IsHTTPError reports whether err is a non-2xx response
func IsHTTPError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindHTTP
}

// IsParseError reports whether err is a malformed response
func IsParseError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindParse
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// errorFromResponse builds the error for a non-2xx response. The body must
// be JSON; its "detail" field is used verbatim when it is a string and
// JSON-encoded otherwise. A missing or falsy detail yields fallback.
func errorFromResponse(statusCode int, body []byte, fallback string) error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return NewParseError(fmt.Sprintf("failed to parse error response (HTTP %d)", statusCode), err)
	}

	generic := fmt.Sprintf("%s (HTTP %d)", fallback, statusCode)
	detail := bytes.TrimSpace(payload.Detail)

	if isFalsy(detail) {
		return NewHTTPError(statusCode, generic)
	}

	var text string
	if err := json.Unmarshal(detail, &text); err == nil {
		return NewHTTPError(statusCode, text)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, detail); err != nil {
		return NewHTTPError(statusCode, generic)
	}
	return NewHTTPError(statusCode, compact.String())
}

// isFalsy reports whether a raw JSON value is absent, null, false, "" or 0.
func isFalsy(raw []byte) bool {
	switch string(raw) {
	case "", "null", "false", `""`:
		return true
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n == 0
	}
	return false
}

// Troubleshooting returns hints to show next to err.
func Troubleshooting(err error) []string {
	kind, ok := kindOf(err)
	if !ok {
		return nil
	}

	switch kind {
	case KindTimeout:
		return []string{
			"The backend did not answer in time",
			"Generation can take a while; try a larger --timeout",
		}
	case KindNetwork:
		return []string{
			"Check that the BuildIT backend is running",
			"Verify the API URL (--api-url or BUILDIT_API_URL)",
			"Run 'buildit health' to probe the backend",
		}
	case KindHTTP:
		if StatusCode(err) == 503 {
			return []string{
				"The backend is up but a dependency is unavailable",
				"Check its database connection and LLM API keys",
			}
		}
		if StatusCode(err) >= 500 {
			return []string{"The backend failed to generate a plan; try again"}
		}
		return []string{"Adjust the selection or goal and try again"}
	case KindParse:
		return []string{
			"The response was not valid JSON",
			"Check that the API URL points at the BuildIT backend, not a proxy or web page",
		}
	}
	return nil
}
