package threecommas

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials is returned by New when the API key or secret is empty.
	ErrMissingCredentials = errors.New("missing 3commas API credentials")

	// ErrUnsupportedValue is wrapped by EncodingError when a parameter value
	// cannot be rendered on the wire.
	ErrUnsupportedValue = errors.New("unsupported parameter value")

	// ErrDuplicateKey is wrapped by EncodingError when two parameter names map
	// to the same wire name within one request.
	ErrDuplicateKey = errors.New("duplicate parameter key")
)

// EncodingError reports a parameter that could not be canonicalized or
// stringified. It is always returned before any network call is made.
type EncodingError struct {
	Key string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding parameter %q: %v", e.Key, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// TransportError reports a request for which no HTTP response was received:
// DNS failure, refused connection, timeout or an interrupted body read.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("3commas transport error (%s %s): %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx response. Body holds the raw response body
// exactly as received.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("3commas API error (status %d): %s", e.StatusCode, string(e.Body))
}

// ErrorBody is the error envelope 3Commas uses for rejected requests.
type ErrorBody struct {
	Error            string         `json:"error"`
	ErrorDescription string         `json:"error_description"`
	ErrorAttributes  map[string]any `json:"error_attributes,omitempty"`
}

// Decode parses Body as the 3Commas error envelope. It returns false when the
// body is not a JSON object.
func (e *APIError) Decode() (ErrorBody, bool) {
	var eb ErrorBody
	if err := json.Unmarshal(e.Body, &eb); err != nil {
		return ErrorBody{}, false
	}
	return eb, true
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// (and does not wrap) an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
