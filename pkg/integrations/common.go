package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotFound matches a [*StatusError] carrying 404 via errors.Is.
var ErrNotFound = errors.New("resource not found")

// StatusError is returned when an API responds with a status outside 200-299.
// The response body is never inspected.
type StatusError struct {
	API        string // API name, e.g. "MET API"
	StatusCode int    // HTTP status code
}

// Error returns "<API> error: <status>", e.g. "MET API error: 503".
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s error: %d", e.API, e.StatusCode)
}

// Is reports whether target is [ErrNotFound] and the status was 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// StatusCode extracts the HTTP status from err if it wraps a [*StatusError].
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}

// NewHTTPClient creates the HTTP client used when none is supplied.
// It sets no timeout; deadlines come from the request context.
func NewHTTPClient() *http.Client {
	return &http.Client{}
}

// formEscaper moves [url.QueryEscape] output onto the
// application/x-www-form-urlencoded byte set browsers use: '*' is left
// literal and '~' is escaped.
var formEscaper = strings.NewReplacer("%2A", "*", "~", "%7E")

// URLEncode form-encodes a string for use in a query: spaces become '+',
// and only ASCII letters, digits and "*-._" are left unescaped.
func URLEncode(s string) string { return formEscaper.Replace(url.QueryEscape(s)) }

// Param is a single encoded query parameter.
type Param struct {
	Key   string
	Value string
}

// EncodeQuery form-encodes params in the given order.
// Unlike [url.Values.Encode], keys are not sorted.
func EncodeQuery(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(URLEncode(p.Key))
		b.WriteByte('=')
		b.WriteString(URLEncode(p.Value))
	}
	return b.String()
}
