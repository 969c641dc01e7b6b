package errors

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseObjectID converts a command-line argument to an object ID.
// Only syntax is checked: the collection decides which IDs exist, so
// negative or unknown IDs are left to the API to reject with a 404.
func ParseObjectID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidObjectID, "invalid object id %q: must be an integer", s)
	}
	return id, nil
}

// ValidateBaseURL checks that rawURL is an absolute http or https URL.
func ValidateBaseURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "base URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "invalid base URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidURL, "base URL must use http or https scheme: %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "base URL has no host: %q", rawURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidURL, "base URL cannot carry a query or fragment: %q", rawURL)
	}
	return nil
}

// ValidateDateRange checks that a search's year range is not inverted.
func ValidateDateRange(begin, end int) error {
	if begin > end {
		return New(ErrCodeInvalidDateRange, "date range is inverted: begin %d is after end %d", begin, end)
	}
	return nil
}
