package resolver

import (
	"errors"
	"fmt"
	"net/http"
)

// MissingLocationError is returned when a 3xx response carries no Location
// header, leaving the resolver nowhere to go.
type MissingLocationError struct {
	// URL is the URL that produced the broken redirect.
	URL string
	// Status is the 3xx status code of the response.
	Status int
}

func (e *MissingLocationError) Error() string {
	return "Redirect without Location header"
}

// UnexpectedStatusError is returned for any response code outside
// {200, 300..399}.
type UnexpectedStatusError struct {
	// Code is the offending status code.
	Code int
	// URL is the URL that produced it.
	URL string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("Unexpected response code: %d", e.Code)
}

// TooManyRedirectsError is returned when the hop limit is exhausted without
// reaching a final URL.
type TooManyRedirectsError struct {
	// Limit is the hop cap that was hit.
	Limit int
	// URL is the original URL whose chain never terminated.
	URL string
}

func (e *TooManyRedirectsError) Error() string {
	return "Too many redirects"
}

// ErrorKind maps a resolution failure to a short machine-readable label for
// API responses and logs. Transport failures (anything not produced by the
// classifier above) report as "transport".
func ErrorKind(err error) string {
	var (
		missing    *MissingLocationError
		unexpected *UnexpectedStatusError
		tooMany    *TooManyRedirectsError
	)
	switch {
	case errors.As(err, &missing):
		return "missing_location"
	case errors.As(err, &unexpected):
		return "unexpected_status"
	case errors.As(err, &tooMany):
		return "too_many_redirects"
	default:
		return "transport"
	}
}

// isRedirectStatus reports whether code is in the 3xx range the resolver
// treats as a redirect.
func isRedirectStatus(code int) bool {
	return code >= http.StatusMultipleChoices && code < http.StatusBadRequest
}
