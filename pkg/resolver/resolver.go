package resolver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	// Marker flags a URL that still needs to be walked: once a redirect
	// target no longer carries it, the chain has reached the real link.
	Marker = "downloadCheck"

	// MaxHops caps the number of request attempts per resolution.
	MaxHops = 10

	connectTimeout = 15 * time.Second
	readTimeout    = 15 * time.Second
)

// Resolver walks a download URL's redirect chain by hand. The download
// servers demand the device header set on every hop and hide the real link
// behind a marker convention, so transport-level redirect following is
// disabled: the resolver sees each raw 3xx, decides, and moves on.
//
// A Resolver is safe for concurrent use; each Resolve call owns its hop
// state and its connections.
type Resolver struct {
	client  *http.Client
	headers *HeaderBuilder
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient replaces the transport, primarily for tests. The client
// must not follow redirects on its own.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) { r.client = c }
}

// New returns a Resolver issuing requests through b's header sets.
func New(b *HeaderBuilder, opts ...Option) *Resolver {
	r := &Resolver{
		headers: b,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				ResponseHeaderTimeout: readTimeout,
				TLSHandshakeTimeout:   connectTimeout,
				// One connection per hop, released before the loop
				// continues. Reuse across calls is a non-goal.
				DisableKeepAlives: true,
			},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve turns originalURL into its final, directly-fetchable form.
//
// URLs without the marker are already final and are returned unchanged with
// no network access. Otherwise each hop GETs the current URL with a fresh
// header set and classifies the response:
//
//   - 3xx with a Location that lost the marker: the raw Location text is
//     the result, returned without following it (even when relative).
//   - 3xx otherwise: continue with Location resolved against the current
//     URL per RFC 3986.
//   - 200: the response's effective URL is the result.
//   - anything else: *UnexpectedStatusError.
//
// A 3xx without Location fails with *MissingLocationError, and a chain that
// outlives MaxHops attempts with *TooManyRedirectsError. Transport errors
// propagate unchanged; every response body is drained and closed before the
// loop moves on or returns. Cancelling ctx tears down the in-flight
// connection.
func (r *Resolver) Resolve(ctx context.Context, originalURL string) (string, error) {
	if !containsMarker(originalURL) {
		return originalURL, nil
	}

	current := originalURL
	for hop := 0; hop < MaxHops; hop++ {
		resp, err := r.fetch(ctx, current)
		if err != nil {
			return "", err
		}

		switch {
		case isRedirectStatus(resp.StatusCode):
			location := resp.Header.Get("Location")
			status := resp.StatusCode
			release(resp)
			if location == "" {
				return "", &MissingLocationError{URL: current, Status: status}
			}
			next, err := resolveReference(current, location)
			if err != nil {
				return "", err
			}
			if !containsMarker(location) {
				// Early exit: hand back the Location text exactly as
				// received, not the resolved absolute form.
				return location, nil
			}
			current = next

		case resp.StatusCode == http.StatusOK:
			final := resp.Request.URL.String()
			release(resp)
			return final, nil

		default:
			code := resp.StatusCode
			release(resp)
			return "", &UnexpectedStatusError{Code: code, URL: current}
		}
	}

	return "", &TooManyRedirectsError{Limit: MaxHops, URL: originalURL}
}

// fetch issues one GET to rawURL with a freshly built header set. Header
// names are written into the request map directly so their mixed case
// survives on the wire.
func (r *Resolver) fetch(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	headers := r.headers.Build(rawURL)
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		req.Header[name] = []string{headers[name]}
	}

	return r.client.Do(req)
}

func containsMarker(s string) bool {
	return strings.Contains(s, Marker)
}

// resolveReference resolves location against base per RFC 3986 section 5.3.
func resolveReference(base, location string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(ref).String(), nil
}

// release drains and closes a response body so the underlying connection is
// returned cleanly before the loop continues or the call returns.
func release(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
