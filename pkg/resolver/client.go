package resolver

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"sort"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

var (
	fetchClient     *http.Client
	fetchClientOnce sync.Once
)

// initializeFetchClient creates the shared client used to inspect final
// URLs. Unlike the resolver loop's client it follows redirects, keeps a
// cookie jar (some CDNs set session cookies on the download host), and
// pools connections.
func initializeFetchClient() {
	fetchClientOnce.Do(func() {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			// cookiejar.New never fails with publicsuffix.List; proceed
			// without a jar if it somehow does.
			jar = nil
		}

		transport := &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			DialContext: (&net.Dialer{
				Timeout:   connectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ForceAttemptHTTP2:     true,
		}

		fetchClient = &http.Client{
			Timeout:   30 * time.Second,
			Jar:       jar,
			Transport: transport,
		}
	})
}

// FetchResult encapsulates the outcome of one inspection fetch.
type FetchResult struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	FinalURL   string // URL after any redirects the client followed
}

// Fetch GETs targetURL with the given device header set and returns the
// response details. Used to verify what a device would actually receive
// from a resolved link; not part of the resolution loop itself.
func Fetch(ctx context.Context, targetURL string, headers map[string]string) (*FetchResult, error) {
	initializeFetchClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", targetURL, err)
	}

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		req.Header[name] = []string{headers[name]}
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", targetURL, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", targetURL, err)
	}

	return &FetchResult{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header,
		Body:       bodyBytes,
		FinalURL:   resp.Request.URL.String(),
	}, nil
}
