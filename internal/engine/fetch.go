package engine

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	appver "github.com/MOYARU/bulletin/internal/version"
	"golang.org/x/net/publicsuffix"
)

var ErrUnexpectedStatus = errors.New("unexpected response status")

type FetchResult struct {
	InitialURL *url.URL
	FinalURL   *url.URL
	StatusCode int
	Body       []byte
	Redirected bool
	Requests   int64
	Elapsed    time.Duration
}

// Fetch downloads the page at target. Redirects are followed while they stay
// on the target's registrable domain and within the request budget.
func Fetch(ctx context.Context, target string) (*FetchResult, error) {
	initialURL, err := NormalizeTarget(target)
	if err != nil {
		return nil, err
	}

	metrics := &MetricsTransport{}
	client := NewHTTPClient()
	metrics.Base = client.Transport
	client.Transport = &RequestBudgetTransport{
		Max: maxRedirects + 1,
		Base: &DomainBoundaryTransport{
			AllowedRootDomain: rootDomain(initialURL.Hostname()),
			Base:              metrics,
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, initialURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", appver.UserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	result := &FetchResult{
		InitialURL: initialURL,
		FinalURL:   resp.Request.URL,
		StatusCode: resp.StatusCode,
		Redirected: resp.Request.URL.String() != initialURL.String(),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := DecodeResponseBody(resp)
	if err != nil {
		return nil, err
	}
	result.Body = body
	result.Requests, result.Elapsed = metrics.Snapshot()
	return result, nil
}

// NormalizeTarget defaults a scheme-less target to https.
func NormalizeTarget(target string) (*url.URL, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, err
	}

	if parsed.Scheme == "" {
		return url.Parse("https://" + target)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid target URL: %s", target)
	}

	return parsed, nil
}

func rootDomain(host string) string {
	if net.ParseIP(host) != nil {
		return host
	}
	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return root
}
