package engine

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrCrossDomain = errors.New("blocked cross-domain request")

// DomainBoundaryTransport blocks requests, redirects included, outside the
// allowed root domain.
type DomainBoundaryTransport struct {
	Base              http.RoundTripper
	AllowedRootDomain string
}

func (t *DomainBoundaryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	host := strings.ToLower(req.URL.Hostname())
	if host == "" {
		return nil, fmt.Errorf("blocked request: empty host")
	}
	allowed := strings.ToLower(strings.TrimSpace(t.AllowedRootDomain))
	if allowed != "" {
		if host != allowed && rootDomain(host) != allowed && !strings.HasSuffix(host, "."+allowed) {
			return nil, fmt.Errorf("%w: %s (allowed root: %s)", ErrCrossDomain, host, allowed)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
