package engine

import (
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
)

var ErrRequestBudgetExceeded = errors.New("request budget exceeded")

// RequestBudgetTransport caps the requests one fetch may make. Every redirect
// hop passes through it, so the cap is also the redirect limit.
type RequestBudgetTransport struct {
	Base http.RoundTripper
	Max  int64
	used atomic.Int64
}

func (t *RequestBudgetTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if n := t.used.Add(1); t.Max > 0 && n > t.Max {
		return nil, fmt.Errorf("%w: %d requests used, refusing %s", ErrRequestBudgetExceeded, t.Max, req.URL.Redacted())
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
