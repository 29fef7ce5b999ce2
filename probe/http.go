package probe

import (
	"context"
	"io"
	"net/http"
)

// maxDrainBytes bounds how much of a health response body is read before
// closing, enough to let the connection be reused.
const maxDrainBytes = 8 << 10

// HTTPProber issues a GET against the target URL and compares the response
// status against the target's expected status (200 when unset).
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber creates an HTTP prober. A nil client gets a plain
// http.Client; per-attempt deadlines come from the target timeout, not the
// client.
func NewHTTPProber(client *http.Client) *HTTPProber {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPProber{client: client}
}

// Probe attempts one HTTP GET against target.URL().
func (p *HTTPProber) Probe(ctx context.Context, target Target) Outcome {
	ctx, cancel := context.WithTimeout(ctx, target.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL(), nil)
	if err != nil {
		return Failed(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return classify(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		_ = resp.Body.Close()
	}()

	expected := target.ExpectedStatus
	if expected == 0 {
		expected = http.StatusOK
	}
	if resp.StatusCode != expected {
		return UnexpectedStatus(resp.StatusCode)
	}
	return Success()
}
