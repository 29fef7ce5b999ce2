package probe

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies how a target is probed.
type Kind int

const (
	// KindTCP probes by opening a TCP connection to host:port.
	KindTCP Kind = iota
	// KindHTTP probes by issuing an HTTP GET and comparing the status code.
	KindHTTP
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTCP:
		return "tcp"
	case KindHTTP:
		return "http"
	default:
		return "unknown"
	}
}

// Target is one service endpoint to be health-checked.
type Target struct {
	// Name uniquely identifies the target within a registry.
	Name string

	// Address is a host:port pair for TCP checks or a full URL for HTTP
	// checks.
	Address string

	// HealthPath is an optional URL path appended for HTTP checks
	// (e.g. "/health"). Setting it forces an HTTP check.
	HealthPath string

	// Critical marks targets whose failure degrades overall readiness even
	// when every other target passes.
	Critical bool

	// Timeout bounds a single probe attempt. Required, must be positive.
	Timeout time.Duration

	// ExpectedStatus is the HTTP status code treated as healthy.
	// Zero means http.StatusOK. Only valid for HTTP-kind targets.
	ExpectedStatus int
}

// Kind reports how the target will be probed: HTTP when the address carries
// a URL scheme or a health path is set, TCP otherwise.
func (t Target) Kind() Kind {
	if strings.Contains(t.Address, "://") || t.HealthPath != "" {
		return KindHTTP
	}
	return KindTCP
}

// URL returns the full URL probed for HTTP-kind targets. Bare host:port
// addresses are given an http scheme.
func (t Target) URL() string {
	base := t.Address
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	base = strings.TrimRight(base, "/")

	path := t.HealthPath
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// Validate checks the target invariants: non-empty name and address, a
// positive timeout, and an expected status only on HTTP-kind targets.
func (t Target) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTarget)
	}
	if t.Address == "" {
		return fmt.Errorf("%w: target %q has no address", ErrInvalidTarget, t.Name)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("%w: target %q timeout must be positive, got %s", ErrInvalidTarget, t.Name, t.Timeout)
	}
	if t.ExpectedStatus != 0 {
		if t.Kind() != KindHTTP {
			return fmt.Errorf("%w: target %q sets an expected status but is probed over TCP", ErrInvalidTarget, t.Name)
		}
		if t.ExpectedStatus < 100 || t.ExpectedStatus > 599 {
			return fmt.Errorf("%w: target %q expected status %d is not a valid HTTP status", ErrInvalidTarget, t.Name, t.ExpectedStatus)
		}
	}
	return nil
}
