package probe

import (
	"context"
	"net"
)

// TCPProber checks that a TCP connection to the target address can be
// established within the target timeout.
type TCPProber struct {
	dialer *net.Dialer
}

// NewTCPProber creates a TCP prober.
func NewTCPProber() *TCPProber {
	return &TCPProber{dialer: &net.Dialer{}}
}

// Probe attempts one TCP connect. An established connection is closed
// immediately; the check only cares that something is listening.
func (p *TCPProber) Probe(ctx context.Context, target Target) Outcome {
	ctx, cancel := context.WithTimeout(ctx, target.Timeout)
	defer cancel()

	conn, err := p.dialer.DialContext(ctx, "tcp", target.Address)
	if err != nil {
		return classify(err)
	}
	_ = conn.Close()
	return Success()
}
