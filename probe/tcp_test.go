package probe

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestTCPProber_Success(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer func() { _ = ln.Close() }()

	target := Target{Name: "db", Address: ln.Addr().String(), Timeout: time.Second}
	outcome := NewTCPProber().Probe(context.Background(), target)

	if !outcome.OK() {
		t.Fatalf("Probe() = %v, want success", outcome)
	}
}

func TestTCPProber_ConnectionRefused(t *testing.T) {
	target := Target{Name: "db", Address: freeAddr(t), Timeout: time.Second}
	outcome := NewTCPProber().Probe(context.Background(), target)

	if outcome.Code != CodeConnectionRefused && outcome.Code != CodeTimeout {
		t.Fatalf("Probe().Code = %v, want CodeConnectionRefused or CodeTimeout", outcome.Code)
	}
}

func TestDefaultProber_Dispatch(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer func() { _ = ln.Close() }()

	// A bare host:port goes through the TCP path even when the listener
	// speaks no HTTP.
	target := Target{Name: "raw", Address: ln.Addr().String(), Timeout: time.Second}
	if outcome := New().Probe(context.Background(), target); !outcome.OK() {
		t.Fatalf("Probe() = %v, want success", outcome)
	}
}
