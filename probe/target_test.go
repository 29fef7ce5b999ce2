package probe

import (
	"errors"
	"testing"
	"time"
)

func TestTarget_Kind(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   Kind
	}{
		{"bare host:port", Target{Address: "localhost:5432"}, KindTCP},
		{"http url", Target{Address: "http://localhost:8080"}, KindHTTP},
		{"https url", Target{Address: "https://example.com"}, KindHTTP},
		{"health path forces http", Target{Address: "localhost:8080", HealthPath: "/health"}, KindHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTCP, "tcp"},
		{KindHTTP, "http"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTarget_URL(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{"bare address gets scheme", Target{Address: "localhost:8080"}, "http://localhost:8080"},
		{"path appended", Target{Address: "localhost:8080", HealthPath: "/health"}, "http://localhost:8080/health"},
		{"missing slash added", Target{Address: "localhost:8080", HealthPath: "health"}, "http://localhost:8080/health"},
		{"trailing slash trimmed", Target{Address: "http://localhost:8080/", HealthPath: "/health"}, "http://localhost:8080/health"},
		{"scheme preserved", Target{Address: "https://api.internal", HealthPath: "/readyz"}, "https://api.internal/readyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.URL(); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTarget_Validate(t *testing.T) {
	valid := Target{Name: "api", Address: "localhost:8080", Timeout: time.Second}

	tests := []struct {
		name    string
		mutate  func(Target) Target
		wantErr bool
	}{
		{"valid", func(t Target) Target { return t }, false},
		{"missing name", func(t Target) Target { t.Name = ""; return t }, true},
		{"missing address", func(t Target) Target { t.Address = ""; return t }, true},
		{"zero timeout", func(t Target) Target { t.Timeout = 0; return t }, true},
		{"negative timeout", func(t Target) Target { t.Timeout = -time.Second; return t }, true},
		{"expected status on tcp target", func(t Target) Target { t.ExpectedStatus = 200; return t }, true},
		{"expected status on http target", func(t Target) Target {
			t.HealthPath = "/health"
			t.ExpectedStatus = 204
			return t
		}, false},
		{"expected status out of range", func(t Target) Target {
			t.HealthPath = "/health"
			t.ExpectedStatus = 9999
			return t
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("Validate() error = %v, want ErrInvalidTarget", err)
			}
		})
	}
}
