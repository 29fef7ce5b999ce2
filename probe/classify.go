package probe

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// classify maps a transport error onto the outcome taxonomy. Timeouts,
// refused connections, and everything else must land in distinct variants;
// downstream messages depend on the distinction ("not started" vs "started
// but unhealthy").
func classify(err error) Outcome {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return TimedOut()
	case errors.Is(err, syscall.ECONNREFUSED):
		return Refused()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return TimedOut()
	}

	return Failed(err)
}
