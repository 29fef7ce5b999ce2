package probe

import (
	"fmt"
	"time"
)

// OutcomeCode classifies the result of a single probe attempt.
type OutcomeCode int

const (
	// CodeSuccess indicates the target answered as expected.
	CodeSuccess OutcomeCode = iota
	// CodeUnexpectedStatus indicates the target answered with the wrong
	// HTTP status.
	CodeUnexpectedStatus
	// CodeTimeout indicates the attempt did not complete within the
	// target timeout.
	CodeTimeout
	// CodeConnectionRefused indicates nothing was listening at the address.
	CodeConnectionRefused
	// CodeError covers every other failure (DNS, TLS, connection reset, ...).
	CodeError
)

// String returns the stable string form used in structured output.
func (c OutcomeCode) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeUnexpectedStatus:
		return "unexpected_status"
	case CodeTimeout:
		return "timeout"
	case CodeConnectionRefused:
		return "connection_refused"
	case CodeError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of a single probe attempt. Exactly one
// code applies; StatusCode is set only for CodeUnexpectedStatus and Err only
// for CodeError.
type Outcome struct {
	Code       OutcomeCode
	StatusCode int
	Err        error
}

// Success creates a successful outcome.
func Success() Outcome {
	return Outcome{Code: CodeSuccess}
}

// UnexpectedStatus creates an outcome for a reachable target that answered
// with the wrong HTTP status.
func UnexpectedStatus(status int) Outcome {
	return Outcome{Code: CodeUnexpectedStatus, StatusCode: status}
}

// TimedOut creates an outcome for an attempt that exceeded its timeout.
func TimedOut() Outcome {
	return Outcome{Code: CodeTimeout}
}

// Refused creates an outcome for a connection that was actively refused.
func Refused() Outcome {
	return Outcome{Code: CodeConnectionRefused}
}

// Failed creates an outcome for any other transport failure.
func Failed(err error) Outcome {
	return Outcome{Code: CodeError, Err: err}
}

// OK reports whether the attempt succeeded.
func (o Outcome) OK() bool {
	return o.Code == CodeSuccess
}

// String returns a human-readable description of the outcome.
func (o Outcome) String() string {
	switch o.Code {
	case CodeSuccess:
		return "success"
	case CodeUnexpectedStatus:
		return fmt.Sprintf("unexpected status %d", o.StatusCode)
	case CodeTimeout:
		return "timeout"
	case CodeConnectionRefused:
		return "connection refused"
	case CodeError:
		if o.Err != nil {
			return "error: " + o.Err.Error()
		}
		return "error"
	default:
		return "unknown"
	}
}

// Attempt records the outcome of one probe attempt against one target.
type Attempt struct {
	// Target is the probed target. Read-only.
	Target Target

	// Number is the 1-based sequence within the retry budget.
	Number int

	// Outcome classifies the result.
	Outcome Outcome

	// Elapsed is the wall-clock duration of the attempt.
	Elapsed time.Duration

	// StartedAt is when the attempt began.
	StartedAt time.Time
}
