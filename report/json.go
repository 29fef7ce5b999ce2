package report

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// The wire model below is the tool's contract with downstream automation.
// Field names are stable; renaming one is a breaking change.

type reportJSON struct {
	RunID                  string                `json:"runId"`
	GeneratedAt            time.Time             `json:"generatedAt"`
	TotalTargets           int                   `json:"totalTargets"`
	HealthyTargets         int                   `json:"healthyTargets"`
	CriticalTargets        int                   `json:"criticalTargets"`
	HealthyCriticalTargets int                   `json:"healthyCriticalTargets"`
	SuccessRate            float64               `json:"successRate"`
	CriticalSuccessRate    float64               `json:"criticalSuccessRate"`
	Ready                  bool                  `json:"ready"`
	PerTarget              map[string]targetJSON `json:"perTarget"`
}

type targetJSON struct {
	Address   string        `json:"address"`
	Critical  bool          `json:"critical"`
	Healthy   bool          `json:"healthy"`
	Cancelled bool          `json:"cancelled,omitempty"`
	Outcome   string        `json:"outcome"`
	Status    int           `json:"statusCode,omitempty"`
	Error     string        `json:"error,omitempty"`
	ElapsedMS float64       `json:"elapsedMs"`
	Attempts  []attemptJSON `json:"attempts"`
}

type attemptJSON struct {
	Number    int       `json:"number"`
	Outcome   string    `json:"outcome"`
	Status    int       `json:"statusCode,omitempty"`
	Error     string    `json:"error,omitempty"`
	ElapsedMS float64   `json:"elapsedMs"`
	StartedAt time.Time `json:"startedAt"`
}

func toWire(r *Report) reportJSON {
	perTarget := make(map[string]targetJSON, len(r.Results))
	for _, res := range r.Results {
		attempts := make([]attemptJSON, 0, len(res.Attempts))
		for _, a := range res.Attempts {
			attempts = append(attempts, attemptJSON{
				Number:    a.Number,
				Outcome:   a.Outcome.Code.String(),
				Status:    a.Outcome.StatusCode,
				Error:     errString(a.Outcome.Err),
				ElapsedMS: float64(a.Elapsed) / float64(time.Millisecond),
				StartedAt: a.StartedAt.UTC(),
			})
		}

		outcome := res.Final.Outcome.Code.String()
		if res.Cancelled {
			outcome = "cancelled"
		}

		perTarget[res.Target.Name] = targetJSON{
			Address:   res.Target.Address,
			Critical:  res.Target.Critical,
			Healthy:   res.Healthy(),
			Cancelled: res.Cancelled,
			Outcome:   outcome,
			Status:    res.Final.Outcome.StatusCode,
			Error:     errString(res.Final.Outcome.Err),
			ElapsedMS: float64(res.Final.Elapsed) / float64(time.Millisecond),
			Attempts:  attempts,
		}
	}

	return reportJSON{
		RunID:                  r.RunID,
		GeneratedAt:            r.GeneratedAt,
		TotalTargets:           r.TotalTargets(),
		HealthyTargets:         r.HealthyTargets(),
		CriticalTargets:        r.CriticalTargets(),
		HealthyCriticalTargets: r.HealthyCriticalTargets(),
		SuccessRate:            r.SuccessRate(),
		CriticalSuccessRate:    r.CriticalSuccessRate(),
		Ready:                  r.Ready(),
		PerTarget:              perTarget,
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// EncodeJSON writes the report as an indented JSON document. Encoding the
// same report twice produces byte-identical output.
func EncodeJSON(w io.Writer, r *Report) error {
	data, err := json.MarshalIndent(toWire(r), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteJSONFile writes the report to path, creating or truncating the file.
func WriteJSONFile(path string, r *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeJSON(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
