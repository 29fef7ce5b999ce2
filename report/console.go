package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// ConsoleReporter renders a report as an aligned per-target table followed
// by a summary block. It is a pure function of the report.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a console reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Render writes the per-target breakdown and summary. The breakdown is
// always complete, even when the run failed, so a reader can see exactly
// which target is unreachable and why.
func (c *ConsoleReporter) Render(r *Report) error {
	tw := tabwriter.NewWriter(c.w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "TARGET\tCRITICAL\tOUTCOME\tELAPSED\tATTEMPTS")
	for _, res := range r.Results {
		outcome := res.Final.Outcome.String()
		if res.Cancelled {
			outcome = "cancelled"
		}

		critical := "-"
		if res.Target.Critical {
			critical = "yes"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			res.Target.Name,
			critical,
			outcome,
			res.Final.Elapsed.Round(time.Millisecond),
			len(res.Attempts),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	verdict := "READY"
	if !r.Ready() {
		verdict = "NOT READY"
	}
	_, err := fmt.Fprintf(c.w, "\n%s: %d/%d targets healthy (%.0f%%), critical %d/%d (%.0f%%)\n",
		verdict,
		r.HealthyTargets(), r.TotalTargets(), r.SuccessRate(),
		r.HealthyCriticalTargets(), r.CriticalTargets(), r.CriticalSuccessRate(),
	)
	return err
}
