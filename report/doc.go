// Package report aggregates the results of probing a target registry and
// renders them for humans and machines.
//
// A Report is created fresh for every run and never mutated afterwards;
// re-probing produces a new report. Renderers are pure functions of the
// report: they never re-probe, and rendering the same report twice produces
// identical output.
//
// Two renderers ship with the package: a console table with a summary block,
// and a JSON document with stable field names for downstream automation
// (no emoji, no ANSI codes).
package report
