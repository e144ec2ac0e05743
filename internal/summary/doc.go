// Package summary is the report synthesis core of satlens.
//
// It turns a collection of optional, independently-parsed log blocks into a
// single consistent Report:
//   - Registry: looks up the unique block of each kind, with a configurable
//     policy for malformed logs that carry duplicates.
//   - Derivers: pure, total functions computing one display-ready metric
//     each, tolerant of any block being absent.
//   - Assembler: runs the registry and the derivers and composes the ordered
//     Report, isolating per-metric failures.
//
// Error policy: a missing block or an unparsable field is contained inside
// its deriver and surfaces only as that metric's absent value. The single
// hard error is a response block that is present but lacks a usable status
// field; status anchors every other metric, so Assemble aborts and returns
// a *StructuralError instead of a partial report.
package summary
