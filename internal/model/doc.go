// Package model defines the data structures shared across satlens.
//
// It contains the block records produced by the upstream CP-SAT log parser
// (solver info, initial model statistics, search progress, final response,
// presolve summary), the solver status enumeration, the metric value type
// used for null-safe rendering, and the assembled Report consumed by the
// report writers.
//
// Design decision: all types in this package are plain immutable records.
// They are constructed once per log, carry no I/O, and expose only the
// field-level accessors the summary layer needs. Derivation logic lives in
// the summary package; rendering lives in the report package.
package model
