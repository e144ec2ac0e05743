package model

import (
	"errors"
	"math"
	"strconv"
)

// BlockKind identifies the type of a parsed log block.
//
// Design decision: We use string constants rather than iota integers because
// kinds appear verbatim in the JSON/YAML block files produced by the upstream
// parser, and a self-describing tag keeps those files readable and stable.
type BlockKind string

const (
	// KindSolver is the block carrying solver version, worker count, and
	// the non-default parameters the run was started with.
	KindSolver BlockKind = "solver"

	// KindInitialModel is the block describing the model before presolve:
	// variable count, constraint count, and whether an objective exists.
	KindInitialModel BlockKind = "initial_model"

	// KindSearchProgress is the block covering the search phase: presolve
	// duration and the bound/objective progression events.
	KindSearchProgress BlockKind = "search_progress"

	// KindResponse is the final response block with status, timing,
	// objective, and bound fields.
	KindResponse BlockKind = "response"

	// KindPresolveSummary is the block summarizing the presolve phase.
	KindPresolveSummary BlockKind = "presolve_summary"
)

// Block is one kind-tagged record extracted from a solver run log by the
// upstream parser. At most one instance of each kind is expected per log;
// the summary.Registry decides what happens when that expectation is violated.
type Block interface {
	// Kind returns the block's kind tag.
	Kind() BlockKind
}

// Log is the flat, ordered collection of parsed blocks for a single solver
// run, plus any free-text comment lines associated with the log as a whole.
//
// Log is read-only after construction. The summary layer only looks blocks
// up by kind; order matters solely for duplicate tie-breaking.
type Log struct {
	// Comments holds free-text lines the user attached to the log.
	Comments []string `json:"comments,omitempty" yaml:"comments,omitempty"`

	// Blocks holds the parsed block records in log order.
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// SolverBlock exposes the solver identification line of the log.
type SolverBlock struct {
	// Version is the raw version string, e.g. "9.8.3296".
	Version string `json:"version" yaml:"version"`

	// Major, Minor, and Patch are the parsed semantic version components.
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Workers is the number of parallel workers, or nil when the log did
	// not state one (single-line logs from old solver versions omit it).
	Workers *int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// Parameters holds the non-default solver parameters. May be empty.
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Kind implements Block.
func (b *SolverBlock) Kind() BlockKind { return KindSolver }

// ParsedVersion returns the semantic version components.
func (b *SolverBlock) ParsedVersion() (major, minor, patch int) {
	return b.Major, b.Minor, b.Patch
}

// InitialModelBlock exposes the model statistics before presolve.
type InitialModelBlock struct {
	// Variables is the variable count of the initial model.
	Variables int `json:"variables" yaml:"variables"`

	// Constraints is the constraint count of the initial model.
	Constraints int `json:"constraints" yaml:"constraints"`

	// Optimization is true when the model has an objective, false for a
	// pure satisfaction model.
	Optimization bool `json:"optimization" yaml:"optimization"`
}

// Kind implements Block.
func (b *InitialModelBlock) Kind() BlockKind { return KindInitialModel }

// ProgressEvent is one point of the bound/objective progression recorded
// during search.
type ProgressEvent struct {
	// Time is the wall-clock offset in seconds since the solve started.
	Time float64 `json:"time" yaml:"time"`

	// Objective is the best objective value known at this point.
	Objective float64 `json:"objective" yaml:"objective"`

	// Bound is the best proven bound at this point.
	Bound float64 `json:"bound" yaml:"bound"`
}

// SearchProgressBlock exposes the search phase of the log.
type SearchProgressBlock struct {
	// PresolveSeconds is the time spent in presolve.
	PresolveSeconds float64 `json:"presolve_seconds" yaml:"presolve_seconds"`

	// Events is the bound/objective progression. May be empty when the
	// log contained no improvement lines.
	Events []ProgressEvent `json:"events,omitempty" yaml:"events,omitempty"`
}

// Kind implements Block.
func (b *SearchProgressBlock) Kind() BlockKind { return KindSearchProgress }

// Series returns the plottable progression events.
// An empty result means the block has no data to plot.
func (b *SearchProgressBlock) Series() []ProgressEvent { return b.Events }

// Field names of the response block that the summary layer reads.
// These match the keys the upstream parser emits.
const (
	ResponseFieldStatus    = "status"
	ResponseFieldWallTime  = "walltime"
	ResponseFieldObjective = "objective"
	ResponseFieldBestBound = "best_bound"
	ResponseFieldGap       = "gap"
)

// ResponseBlock exposes the final response of the solver as a flat mapping.
//
// Design decision: the upstream parser hands the response over as raw string
// fields because the solver prints values like "inf" or "nan" that have no
// faithful numeric representation. Typed accessors on this block own the
// numeric interpretation so that callers never parse field text themselves.
type ResponseBlock struct {
	// Fields maps response field names to their textual values.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Kind implements Block.
func (b *ResponseBlock) Kind() BlockKind { return KindResponse }

// StatusText returns the raw status field and whether it was present.
func (b *ResponseBlock) StatusText() (string, bool) {
	s, ok := b.Fields[ResponseFieldStatus]
	return s, ok
}

// WallTime returns the total solve time in seconds.
// The boolean is false when the field is missing or not a finite number.
func (b *ResponseBlock) WallTime() (float64, bool) {
	v, err := b.floatField(ResponseFieldWallTime)
	return v, err == nil
}

// Objective returns the objective value of the best solution found.
func (b *ResponseBlock) Objective() (float64, error) {
	return b.floatField(ResponseFieldObjective)
}

// BestBound returns the best proven bound on the objective.
func (b *ResponseBlock) BestBound() (float64, error) {
	return b.floatField(ResponseFieldBestBound)
}

// Gap returns the solver-reported optimality gap in percent.
//
// If the response carries an explicit gap field, that value wins: the
// solver's own gap semantics can differ from any formula applied after the
// fact. Otherwise the gap is derived from objective and bound the same way
// the solver reports it: 100*|objective-bound|/max(1, |objective|).
func (b *ResponseBlock) Gap() (float64, error) {
	if _, ok := b.Fields[ResponseFieldGap]; ok {
		return b.floatField(ResponseFieldGap)
	}

	obj, err := b.Objective()
	if err != nil {
		return 0, err
	}
	bound, err := b.BestBound()
	if err != nil {
		return 0, err
	}

	return 100 * math.Abs(obj-bound) / math.Max(1, math.Abs(obj)), nil
}

// floatField parses a response field under the finite-float grammar.
func (b *ResponseBlock) floatField(name string) (float64, error) {
	raw, ok := b.Fields[name]
	if !ok {
		return 0, &FieldError{Field: name, Reason: "missing"}
	}
	return ParseFinite(raw)
}

// PresolveSummaryBlock exposes the outcome of the presolve phase.
type PresolveSummaryBlock struct {
	// SolvedByPresolve is true when presolve alone solved the instance
	// and no search was necessary.
	SolvedByPresolve bool `json:"solved_by_presolve" yaml:"solved_by_presolve"`
}

// Kind implements Block.
func (b *PresolveSummaryBlock) Kind() BlockKind { return KindPresolveSummary }

// FieldError reports a block field that is missing or fails to parse.
// This is a soft condition: derivers translate it into an unavailable value.
type FieldError struct {
	// Field is the name of the offending field.
	Field string

	// Reason describes why the field could not be used.
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return "field " + strconv.Quote(e.Field) + ": " + e.Reason
}

// ParseFinite parses s as a finite float64.
//
// Unlike strconv.ParseFloat, values such as "inf" and "nan" are rejected:
// the solver prints them for unbounded or unsolved objectives and they carry
// no displayable magnitude. Rejecting them here keeps the "unavailable"
// decision in one place.
func ParseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.New(strconv.Quote(s) + " is not a finite number")
	}
	return v, nil
}
