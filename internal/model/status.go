package model

import "fmt"

// Status represents the final status reported by the solver.
//
// Design decision: We use iota-based constants rather than the raw status
// strings for efficiency in comparisons, with String() and ParseStatus()
// converting to and from the solver's wire spelling.
type Status int

const (
	// StatusUnknown means the solver timed out before finding a solution
	// or proving infeasibility.
	StatusUnknown Status = iota

	// StatusOptimal means the solver found a provably optimal solution.
	// This is the best possible status.
	StatusOptimal

	// StatusFeasible means the solver found a feasible solution, but it
	// is not guaranteed to be optimal.
	StatusFeasible

	// StatusInfeasible means the solver proved the problem infeasible.
	// This often indicates a bug in the model.
	StatusInfeasible

	// StatusModelInvalid means the model itself was rejected.
	// Definitely a bug; should rarely happen.
	StatusModelInvalid
)

// String returns the solver's spelling of the status.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "UNKNOWN"
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusModelInvalid:
		return "MODEL_INVALID"
	default:
		return "UNKNOWN"
	}
}

// HasSolution reports whether the status implies a usable solution.
// Only OPTIMAL and FEASIBLE runs carry an objective trajectory worth
// plotting.
func (s Status) HasSolution() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// ParseStatus converts the solver's status spelling into a Status.
// An unrecognized spelling is an error rather than a silent UNKNOWN, because
// the status field anchors the whole report.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "UNKNOWN":
		return StatusUnknown, nil
	case "OPTIMAL":
		return StatusOptimal, nil
	case "FEASIBLE":
		return StatusFeasible, nil
	case "INFEASIBLE":
		return StatusInfeasible, nil
	case "MODEL_INVALID":
		return StatusModelInvalid, nil
	default:
		return StatusUnknown, fmt.Errorf("unrecognized solver status %q", s)
	}
}
