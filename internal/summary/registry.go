package summary

import (
	"fmt"
	"log/slog"

	"github.com/satlens/satlens/internal/model"
)

// DuplicatePolicy decides what the registry does when a log carries more
// than one block of a kind that is expected to be unique. Well-formed logs
// never trigger it, but upstream parsing of truncated or concatenated logs
// can produce duplicates.
type DuplicatePolicy int

const (
	// PreferFirst keeps the first occurrence and logs the rest.
	// This matches the upstream parser's own lookup and is the default.
	PreferFirst DuplicatePolicy = iota

	// PreferLast keeps the last occurrence and logs the rest.
	PreferLast

	// RejectDuplicates treats any duplicate as a hard input error.
	RejectDuplicates
)

// String returns the flag spelling of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case PreferLast:
		return "last"
	case RejectDuplicates:
		return "reject"
	default:
		return "first"
	}
}

// ParseDuplicatePolicy converts a flag or config spelling into a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "first", "":
		return PreferFirst, nil
	case "last":
		return PreferLast, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return PreferFirst, fmt.Errorf("unknown duplicate policy %q (want first, last, or reject)", s)
	}
}

// Registry indexes a log's blocks by kind and answers unique-kind lookups.
//
// Lookup never panics on malformed input: a missing kind returns nil, and a
// duplicated kind is resolved by the configured policy. Duplicates are a
// data-integrity anomaly, so they are logged even when tolerated.
type Registry struct {
	byKind map[model.BlockKind][]model.Block
	policy DuplicatePolicy
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDuplicatePolicy sets the duplicate tie-break policy.
func WithDuplicatePolicy(p DuplicatePolicy) RegistryOption {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithRegistryLogger sets the logger used for duplicate warnings.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry indexes the given log.
func NewRegistry(log *model.Log, opts ...RegistryOption) *Registry {
	r := &Registry{
		byKind: make(map[model.BlockKind][]model.Block),
		policy: PreferFirst,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	if log != nil {
		for _, b := range log.Blocks {
			r.byKind[b.Kind()] = append(r.byKind[b.Kind()], b)
		}
	}

	return r
}

// Lookup returns the unique block of the requested kind, or nil when the
// log has none. Under RejectDuplicates a duplicated kind is an error;
// otherwise the policy picks an occurrence and the anomaly is logged.
func (r *Registry) Lookup(kind model.BlockKind) (model.Block, error) {
	blocks := r.byKind[kind]
	switch len(blocks) {
	case 0:
		return nil, nil
	case 1:
		return blocks[0], nil
	}

	if r.policy == RejectDuplicates {
		return nil, fmt.Errorf("%w: %d %q blocks", ErrDuplicateBlock, len(blocks), kind)
	}

	r.logger.Warn("log carries duplicate blocks of a unique kind",
		"kind", string(kind),
		"count", len(blocks),
		"policy", r.policy.String(),
	)

	if r.policy == PreferLast {
		return blocks[len(blocks)-1], nil
	}
	return blocks[0], nil
}

// Solver returns the solver block, or nil when absent.
func (r *Registry) Solver() (*model.SolverBlock, error) {
	b, err := r.Lookup(model.KindSolver)
	if b == nil || err != nil {
		return nil, err
	}
	return b.(*model.SolverBlock), nil
}

// InitialModel returns the initial model block, or nil when absent.
func (r *Registry) InitialModel() (*model.InitialModelBlock, error) {
	b, err := r.Lookup(model.KindInitialModel)
	if b == nil || err != nil {
		return nil, err
	}
	return b.(*model.InitialModelBlock), nil
}

// SearchProgress returns the search progress block, or nil when absent.
func (r *Registry) SearchProgress() (*model.SearchProgressBlock, error) {
	b, err := r.Lookup(model.KindSearchProgress)
	if b == nil || err != nil {
		return nil, err
	}
	return b.(*model.SearchProgressBlock), nil
}

// Response returns the response block, or nil when absent.
func (r *Registry) Response() (*model.ResponseBlock, error) {
	b, err := r.Lookup(model.KindResponse)
	if b == nil || err != nil {
		return nil, err
	}
	return b.(*model.ResponseBlock), nil
}

// PresolveSummary returns the presolve summary block, or nil when absent.
func (r *Registry) PresolveSummary() (*model.PresolveSummaryBlock, error) {
	b, err := r.Lookup(model.KindPresolveSummary)
	if b == nil || err != nil {
		return nil, err
	}
	return b.(*model.PresolveSummaryBlock), nil
}
