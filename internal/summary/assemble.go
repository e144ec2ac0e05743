package summary

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/satlens/satlens/internal/model"
)

// Assembler composes derived metrics into a Report.
//
// Assembly is a single pass over an immutable input: the same log always
// yields an identical report. There is no shared mutable state between
// derivers, which makes them safe to evaluate concurrently.
type Assembler struct {
	policy DuplicatePolicy
	logger *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithPolicy sets the duplicate-block tie-break policy.
func WithPolicy(p DuplicatePolicy) Option {
	return func(a *Assembler) {
		a.policy = p
	}
}

// WithLogger sets the logger used for data-integrity warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// NewAssembler creates an Assembler.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		policy: PreferFirst,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Assemble derives all metrics from the log and composes the ordered
// Report.
//
// Soft conditions (missing blocks, unparsable numeric fields) never escape:
// they surface as absent metric values. Assemble returns an error only for
// the structural case, a response block without a usable status field, or
// for duplicate blocks under the RejectDuplicates policy. On error no
// report is produced.
//
// Design decision: the metric groups are independent, so they run on an
// errgroup. The inputs are small in-memory records and this is not needed
// for speed; it exists to keep derivers honestly independent. Composition
// order below is the display order and does not depend on completion order.
func (a *Assembler) Assemble(ctx context.Context, log *model.Log) (*model.Report, error) {
	reg := NewRegistry(log,
		WithDuplicatePolicy(a.policy),
		WithRegistryLogger(a.logger),
	)

	solver, err := reg.Solver()
	if err != nil {
		return nil, err
	}
	initial, err := reg.InitialModel()
	if err != nil {
		return nil, err
	}
	progress, err := reg.SearchProgress()
	if err != nil {
		return nil, err
	}
	response, err := reg.Response()
	if err != nil {
		return nil, err
	}
	presolve, err := reg.PresolveSummary()
	if err != nil {
		return nil, err
	}

	var (
		version, workers                  model.Metric
		status, wallTime, presolveTime    model.Metric
		variables, constraints, modelType model.Metric
		objective, bestBound, gap         model.Metric
		params                            map[string]any
		responseStatus                    model.Status
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		version = VersionMetric(solver)
		workers = WorkerMetric(solver)
		params = Parameters(solver)
		return nil
	})
	g.Go(func() error {
		var err error
		status, responseStatus, err = StatusMetric(response)
		if err != nil {
			return err
		}
		wallTime = WallTimeMetric(response)
		objective = ObjectiveMetric(response)
		bestBound = BestBoundMetric(response)
		gap = GapMetric(response)
		return nil
	})
	g.Go(func() error {
		variables = VariablesMetric(initial)
		constraints = ConstraintsMetric(initial)
		modelType = ModelTypeMetric(initial)
		presolveTime = PresolveTimeMetric(progress)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &model.Report{
		Metrics: []model.Metric{
			version, workers,
			status, wallTime, presolveTime,
			variables, constraints, modelType,
			objective, bestBound, gap,
		},
		Parameters: params,
		Chart:      SearchChart(responseStatus, progress, initial),
	}

	if log != nil && len(log.Comments) > 0 {
		report.Comments = append([]string(nil), log.Comments...)
	}

	if notice, ok := PresolveNotice(presolve); ok {
		report.Notices = append(report.Notices, notice)
	}

	return report, nil
}
