package summary

import (
	"github.com/satlens/satlens/internal/model"
)

// Metric labels in display order. Exported so that writers and tests can
// address entries without repeating string literals.
const (
	LabelVersion     = "CP-SAT Version"
	LabelWorkers     = "Number of workers"
	LabelStatus      = "Status"
	LabelTime        = "Time"
	LabelPresolve    = "Presolve"
	LabelVariables   = "Variables"
	LabelConstraints = "Constraints"
	LabelModelType   = "Type"
	LabelObjective   = "Objective"
	LabelBestBound   = "Best bound"
	LabelGap         = "Gap"
)

// Help texts shown next to each metric.
const (
	helpVersion = "CP-SAT has seen significant performance improvements over the last years. " +
		"Make sure to use the latest version."
	helpWorkers = "CP-SAT has different parallelization tiers, triggered by the number of workers. " +
		"More workers can improve performance."
	helpStatus = "CP-SAT can have 5 different statuses: " +
		"UNKNOWN (timed out before finding a solution or proving infeasibility), " +
		"OPTIMAL (found an optimal solution, the best possible status), " +
		"FEASIBLE (found a solution that is not guaranteed to be optimal), " +
		"INFEASIBLE (proved the problem infeasible, often a bug in the model), " +
		"MODEL_INVALID (definitely a bug, should rarely happen)."
	helpTime = "The total time spent by the solver. " +
		"This includes the time spent in presolve and the time spent in the search."
	helpPresolve = "The time spent in presolve. " +
		"This is usually a small fraction of the total time."
	helpVariables = "CP-SAT can handle (hundreds of) thousands of variables. " +
		"This is a rough estimate of the size of the problem; " +
		"many variables may be removed during presolve."
	helpConstraints = "CP-SAT can handle (hundreds of) thousands of constraints. " +
		"More important than the number is the type of constraints."
	helpModelType = "Is the model an optimization or satisfaction model?"
	helpObjective = "Value of the best solution found."
	helpBestBound = "Bound on how good the best solution can be. " +
		"If it matches the objective, the solution is optimal."
	helpGap = "The gap is the difference between the objective and the best bound. " +
		"The smaller the better. A gap of 0% means that the solution is optimal."
)

// Version thresholds below which the solver is flagged as outdated.
// Releases before 9.10 miss several years of performance work.
const (
	currentMajor = 9
	currentMinor = 10
)

// VersionMetric derives the solver version metric with its staleness badge.
// An absent solver block yields the absent value flagged as a warning.
func VersionMetric(sb *model.SolverBlock) model.Metric {
	m := model.Metric{
		Label: LabelVersion,
		Help:  helpVersion,
	}

	if sb == nil {
		m.Value = model.AbsentValue()
		m.Warn = true
		return m
	}

	m.Value = model.TextValue(sb.Version)
	major, minor, _ := sb.ParsedVersion()
	if major < currentMajor || (major == currentMajor && minor < currentMinor) {
		m.Delta = "outdated"
		m.Warn = true
	}
	return m
}

// WorkerMetric derives the worker count metric.
func WorkerMetric(sb *model.SolverBlock) model.Metric {
	m := model.Metric{
		Label: LabelWorkers,
		Help:  helpWorkers,
		Value: model.AbsentValue(),
	}
	if sb != nil && sb.Workers != nil {
		m.Value = model.IntValue(*sb.Workers)
	}
	return m
}

// Parameters passes through the solver's non-default parameters.
// A nil result signals "no parameters": the caller decides whether to
// render the section at all.
func Parameters(sb *model.SolverBlock) map[string]any {
	if sb == nil || len(sb.Parameters) == 0 {
		return nil
	}
	return sb.Parameters
}

// StatusMetric derives the status metric, the anchor of the report.
//
// An absent response block is a soft condition and renders as UNKNOWN.
// A response block that is present but has no parsable status field is the
// one hard input error of the whole report: it returns a *StructuralError.
func StatusMetric(rb *model.ResponseBlock) (model.Metric, model.Status, error) {
	m := model.Metric{
		Label: LabelStatus,
		Help:  helpStatus,
	}

	if rb == nil {
		m.Value = model.AbsentValue()
		return m, model.StatusUnknown, nil
	}

	raw, ok := rb.StatusText()
	if !ok {
		return m, model.StatusUnknown, &StructuralError{
			Field:  model.ResponseFieldStatus,
			Reason: "is missing",
		}
	}

	status, err := model.ParseStatus(raw)
	if err != nil {
		return m, model.StatusUnknown, &StructuralError{
			Field:  model.ResponseFieldStatus,
			Reason: "is unparseable",
		}
	}

	m.Value = model.TextValue(status.String())
	if status == model.StatusInfeasible || status == model.StatusModelInvalid {
		m.Warn = true
	}
	return m, status, nil
}

// WallTimeMetric derives the total solve time metric.
func WallTimeMetric(rb *model.ResponseBlock) model.Metric {
	m := model.Metric{
		Label: LabelTime,
		Help:  helpTime,
		Value: model.AbsentValue(),
	}
	if rb != nil {
		if secs, ok := rb.WallTime(); ok {
			m.Value = model.SecondsValue(secs)
		}
	}
	return m
}

// PresolveTimeMetric derives the presolve duration metric.
func PresolveTimeMetric(spb *model.SearchProgressBlock) model.Metric {
	m := model.Metric{
		Label: LabelPresolve,
		Help:  helpPresolve,
		Value: model.AbsentValue(),
	}
	if spb != nil {
		m.Value = model.SecondsValue(spb.PresolveSeconds)
	}
	return m
}

// VariablesMetric derives the variable count metric.
func VariablesMetric(ib *model.InitialModelBlock) model.Metric {
	m := model.Metric{
		Label: LabelVariables,
		Help:  helpVariables,
		Value: model.AbsentValue(),
	}
	if ib != nil {
		m.Value = model.IntValue(ib.Variables)
	}
	return m
}

// ConstraintsMetric derives the constraint count metric.
func ConstraintsMetric(ib *model.InitialModelBlock) model.Metric {
	m := model.Metric{
		Label: LabelConstraints,
		Help:  helpConstraints,
		Value: model.AbsentValue(),
	}
	if ib != nil {
		m.Value = model.IntValue(ib.Constraints)
	}
	return m
}

// ModelTypeMetric classifies the model as optimization or satisfaction.
func ModelTypeMetric(ib *model.InitialModelBlock) model.Metric {
	m := model.Metric{
		Label: LabelModelType,
		Help:  helpModelType,
		Value: model.AbsentValue(),
	}
	if ib != nil {
		if ib.Optimization {
			m.Value = model.TextValue("Optimization")
		} else {
			m.Value = model.TextValue("Satisfaction")
		}
	}
	return m
}

// ObjectiveMetric derives the objective metric. A parse failure (such as an
// "inf" objective) is contained here and yields the absent value.
func ObjectiveMetric(rb *model.ResponseBlock) model.Metric {
	m := model.Metric{
		Label: LabelObjective,
		Help:  helpObjective,
		Value: model.AbsentValue(),
	}
	if rb != nil {
		if obj, err := rb.Objective(); err == nil {
			m.Value = model.FloatValue(obj)
		}
	}
	return m
}

// BestBoundMetric derives the best bound metric.
func BestBoundMetric(rb *model.ResponseBlock) model.Metric {
	m := model.Metric{
		Label: LabelBestBound,
		Help:  helpBestBound,
		Value: model.AbsentValue(),
	}
	if rb != nil {
		if bound, err := rb.BestBound(); err == nil {
			m.Value = model.FloatValue(bound)
		}
	}
	return m
}

// GapMetric derives the optimality gap metric. The gap is requested from
// the response block, which owns the solver's gap semantics; it is never
// recomputed here.
func GapMetric(rb *model.ResponseBlock) model.Metric {
	m := model.Metric{
		Label: LabelGap,
		Help:  helpGap,
		Value: model.AbsentValue(),
	}
	if rb != nil {
		if gap, err := rb.Gap(); err == nil {
			m.Value = model.PercentValue(gap)
		}
	}
	return m
}

// SearchChart builds the search-progress chart when the run is
// plot-eligible: the response status implies a solution, the model is an
// optimization problem, and the search progress block has at least one data
// point. Anything else is a no-op that yields nil.
//
// A satisfaction model is excluded even with full search data, because it
// has no meaningful bound/objective trajectory.
func SearchChart(status model.Status, spb *model.SearchProgressBlock, ib *model.InitialModelBlock) *model.Chart {
	if !status.HasSolution() {
		return nil
	}
	if spb == nil || ib == nil || !ib.Optimization {
		return nil
	}
	// NewSearchChart short-circuits on an empty series.
	return model.NewSearchChart(spb.Series())
}

// PresolveNotice reports whether the instance was fully solved during
// presolve. An absent block means the feature is simply not reported; no
// default is assumed either way.
func PresolveNotice(psb *model.PresolveSummaryBlock) (string, bool) {
	if psb == nil || !psb.SolvedByPresolve {
		return "", false
	}
	return "The model was solved by presolve.", true
}
