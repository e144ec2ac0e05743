package model

// Metric is one named entry of the assembled report.
// Every metric is renderable even when its value is the absent sentinel;
// writers never need to know which block a metric came from.
type Metric struct {
	// Label is the display name, e.g. "CP-SAT Version" or "Gap".
	Label string `json:"label"`

	// Value is the derived value or the absent sentinel.
	Value Value `json:"value"`

	// Help explains the metric to the reader.
	Help string `json:"help,omitempty"`

	// Delta is an optional badge attached to the value, e.g. "outdated"
	// on a stale solver version. Empty means no badge.
	Delta string `json:"delta,omitempty"`

	// Warn marks the metric as a warning for renderers that distinguish
	// good from bad deltas.
	Warn bool `json:"warn,omitempty"`
}

// Report is the assembled, ordered summary of one solver run.
//
// Report contains no timestamps and no references back to the blocks it was
// derived from: assembling the same log twice yields identical output.
type Report struct {
	// Comments are the free-text lines attached to the log, rendered
	// ahead of the metrics.
	Comments []string `json:"comments,omitempty"`

	// Metrics are the derived entries in display order.
	Metrics []Metric `json:"metrics"`

	// Parameters holds the non-default solver parameters, or nil when
	// the solver block is absent or carried none.
	Parameters map[string]any `json:"parameters,omitempty"`

	// Chart is the search-progress chart, or nil when the run is not
	// plot-eligible.
	Chart *Chart `json:"chart,omitempty"`

	// Notices are advisory messages, e.g. that presolve solved the model.
	Notices []string `json:"notices,omitempty"`
}

// Metric looks up a metric by label.
// Returns nil if no metric with that label exists.
func (r *Report) Metric(label string) *Metric {
	for i := range r.Metrics {
		if r.Metrics[i].Label == label {
			return &r.Metrics[i]
		}
	}
	return nil
}
