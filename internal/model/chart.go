package model

// Point is one x/y sample of a chart series.
type Point struct {
	// X is the wall-clock offset in seconds.
	X float64 `json:"x"`

	// Y is the objective or bound value.
	Y float64 `json:"y"`
}

// Chart is the renderer-agnostic model of the search-progress
// visualization: the objective and bound trajectories over time.
//
// Design decision: the summary layer emits this neutral model instead of
// any concrete chart markup so that each writer can pick its own rendering
// (mermaid for markdown, plain rows for the terminal) and so that chart
// construction stays testable without a display.
type Chart struct {
	// Title is the chart heading.
	Title string `json:"title"`

	// XLabel and YLabel name the axes.
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`

	// Objective is the best-solution trajectory.
	Objective []Point `json:"objective"`

	// Bound is the proven-bound trajectory.
	Bound []Point `json:"bound"`
}

// NewSearchChart builds the chart model from progression events.
// Returns nil when there are no events: the absence of data short-circuits
// before any chart construction.
func NewSearchChart(events []ProgressEvent) *Chart {
	if len(events) == 0 {
		return nil
	}

	c := &Chart{
		Title:     "Search progress",
		XLabel:    "time (s)",
		YLabel:    "value",
		Objective: make([]Point, 0, len(events)),
		Bound:     make([]Point, 0, len(events)),
	}
	for _, e := range events {
		c.Objective = append(c.Objective, Point{X: e.Time, Y: e.Objective})
		c.Bound = append(c.Bound, Point{X: e.Time, Y: e.Bound})
	}
	return c
}
