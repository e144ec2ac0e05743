package model

import "testing"

// TestStatusString tests status to string conversion.
func TestStatusString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{StatusUnknown, "UNKNOWN"},
		{StatusOptimal, "OPTIMAL"},
		{StatusFeasible, "FEASIBLE"},
		{StatusInfeasible, "INFEASIBLE"},
		{StatusModelInvalid, "MODEL_INVALID"},
		{Status(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

// TestParseStatus tests parsing the solver's status spellings.
func TestParseStatus(t *testing.T) {
	t.Parallel()

	t.Run("known spellings round-trip", func(t *testing.T) {
		t.Parallel()

		for _, s := range []Status{
			StatusUnknown, StatusOptimal, StatusFeasible,
			StatusInfeasible, StatusModelInvalid,
		} {
			got, err := ParseStatus(s.String())
			if err != nil {
				t.Fatalf("ParseStatus(%q) returned error: %v", s.String(), err)
			}
			if got != s {
				t.Errorf("ParseStatus(%q) = %v, want %v", s.String(), got, s)
			}
		}
	})

	t.Run("unrecognized spelling is an error", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseStatus("SOLVED"); err == nil {
			t.Error("expected error for unrecognized status, got nil")
		}
	})
}

// TestStatusHasSolution tests the plot-eligibility predicate.
func TestStatusHasSolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusOptimal, true},
		{StatusFeasible, true},
		{StatusUnknown, false},
		{StatusInfeasible, false},
		{StatusModelInvalid, false},
	}

	for _, tt := range tests {
		if got := tt.status.HasSolution(); got != tt.want {
			t.Errorf("%v.HasSolution() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
