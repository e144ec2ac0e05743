package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/satlens/satlens/internal/model"
)

const jsonLog = `{
  "comments": ["from the nightly batch"],
  "blocks": [
    {"kind": "solver", "version": "9.10.4067", "major": 9, "minor": 10, "patch": 4067, "workers": 8,
     "parameters": {"max_time_in_seconds": 30}},
    {"kind": "initial_model", "variables": 120, "constraints": 340, "optimization": true},
    {"kind": "search_progress", "presolve_seconds": 0.25,
     "events": [{"time": 0.5, "objective": 14, "bound": 6}]},
    {"kind": "response",
     "fields": {"status": "OPTIMAL", "walltime": "1.5", "objective": "10", "best_bound": "10"}},
    {"kind": "presolve_summary", "solved_by_presolve": false}
  ]
}`

const yamlLog = `comments:
  - from the nightly batch
blocks:
  - kind: solver
    version: 9.10.4067
    major: 9
    minor: 10
    patch: 4067
    workers: 8
  - kind: response
    fields:
      status: FEASIBLE
      objective: "12"
`

// TestDecodeJSON tests decoding the JSON block file layout.
func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	log, err := Decode(strings.NewReader(jsonLog), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.Comments) != 1 {
		t.Errorf("comments = %v, want one entry", log.Comments)
	}
	if len(log.Blocks) != 5 {
		t.Fatalf("block count = %d, want 5", len(log.Blocks))
	}

	solver, ok := log.Blocks[0].(*model.SolverBlock)
	if !ok {
		t.Fatalf("block[0] type = %T, want *SolverBlock", log.Blocks[0])
	}
	if solver.Version != "9.10.4067" || solver.Workers == nil || *solver.Workers != 8 {
		t.Errorf("solver block = %+v", solver)
	}

	progress, ok := log.Blocks[2].(*model.SearchProgressBlock)
	if !ok {
		t.Fatalf("block[2] type = %T, want *SearchProgressBlock", log.Blocks[2])
	}
	if len(progress.Events) != 1 || progress.Events[0].Objective != 14 {
		t.Errorf("progress block = %+v", progress)
	}

	response, ok := log.Blocks[3].(*model.ResponseBlock)
	if !ok {
		t.Fatalf("block[3] type = %T, want *ResponseBlock", log.Blocks[3])
	}
	if response.Fields["status"] != "OPTIMAL" {
		t.Errorf("response fields = %v", response.Fields)
	}
}

// TestDecodeYAML tests decoding the YAML block file layout.
func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	log, err := Decode(strings.NewReader(yamlLog), FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.Blocks) != 2 {
		t.Fatalf("block count = %d, want 2", len(log.Blocks))
	}
	if _, ok := log.Blocks[0].(*model.SolverBlock); !ok {
		t.Errorf("block[0] type = %T, want *SolverBlock", log.Blocks[0])
	}
	response, ok := log.Blocks[1].(*model.ResponseBlock)
	if !ok {
		t.Fatalf("block[1] type = %T, want *ResponseBlock", log.Blocks[1])
	}
	if response.Fields["objective"] != "12" {
		t.Errorf("response fields = %v", response.Fields)
	}
}

// TestDecodeUnknownKind tests the unknown kind error.
func TestDecodeUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"blocks":[{"kind":"lp_relaxation"}]}`), FormatJSON)
	if !errors.Is(err, ErrUnknownBlockKind) {
		t.Errorf("error = %v, want ErrUnknownBlockKind", err)
	}
}

// TestDetectFormat tests extension-based format detection.
func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Format
	}{
		{"run.json", FormatJSON},
		{"run.yaml", FormatYAML},
		{"run.YML", FormatYAML},
		{"run.log", FormatJSON},
		{"run", FormatJSON},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// TestLoad tests reading block records from disk.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("json file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "run.json")
		if err := os.WriteFile(path, []byte(jsonLog), 0600); err != nil {
			t.Fatal(err)
		}

		log, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(log.Blocks) != 5 {
			t.Errorf("block count = %d, want 5", len(log.Blocks))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected error for missing file, got nil")
		}
	})
}
