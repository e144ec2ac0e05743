package model

import (
	"encoding/json"
	"testing"
)

// TestValueString tests display rendering of every value kind.
func TestValueString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"absent renders as N/A", AbsentValue(), "N/A"},
		{"text passes through", TextValue("9.8.3296"), "9.8.3296"},
		{"int renders without decimals", IntValue(1024), "1024"},
		{"float renders shortest form", FloatValue(42.5), "42.5"},
		{"seconds renders millisecond precision", SecondsValue(1.23456), "1.235s"},
		{"percent renders two decimals", PercentValue(0), "0.00%"},
		{"percent rounds", PercentValue(12.3456), "12.35%"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestValueIsAbsent tests the absent sentinel predicate.
func TestValueIsAbsent(t *testing.T) {
	t.Parallel()

	if !AbsentValue().IsAbsent() {
		t.Error("AbsentValue().IsAbsent() = false, want true")
	}
	if TextValue("").IsAbsent() {
		t.Error("TextValue(\"\").IsAbsent() = true, want false")
	}
}

// TestValueMarshalJSON tests JSON encoding of metric values.
func TestValueMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"absent marshals as null", AbsentValue(), "null"},
		{"int marshals as number", IntValue(7), "7"},
		{"float marshals as number", FloatValue(1.5), "1.5"},
		{"text marshals as string", TextValue("OPTIMAL"), `"OPTIMAL"`},
		{"percent marshals rendered", PercentValue(3.14159), `"3.14%"`},
		{"seconds marshals rendered", SecondsValue(2), `"2.000s"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}
