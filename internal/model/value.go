package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	// ValueAbsent marks a metric whose dependency block is missing or
	// whose field failed to parse. It renders as "N/A".
	ValueAbsent ValueKind = iota

	// ValueText is a plain string value, e.g. a version or a status.
	ValueText

	// ValueInt is an integer count, e.g. variables or workers.
	ValueInt

	// ValueFloat is a plain floating-point quantity, e.g. an objective.
	ValueFloat

	// ValueSeconds is a duration rendered with millisecond precision.
	ValueSeconds

	// ValuePercent is a percentage rendered with two-decimal precision.
	ValuePercent
)

// Value is the result of a metric derivation: either a parsed, typed value
// or the explicit absent sentinel.
//
// Design decision: absence is part of the type instead of being signalled by
// nil pointers or suppressed parse errors. Every deriver is total: whatever
// combination of blocks is missing or malformed, it produces a Value that
// the writers can render without special-casing.
type Value struct {
	kind ValueKind
	text string
	num  float64
}

// AbsentValue returns the explicit "unknown" sentinel.
func AbsentValue() Value { return Value{kind: ValueAbsent} }

// TextValue returns a plain string value.
func TextValue(s string) Value { return Value{kind: ValueText, text: s} }

// IntValue returns an integer count value.
func IntValue(n int) Value { return Value{kind: ValueInt, num: float64(n)} }

// FloatValue returns a plain floating-point value.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, num: f} }

// SecondsValue returns a duration value in seconds.
func SecondsValue(f float64) Value { return Value{kind: ValueSeconds, num: f} }

// PercentValue returns a percentage value.
func PercentValue(f float64) Value { return Value{kind: ValuePercent, num: f} }

// Kind returns the variant of the value.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value is the absent sentinel.
func (v Value) IsAbsent() bool { return v.kind == ValueAbsent }

// Float returns the numeric payload of Int, Float, Seconds, and Percent
// values. It is zero for Absent and Text values.
func (v Value) Float() float64 { return v.num }

// String renders the value for display.
//
// Rendering rules: absent values render as "N/A"; durations with
// millisecond precision ("1.234s"); percentages with two decimals
// ("0.00%"); floats in the shortest exact form.
func (v Value) String() string {
	switch v.kind {
	case ValueText:
		return v.text
	case ValueInt:
		return strconv.FormatInt(int64(v.num), 10)
	case ValueFloat:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case ValueSeconds:
		return fmt.Sprintf("%.3fs", v.num)
	case ValuePercent:
		return fmt.Sprintf("%.2f%%", v.num)
	default:
		return "N/A"
	}
}

// MarshalJSON implements json.Marshaler.
// Absent values marshal as null; counts and floats as numbers; formatted
// kinds (seconds, percent) as their rendered string so that JSON consumers
// see the same text the terminal shows.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueAbsent:
		return []byte("null"), nil
	case ValueInt:
		return json.Marshal(int64(v.num))
	case ValueFloat:
		return json.Marshal(v.num)
	default:
		return json.Marshal(v.String())
	}
}
