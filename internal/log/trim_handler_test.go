package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTrimHandler tests attribute value trimming.
func TestTrimHandler(t *testing.T) {
	t.Parallel()

	t.Run("short values pass through unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTrimHandler(slog.NewTextHandler(&buf, nil)))

		logger.Info("loaded block", "kind", "solver")

		output := buf.String()
		if !strings.Contains(output, "kind=solver") {
			t.Errorf("expected untouched attribute, got %q", output)
		}
		if strings.Contains(output, Ellipsis) {
			t.Error("short value should not be trimmed")
		}
	})

	t.Run("long values are cut with ellipsis", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTrimHandler(slog.NewTextHandler(&buf, nil)))

		long := strings.Repeat("max_time_in_seconds=30;", 50)
		logger.Warn("duplicate block", "parameters", long)

		output := buf.String()
		if !strings.Contains(output, Ellipsis) {
			t.Error("expected trimmed value to carry ellipsis")
		}
		if strings.Contains(output, long) {
			t.Error("expected value to be shortened")
		}
	})

	t.Run("custom max length", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := NewTrimHandler(slog.NewTextHandler(&buf, nil), WithMaxValueLen(10))
		slog.New(h).Info("msg", "v", "abcdefghijklmnop")

		if !strings.Contains(buf.String(), "abcdefg"+Ellipsis) {
			t.Errorf("expected value cut to 10 bytes, got %q", buf.String())
		}
	})

	t.Run("trims inside groups", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTrimHandler(slog.NewTextHandler(&buf, nil), WithMaxValueLen(10)))

		logger.Info("msg", slog.Group("block", slog.String("raw", strings.Repeat("x", 40))))

		if !strings.Contains(buf.String(), Ellipsis) {
			t.Error("expected grouped attribute to be trimmed")
		}
	})

	t.Run("does not split multibyte runes", func(t *testing.T) {
		t.Parallel()

		got := truncate(strings.Repeat("é", 20), 10)
		if !strings.HasSuffix(got, Ellipsis) {
			t.Fatalf("expected ellipsis suffix, got %q", got)
		}
		if strings.ContainsRune(got, '�') {
			t.Errorf("truncation split a rune: %q", got)
		}
	})

	t.Run("WithAttrs trims bound attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := NewTrimHandler(slog.NewTextHandler(&buf, nil), WithMaxValueLen(10))
		logger := slog.New(h).With("ctx", strings.Repeat("y", 40))

		logger.Info("msg")

		if !strings.Contains(buf.String(), Ellipsis) {
			t.Error("expected bound attribute to be trimmed")
		}
	})
}

// TestNewTrimLogger tests logger construction and level handling.
func TestNewTrimLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewTrimLogger(&buf, false)

		logger.Info("hidden")
		logger.Warn("visible")

		output := buf.String()
		if strings.Contains(output, "hidden") {
			t.Error("info should be suppressed without verbose")
		}
		if !strings.Contains(output, "visible") {
			t.Error("warn should be logged")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewTrimLogger(&buf, true)

		logger.Debug("detail")

		if !strings.Contains(buf.String(), "detail") {
			t.Error("debug should be logged in verbose mode")
		}
	})

	t.Run("JSON logger emits JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewTrimJSONLogger(&buf, true)

		logger.Info("structured", "kind", "response")

		if !strings.Contains(buf.String(), `"kind":"response"`) {
			t.Errorf("expected JSON output, got %q", buf.String())
		}
	})
}
