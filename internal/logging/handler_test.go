package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Now()
	logger.Info("renamed", "path", "a.txt")

	output := buf.String()
	for _, want := range []string{"INFO", "renamed", "path=a.txt", now.Format(time.Kitchen)} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
}

func TestHandler_QuotesAmbiguousStrings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "file.txt", "name=file.txt"},
		{"empty", "", `name=""`},
		{"space", "my file", `name="my file"`},
		{"quote", `a"b`, `name="a\"b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			slog.New(NewHandler(&buf, nil)).Info("msg", "name", tt.value)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output, got: %q", tt.want, buf.String())
			}
		})
	}
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	logger.Log(t.Context(), LevelTrace, "seeding editor")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level name, got: %q", buf.String())
	}
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("arg", 1).WithGroup("split")
	logger.Info("message", "directory", "dir")

	output := buf.String()
	if !strings.Contains(output, " arg=1") {
		t.Errorf("expected ungrouped common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "split.directory=dir") {
		t.Errorf("expected grouped attribute in output, got: %q", output)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(t.Context(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "INFO") {
		t.Errorf("expected output to start with the level, got: %q", buf.String())
	}
}

func TestMultiHandler(t *testing.T) {
	var text, jsonBuf bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		nil,
		slog.NewJSONHandler(&jsonBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("run", "a")

	logger.Debug("debug only in file")
	if text.Len() != 0 {
		t.Errorf("text handler should drop debug records, got %q", text.String())
	}
	if !strings.Contains(jsonBuf.String(), `"run":"a"`) {
		t.Errorf("json handler should receive attrs, got %q", jsonBuf.String())
	}

	logger.Warn("both")
	if !strings.Contains(text.String(), "both") {
		t.Errorf("text handler should receive warn records, got %q", text.String())
	}
}
