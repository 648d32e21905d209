package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

func TestTextHandler_Handle(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newTextHandler(buf, false, nil, slog.LevelInfo)

	r := slog.NewRecord(time.Now(), slog.LevelWarn, "stale cache", 0)
	r.AddAttrs(slog.String("path", "artisan.yaml"))

	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "WARN stale cache path=\"artisan.yaml\"\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestTextHandler_WithAttrsKeepsSettings(t *testing.T) {
	buf := &bytes.Buffer{}
	levelVar := &slog.LevelVar{}
	levelVar.Set(slog.LevelWarn)
	h := newTextHandler(buf, false, nil, levelVar).WithAttrs([]slog.Attr{slog.String("a", "1")})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected derived handler to keep the level")
	}

	r := slog.NewRecord(time.Now(), slog.LevelError, "msg", 0)
	_ = h.Handle(context.Background(), r)
	if !strings.Contains(buf.String(), `a="1"`) {
		t.Errorf("expected attr in output, got %q", buf.String())
	}
}

func TestTextHandler_WithGroup(t *testing.T) {
	h := newTextHandler(&bytes.Buffer{}, false, nil, slog.LevelInfo)
	if h.WithGroup("") != h {
		t.Error("expected empty group to return same handler")
	}
	g := h.WithGroup("console").(*textHandler)
	if len(g.groups) != 1 || g.groups[0] != "console" {
		t.Errorf("expected group to be recorded, got %v", g.groups)
	}
}

func TestColorize(t *testing.T) {
	tests := []struct {
		level slog.Level
		color string
	}{
		{levelTrace, "\033[36m"},
		{slog.LevelDebug, "\033[34m"},
		{slog.LevelInfo, "\033[32m"},
		{slog.LevelWarn, "\033[33m"},
		{slog.LevelError, "\033[31m"},
		{levelCritical, "\033[41m"},
	}
	for _, tt := range tests {
		got := colorize("X", tt.level)
		if !strings.HasPrefix(got, tt.color) || !strings.HasSuffix(got, "\033[0m") {
			t.Errorf("level %v: unexpected %q", tt.level, got)
		}
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("expected buffer not to be a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("expected regular file not to be a terminal")
	}
}
