package hal

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type lineLogger struct {
	lines []string
}

func (l *lineLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }

func TestLogHandler(t *testing.T) {
	out := &lineLogger{}
	log := slog.New(NewLogHandler(out, slog.LevelInfo))

	log.Debug("hidden")
	log.Info("loaded", "records", 3)
	log.With("mood", "sleepy").WithGroup("pose").Warn("retarget", "labels", 18)
	log.Error("render", "err", errors.New("panel gone"))

	want := []string{
		"INFO loaded records=3",
		"WARN retarget mood=sleepy pose.labels=18",
		"ERROR render err=panel gone",
	}
	if len(out.lines) != len(want) {
		t.Fatalf("lines = %q, want %q", out.lines, want)
	}
	for i := range want {
		if out.lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, out.lines[i], want[i])
		}
	}
}

func TestLogHandlerNilLogger(t *testing.T) {
	h := NewLogHandler(nil, nil)
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("Enabled() = true with nil Logger")
	}
}
