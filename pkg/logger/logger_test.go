package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		value string
		env   string
		want  slog.Level
	}{
		{value: "debug", env: "production", want: slog.LevelDebug},
		{value: "WARN", env: "production", want: slog.LevelWarn},
		{value: "fatal", env: "production", want: LevelCritical},
		{value: "", env: "development", want: slog.LevelDebug},
		{value: "", env: "production", want: slog.LevelInfo},
		{value: "bogus", env: "production", want: slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.value, tc.env); got != tc.want {
			t.Fatalf("ParseLevel(%q, %q): expected %v, got %v", tc.value, tc.env, tc.want, got)
		}
	}
}

func TestCriticalLevelIsRenamed(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")

	log.Critical("db: unreachable", "attempt", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "CRITICAL" {
		t.Fatalf("expected CRITICAL level, got %v", entry["level"])
	}
}

func TestBusinessErrorSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "text")

	log.BusinessError("nothing happened", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	log.With("request_id", "abc").BusinessError("member not found", errors.New("missing"))
	if !bytes.Contains(buf.Bytes(), []byte("request_id=abc")) {
		t.Fatalf("expected request id in output, got %q", buf.String())
	}
}
