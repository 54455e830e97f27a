package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "skypulse/internal/platform/testkit"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "debug"},
		{"   nonsense   ", "debug"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

// Init is once-guarded process-wide, so a single test exercises the whole surface
func TestInit_Get_Named_C(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:   "debug",
		Format:  "json",
		Service: "skypulse-test",
		Writer:  &buf,
	})

	Get().Info().Msg("root-msg")
	Named("limiter").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123")
	ctx = WithRun(ctx, "run-9", "did:plc:alice")
	C(ctx).Info().Msg("ctx-msg")

	// empty ctx child (exercise only)
	C(context.Background()).Info().Msg("ctx-empty")

	out := buf.String()
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, `"component":"limiter"`)
	kit.MustContain(t, out, `"service":"skypulse-test"`)
	kit.MustContain(t, out, `"request_id":"req-123"`)
	kit.MustContain(t, out, `"run_id":"run-9"`)
	kit.MustContain(t, out, `"actor":"did:plc:alice"`)
}
