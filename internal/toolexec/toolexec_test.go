package toolexec

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRunCapturesStdout(t *testing.T) {
	runner := NewRunner(5*time.Second, nil)
	out := runner.Run(context.Background(), "sh", "-c", "echo hello")
	if !out.Success {
		t.Fatalf("expected success, got %+v", out)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Fatalf("unexpected stdout: %q", out.Stdout)
	}
}

func TestRunReportsMissingBinary(t *testing.T) {
	runner := NewRunner(5*time.Second, nil)
	out := runner.Run(context.Background(), "definitely-not-a-real-binary")
	if out.Success {
		t.Fatal("expected failure for missing binary")
	}
	if !out.NotFound {
		t.Fatalf("expected NotFound, got %+v", out)
	}
	if out.Stderr == "" {
		t.Fatal("expected stderr detail for missing binary")
	}
}

func TestRunReportsNonZeroExit(t *testing.T) {
	runner := NewRunner(5*time.Second, nil)
	out := runner.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	if out.Success {
		t.Fatal("expected failure")
	}
	if out.NotFound || out.TimedOut {
		t.Fatalf("unexpected flags: %+v", out)
	}
	if !strings.Contains(out.Stderr, "oops") {
		t.Fatalf("unexpected stderr: %q", out.Stderr)
	}
}

func TestRunTimesOut(t *testing.T) {
	runner := NewRunner(50*time.Millisecond, nil)
	out := runner.Run(context.Background(), "sleep", "2")
	if out.Success {
		t.Fatal("expected timeout failure")
	}
	if !out.TimedOut {
		t.Fatalf("expected TimedOut, got %+v", out)
	}
}

func TestCombinedJoinsStreams(t *testing.T) {
	out := Output{Stdout: "a\n", Stderr: "b\n"}
	if out.Combined() != "a\nb\n" {
		t.Fatalf("unexpected combined output: %q", out.Combined())
	}
}
