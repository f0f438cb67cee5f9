package probes

import (
	"context"
	"strings"
	"testing"

	"whynosound/internal/diagnose"
	"whynosound/internal/toolexec"
)

// fakeRunner serves canned command transcripts keyed by the full command
// line. Commands without an entry fail the way a broken tool would.
type fakeRunner struct {
	outputs map[string]toolexec.Output
	calls   []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) toolexec.Output {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	out, ok := f.outputs[key]
	if !ok {
		return toolexec.Output{Stderr: "fake: no transcript for " + key}
	}
	return out
}

func allTools() Tools {
	return Tools{Pactl: "pactl", Aplay: "aplay", Systemctl: "systemctl"}
}

func success(stdout string) toolexec.Output {
	return toolexec.Output{Stdout: stdout, Success: true}
}

func TestAllReturnsProbesInPriorityOrder(t *testing.T) {
	probes := All(&fakeRunner{}, allTools())
	known := diagnose.KnownChecks()
	if len(probes) != len(known) {
		t.Fatalf("expected %d probes, got %d", len(known), len(probes))
	}
	for i, probe := range probes {
		if probe.ID() != known[i] {
			t.Fatalf("probe %d: got %q want %q", i, probe.ID(), known[i])
		}
		if probe.Description() == "" {
			t.Fatalf("probe %q has no description", probe.ID())
		}
	}
}

func TestProbesYieldUnknownWithoutTools(t *testing.T) {
	for _, probe := range All(&fakeRunner{}, Tools{}) {
		finding := probe.Run(context.Background())
		if finding.Check != probe.ID() {
			t.Fatalf("probe %q returned finding for %q", probe.ID(), finding.Check)
		}
		if finding.Severity != diagnose.SeverityUnknown {
			t.Fatalf("probe %q without tools: got severity %q", probe.ID(), finding.Severity)
		}
		if finding.Message == "" {
			t.Fatalf("probe %q unknown finding has no message", probe.ID())
		}
	}
}
