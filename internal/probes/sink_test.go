package probes

import (
	"context"
	"strings"
	"testing"

	"whynosound/internal/diagnose"
	"whynosound/internal/toolexec"
)

func TestSinkValidityHealthySink(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("alsa_output.pci-0000_00_1f.3.analog-stereo\n"),
		"pactl list sinks":       success(sinkListFixture),
	}}
	probe := &SinkValidityProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityOK {
		t.Fatalf("expected ok, got %q: %s", finding.Severity, finding.Message)
	}
	if !strings.Contains(finding.Message, "Built-in Audio Analog Stereo") {
		t.Fatalf("unexpected message: %q", finding.Message)
	}
}

func TestSinkValidityDisconnectedHDMI(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("alsa_output.pci-0000_01_00.1.hdmi-stereo\n"),
		"pactl list sinks":       success(hdmiRunningFixture),
	}}
	probe := &SinkValidityProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityError {
		t.Fatalf("expected error, got %q: %s", finding.Severity, finding.Message)
	}
	if !strings.Contains(finding.Suggestion, "Built-in Audio") {
		t.Fatalf("unexpected suggestion: %q", finding.Suggestion)
	}
}

// Same HDMI sink as sinkListFixture but not suspended, so the disconnected
// port is the finding instead of the suspension warning.
const hdmiRunningFixture = `Sink #57
	State: RUNNING
	Name: alsa_output.pci-0000_01_00.1.hdmi-stereo
	Description: HDMI Audio Stereo
	Mute: no
	Volume: front-left: 65536 / 100% / 0.00 dB,   front-right: 65536 / 100% / 0.00 dB
	Active Port: hdmi-output-0
	Ports:
		hdmi-output-0: HDMI / DisplayPort (type: HDMI, priority: 5900, not available)
`

func TestSinkValiditySuspendedSinkWarns(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("alsa_output.pci-0000_01_00.1.hdmi-stereo\n"),
		"pactl list sinks":       success(sinkListFixture),
	}}
	probe := &SinkValidityProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityWarning {
		t.Fatalf("expected warning for suspended sink, got %q: %s", finding.Severity, finding.Message)
	}
}

func TestSinkValidityNoDefaultSink(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("\n"),
	}}
	probe := &SinkValidityProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityError {
		t.Fatalf("expected error, got %q: %s", finding.Severity, finding.Message)
	}
	if !strings.Contains(finding.Message, "No default sink") {
		t.Fatalf("unexpected message: %q", finding.Message)
	}
}

func TestSinkValidityDefaultSinkNotInList(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("ghost_sink\n"),
		"pactl list sinks":       success(sinkListFixture),
	}}
	probe := &SinkValidityProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityError {
		t.Fatalf("expected error, got %q: %s", finding.Severity, finding.Message)
	}
	if !strings.Contains(finding.Message, "ghost_sink") {
		t.Fatalf("expected sink name in message: %q", finding.Message)
	}
}

func TestSinkValidityServerNotResponding(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": {Stderr: "Connection failure: Connection refused"},
	}}
	probe := &SinkValidityProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityError {
		t.Fatalf("expected error, got %q: %s", finding.Severity, finding.Message)
	}
}

func TestSinkValidityTimeoutIsInconclusive(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": {TimedOut: true, Stderr: "command timed out after 5s"},
	}}
	probe := &SinkValidityProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityUnknown {
		t.Fatalf("expected unknown on timeout, got %q", finding.Severity)
	}
}
