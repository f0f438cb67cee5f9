package probes

import (
	"context"
	"strings"
	"testing"

	"whynosound/internal/diagnose"
	"whynosound/internal/toolexec"
)

func TestBluetoothNoDevices(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("alsa_output.pci-0000_00_1f.3.analog-stereo\n"),
		"pactl list cards":       success("Card #3\n\tName: alsa_card.pci-0000_00_1f.3\n\tActive Profile: output:analog-stereo\n"),
	}}
	probe := &BluetoothProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityOK {
		t.Fatalf("expected ok, got %q: %s", finding.Severity, finding.Message)
	}
}

func TestBluetoothActiveHeadsetInCallMode(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("bluez_sink.AA_BB_CC_DD_EE_FF.headset_head_unit\n"),
		"pactl list cards":       success(bluetoothCardsFixture),
	}}
	probe := &BluetoothProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityError {
		t.Fatalf("expected error, got %q: %s", finding.Severity, finding.Message)
	}
	if !strings.Contains(finding.Suggestion, "A2DP") {
		t.Fatalf("unexpected suggestion: %q", finding.Suggestion)
	}
}

func TestBluetoothInactiveHeadsetInCallMode(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("alsa_output.pci-0000_00_1f.3.analog-stereo\n"),
		"pactl list cards":       success(bluetoothCardsFixture),
	}}
	probe := &BluetoothProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityWarning {
		t.Fatalf("expected warning, got %q: %s", finding.Severity, finding.Message)
	}
	if !strings.Contains(finding.Message, "not active output") {
		t.Fatalf("unexpected message: %q", finding.Message)
	}
}

func TestBluetoothActiveA2DP(t *testing.T) {
	fixture := `Card #12
	Name: bluez_card.AA_BB_CC_DD_EE_FF
	Properties:
		device.description = "WH-1000XM4"
	Profiles:
		headset-head-unit: Headset Head Unit (HSP/HFP) (sinks: 1, sources: 1, priority: 30, available: yes)
		a2dp-sink: High Fidelity Playback (A2DP Sink) (sinks: 1, sources: 0, priority: 40, available: yes)
	Active Profile: a2dp-sink
	Sinks:
		bluez_sink.AA_BB_CC_DD_EE_FF.a2dp_sink/#60: WH-1000XM4
`
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("bluez_sink.AA_BB_CC_DD_EE_FF.a2dp_sink\n"),
		"pactl list cards":       success(fixture),
	}}
	probe := &BluetoothProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityOK {
		t.Fatalf("expected ok, got %q: %s", finding.Severity, finding.Message)
	}
	if !strings.Contains(finding.Message, "A2DP") {
		t.Fatalf("unexpected message: %q", finding.Message)
	}
}

func TestBluetoothCardsListFailure(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]toolexec.Output{
		"pactl get-default-sink": success("some_sink\n"),
		"pactl list cards":       {Stderr: "Connection failure"},
	}}
	probe := &BluetoothProbe{run: runner, tools: allTools()}

	finding := probe.Run(context.Background())
	if finding.Severity != diagnose.SeverityUnknown {
		t.Fatalf("expected unknown, got %q: %s", finding.Severity, finding.Message)
	}
}
