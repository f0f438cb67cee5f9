package probes

import (
	"context"
	"fmt"
	"strings"

	"whynosound/internal/diagnose"
)

// BluetoothProbe detects Bluetooth audio stuck in the low-quality HSP/HFP
// call profile instead of A2DP.
type BluetoothProbe struct {
	run   commandRunner
	tools Tools
}

func (p *BluetoothProbe) ID() diagnose.CheckID { return diagnose.CheckBluetooth }

func (p *BluetoothProbe) Description() string {
	return "Bluetooth card profiles via pactl list cards"
}

func (p *BluetoothProbe) Run(ctx context.Context) diagnose.Finding {
	id := p.ID()
	if p.tools.Pactl == "" {
		return id.Unknown("Cannot check Bluetooth profiles (pactl not installed)")
	}

	defaultOut := p.run.Run(ctx, p.tools.Pactl, "get-default-sink")
	defaultSink := strings.TrimSpace(defaultOut.Stdout)

	cardsOut := p.run.Run(ctx, p.tools.Pactl, "list", "cards")
	evidence := fmt.Sprintf("pactl list cards (bluetooth info):\n%s\n",
		filterLines(cardsOut.Stdout, "Name:", "bluez", "bluetooth", "Active Profile:", "a2dp", "hsp", "hfp", "headset"))

	if !cardsOut.Success {
		return id.Unknown("Cannot list cards to check Bluetooth profiles").WithEvidence(evidence)
	}

	cards := parseBluetoothCards(cardsOut.Stdout)
	if len(cards) == 0 {
		return id.OK("No Bluetooth audio devices connected").WithEvidence(evidence)
	}

	var issues []string
	hasActiveBT := false
	a2dpAvailable := false

	for _, card := range cards {
		isActive := strings.Contains(defaultSink, card.name) || sinkMatches(card.sinks, defaultSink)
		if isActive {
			hasActiveBT = true
		}

		profile := strings.ToLower(card.activeProfile)
		inCallMode := strings.Contains(profile, "hsp") ||
			strings.Contains(profile, "hfp") ||
			strings.Contains(profile, "headset-head-unit")
		if !inCallMode {
			continue
		}

		hasA2DP := false
		for _, available := range card.availableProfiles {
			if strings.Contains(strings.ToLower(available), "a2dp") {
				hasA2DP = true
				break
			}
		}
		if hasA2DP {
			a2dpAvailable = true
			issues = append(issues, fmt.Sprintf("'%s' is in call/headset mode (%s), A2DP available",
				card.description, card.activeProfile))
		} else {
			issues = append(issues, fmt.Sprintf("'%s' is in call/headset mode (%s), A2DP not available",
				card.description, card.activeProfile))
		}
	}

	switch {
	case len(issues) == 0 && hasActiveBT:
		return id.OK("Bluetooth audio profile is optimal (A2DP)").WithEvidence(evidence)
	case len(issues) == 0:
		return id.OK("Bluetooth device connected with correct profile").WithEvidence(evidence)
	case hasActiveBT && a2dpAvailable:
		return id.Error(
			fmt.Sprintf("Bluetooth headset in call mode: %s", strings.Join(issues, "; ")),
			"Switch Bluetooth profile to A2DP (high-quality audio) in sound settings",
		).WithEvidence(evidence)
	case hasActiveBT:
		return id.Warning(
			fmt.Sprintf("Bluetooth in low-quality mode: %s", strings.Join(issues, "; ")),
			"A2DP profile may not be available. Check if device supports it.",
		).WithEvidence(evidence)
	default:
		return id.Warning(
			fmt.Sprintf("Bluetooth device in call mode but not active output: %s", strings.Join(issues, "; ")),
			"If using Bluetooth, switch profile to A2DP for better quality",
		).WithEvidence(evidence)
	}
}

func sinkMatches(sinks []string, defaultSink string) bool {
	if defaultSink == "" {
		return false
	}
	for _, sink := range sinks {
		if sink == "" {
			continue
		}
		if strings.Contains(sink, defaultSink) || strings.Contains(defaultSink, sink) {
			return true
		}
	}
	return false
}
