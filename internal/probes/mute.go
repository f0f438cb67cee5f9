package probes

import (
	"context"
	"fmt"
	"strings"

	"whynosound/internal/diagnose"
)

// lowVolumeThreshold is the percentage below which an unmuted sink is still
// effectively silent.
const lowVolumeThreshold = 5

// MuteStateProbe detects whether audio is muted at the sink level.
type MuteStateProbe struct {
	run   commandRunner
	tools Tools
}

func (p *MuteStateProbe) ID() diagnose.CheckID { return diagnose.CheckMuteState }

func (p *MuteStateProbe) Description() string {
	return "Default sink mute flag and volume via pactl list sinks"
}

func (p *MuteStateProbe) Run(ctx context.Context) diagnose.Finding {
	id := p.ID()
	if p.tools.Pactl == "" {
		return id.Unknown("Cannot check mute state (pactl not installed)")
	}

	defaultOut := p.run.Run(ctx, p.tools.Pactl, "get-default-sink")
	defaultSink := strings.TrimSpace(defaultOut.Stdout)
	if defaultSink == "" {
		return id.Warning(
			"Cannot check mute state (no default sink)",
			"Set a default output device first",
		)
	}

	sinksOut := p.run.Run(ctx, p.tools.Pactl, "list", "sinks")
	evidence := fmt.Sprintf("pactl list sinks (mute info):\n%s\n",
		filterLines(sinksOut.Stdout, "Name:", "Mute:", "Volume:"))

	if !sinksOut.Success {
		return id.Unknown("Cannot check mute state (pactl failed)").WithEvidence(evidence)
	}

	muted, volume := parseMuteAndVolume(sinksOut.Stdout, defaultSink)
	switch {
	case muted == nil:
		return id.Unknown("Could not determine mute state from sink list").WithEvidence(evidence)
	case *muted:
		return id.Error(
			"Output is muted",
			"Unmute in sound settings or press the mute key",
		).WithEvidence(evidence)
	case volume != nil && *volume < lowVolumeThreshold:
		return id.Warning(
			fmt.Sprintf("Volume is very low (%d%%)", *volume),
			"Increase volume in sound settings",
		).WithEvidence(evidence)
	case volume != nil:
		return id.OK(fmt.Sprintf("Output is not muted (volume: %d%%)", *volume)).WithEvidence(evidence)
	default:
		return id.OK("Output is not muted").WithEvidence(evidence)
	}
}

// filterLines keeps only lines containing one of the given substrings.
func filterLines(output string, keep ...string) string {
	var kept []string
	for _, line := range strings.Split(output, "\n") {
		for _, needle := range keep {
			if strings.Contains(line, needle) {
				kept = append(kept, line)
				break
			}
		}
	}
	return strings.Join(kept, "\n")
}
