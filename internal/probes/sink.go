package probes

import (
	"context"
	"fmt"
	"strings"

	"whynosound/internal/diagnose"
)

// SinkValidityProbe detects whether the default sink exists, is usable, and
// is not a disconnected HDMI output.
type SinkValidityProbe struct {
	run   commandRunner
	tools Tools
}

func (p *SinkValidityProbe) ID() diagnose.CheckID { return diagnose.CheckSinkValidity }

func (p *SinkValidityProbe) Description() string {
	return "Default sink validity via pactl get-default-sink and pactl list sinks"
}

func (p *SinkValidityProbe) Run(ctx context.Context) diagnose.Finding {
	id := p.ID()
	if p.tools.Pactl == "" {
		return id.Unknown("Cannot check default sink (pactl not installed)")
	}

	var evidence strings.Builder

	defaultOut := p.run.Run(ctx, p.tools.Pactl, "get-default-sink")
	fmt.Fprintf(&evidence, "pactl get-default-sink:\n%s\n", strings.TrimSpace(defaultOut.Combined()))

	if defaultOut.TimedOut {
		return id.Unknown("Cannot check default sink (pactl timed out)").WithEvidence(evidence.String())
	}
	if !defaultOut.Success {
		return id.Error(
			"Cannot determine default sink (audio server not responding)",
			"Ensure PipeWire or PulseAudio is running",
		).WithEvidence(evidence.String())
	}

	defaultSink := strings.TrimSpace(defaultOut.Stdout)
	if defaultSink == "" {
		return id.Error(
			"No default sink configured",
			"Set a default output device in your sound settings",
		).WithEvidence(evidence.String())
	}

	sinksOut := p.run.Run(ctx, p.tools.Pactl, "list", "sinks")
	fmt.Fprintf(&evidence, "pactl list sinks:\n%s\n", truncate(sinksOut.Combined(), 2000))

	if !sinksOut.Success {
		return id.Unknown("Cannot list sinks to verify the default output").WithEvidence(evidence.String())
	}

	info, found := parseSinkInfo(sinksOut.Stdout, defaultSink)
	if !found {
		return id.Error(
			fmt.Sprintf("Default sink '%s' not found in sink list", defaultSink),
			"Your default audio device may have been removed. Select a new output device.",
		).WithEvidence(evidence.String())
	}

	if strings.EqualFold(info.state, "SUSPENDED") {
		return id.Warning(
			"Default sink is SUSPENDED (no active audio streams)",
			"This is normal when nothing is playing. Try playing audio.",
		).WithEvidence(evidence.String())
	}

	isHDMI := strings.Contains(strings.ToLower(info.name), "hdmi") ||
		strings.Contains(strings.ToLower(info.description), "hdmi")
	if isHDMI {
		if strings.Contains(strings.ToLower(info.activePort), "unavailable") ||
			info.portAvailability == "not available" {
			return id.Error(
				fmt.Sprintf("Default output is HDMI (%s) but appears disconnected", info.description),
				"Switch output to Built-in Audio or connect your HDMI display",
			).WithEvidence(evidence.String())
		}
	}

	return id.OK(fmt.Sprintf("Default sink: %s", info.description)).WithEvidence(evidence.String())
}
