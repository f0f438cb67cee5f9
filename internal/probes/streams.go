package probes

import (
	"context"
	"fmt"
	"strings"

	"whynosound/internal/diagnose"
)

// SinkInputsProbe detects active streams bound to a non-default sink.
type SinkInputsProbe struct {
	run   commandRunner
	tools Tools
}

func (p *SinkInputsProbe) ID() diagnose.CheckID { return diagnose.CheckSinkInputs }

func (p *SinkInputsProbe) Description() string {
	return "Stream routing via pactl list sink-inputs"
}

func (p *SinkInputsProbe) Run(ctx context.Context) diagnose.Finding {
	id := p.ID()
	if p.tools.Pactl == "" {
		return id.Unknown("Cannot check stream routing (pactl not installed)")
	}

	defaultOut := p.run.Run(ctx, p.tools.Pactl, "get-default-sink")
	defaultSink := strings.TrimSpace(defaultOut.Stdout)
	if defaultSink == "" {
		return id.Warning(
			"Cannot check stream routing (no default sink)",
			"Set a default output device first",
		)
	}

	inputsOut := p.run.Run(ctx, p.tools.Pactl, "list", "sink-inputs")
	evidence := fmt.Sprintf("pactl list sink-inputs:\n%s\n", inputsOut.Combined())

	if !inputsOut.Success {
		return id.Unknown("Cannot list active audio streams").WithEvidence(evidence)
	}

	inputs := parseSinkInputs(inputsOut.Stdout)
	if len(inputs) == 0 {
		return id.OK("No active audio streams (nothing playing)").WithEvidence(evidence)
	}

	sinksOut := p.run.Run(ctx, p.tools.Pactl, "list", "sinks")
	sinkNames := parseSinkIndexMap(sinksOut.Stdout)

	var misrouted []string
	for _, input := range inputs {
		sinkName := sinkNames[input.sinkIndex]
		if sinkName != "" && sinkName != defaultSink {
			misrouted = append(misrouted, fmt.Sprintf("'%s' is playing to '%s'", input.appName, sinkName))
		}
	}

	if len(misrouted) > 0 {
		return id.Warning(
			fmt.Sprintf("%d stream(s) playing to non-default output: %s",
				len(misrouted), strings.Join(misrouted, ", ")),
			"Move streams to default output in sound settings or pavucontrol",
		).WithEvidence(evidence)
	}
	return id.OK(fmt.Sprintf("%d active stream(s) correctly routed", len(inputs))).WithEvidence(evidence)
}
