package probes

import (
	"context"
	"fmt"
	"strings"

	"whynosound/internal/diagnose"
)

// AudioStackProbe detects whether PipeWire, WirePlumber, or PulseAudio is
// running.
type AudioStackProbe struct {
	run   commandRunner
	tools Tools
}

func (p *AudioStackProbe) ID() diagnose.CheckID { return diagnose.CheckAudioStack }

func (p *AudioStackProbe) Description() string {
	return "Audio server status via systemctl --user and pactl info"
}

func (p *AudioStackProbe) Run(ctx context.Context) diagnose.Finding {
	id := p.ID()
	if p.tools.Systemctl == "" && p.tools.Pactl == "" {
		return id.Unknown("Cannot check audio server status (systemctl and pactl not installed)")
	}

	var evidence strings.Builder
	pipewireRunning := false
	wireplumberRunning := false

	if p.tools.Systemctl != "" {
		pipewire := p.run.Run(ctx, p.tools.Systemctl, "--user", "is-active", "pipewire")
		fmt.Fprintf(&evidence, "systemctl --user is-active pipewire:\n%s\n", strings.TrimSpace(pipewire.Combined()))
		pipewireRunning = strings.TrimSpace(pipewire.Stdout) == "active"

		wireplumber := p.run.Run(ctx, p.tools.Systemctl, "--user", "is-active", "wireplumber")
		fmt.Fprintf(&evidence, "systemctl --user is-active wireplumber:\n%s\n", strings.TrimSpace(wireplumber.Combined()))
		wireplumberRunning = strings.TrimSpace(wireplumber.Stdout) == "active"
	}

	pactlWorks := false
	serverName := ""
	if p.tools.Pactl != "" {
		info := p.run.Run(ctx, p.tools.Pactl, "info")
		fmt.Fprintf(&evidence, "pactl info:\n%s\n", truncate(info.Combined(), 500))
		pactlWorks = info.Success
		for _, line := range strings.Split(info.Stdout, "\n") {
			if name, ok := strings.CutPrefix(line, "Server Name:"); ok {
				serverName = strings.TrimSpace(name)
				break
			}
		}
	}
	isPipewirePulse := strings.Contains(strings.ToLower(serverName), "pipewire")

	switch {
	case pipewireRunning && wireplumberRunning:
		return id.OK("PipeWire and WirePlumber are running").WithEvidence(evidence.String())
	case pipewireRunning && !wireplumberRunning:
		return id.Warning(
			"PipeWire is running but WirePlumber is not",
			"Start WirePlumber: systemctl --user start wireplumber",
		).WithEvidence(evidence.String())
	case pactlWorks && !isPipewirePulse:
		return id.OK("PulseAudio is running (legacy mode)").WithEvidence(evidence.String())
	case pactlWorks && isPipewirePulse:
		// Socket activation makes pactl respond while systemd reports
		// the pipewire unit inactive.
		return id.OK("PipeWire is running (socket-activated)").WithEvidence(evidence.String())
	case p.tools.Pactl == "":
		return id.Unknown("Audio server units are inactive and pactl is not installed to verify").
			WithEvidence(evidence.String())
	default:
		return id.Error(
			"No audio server detected",
			"Start PipeWire: systemctl --user start pipewire pipewire-pulse wireplumber",
		).WithEvidence(evidence.String())
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
