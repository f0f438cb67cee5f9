package probes

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"whynosound/internal/diagnose"
)

// DevicePresenceProbe detects whether at least one audio card exists.
type DevicePresenceProbe struct {
	run   commandRunner
	tools Tools
}

func (p *DevicePresenceProbe) ID() diagnose.CheckID { return diagnose.CheckDevicePresence }

func (p *DevicePresenceProbe) Description() string {
	return "Audio card enumeration via aplay -l"
}

func (p *DevicePresenceProbe) Run(ctx context.Context) diagnose.Finding {
	id := p.ID()
	if p.tools.Aplay == "" {
		return id.Unknown("Cannot check audio devices (aplay not installed; install alsa-utils for full diagnostics)").
			WithEvidence(devNodeEvidence())
	}

	out := p.run.Run(ctx, p.tools.Aplay, "-l")
	evidence := fmt.Sprintf("aplay -l:\n%s%s\n%s", out.Stdout, out.Stderr, devNodeEvidence())

	if out.TimedOut {
		return id.Unknown("Cannot check audio devices (aplay timed out)").WithEvidence(evidence)
	}

	combined := out.Stdout + out.Stderr
	if strings.Contains(combined, "no soundcards found") {
		return id.Error(
			"No audio devices detected",
			"Possible cause: missing driver or disabled device in BIOS",
		).WithEvidence(evidence)
	}

	cardCount := 0
	for _, line := range strings.Split(out.Stdout, "\n") {
		if strings.HasPrefix(line, "card ") {
			cardCount++
		}
	}
	if cardCount == 0 {
		return id.Error(
			"No audio devices detected",
			"Possible cause: missing driver or disabled device in BIOS",
		).WithEvidence(evidence)
	}
	return id.OK(fmt.Sprintf("%d audio device(s) detected", cardCount)).WithEvidence(evidence)
}

// devNodeEvidence records whether /dev/snd is present and accessible, which
// separates "no driver loaded" from "devices hidden by permissions".
func devNodeEvidence() string {
	if err := unix.Access("/dev/snd", unix.R_OK|unix.X_OK); err != nil {
		return fmt.Sprintf("/dev/snd: not accessible (%v)\n", err)
	}
	return "/dev/snd: accessible\n"
}
