package probes

import (
	"context"
	"os/exec"

	"whynosound/internal/config"
	"whynosound/internal/diagnose"
	"whynosound/internal/toolexec"
)

// commandRunner is the slice of toolexec.Runner the probes need. Tests
// substitute a fake with canned command transcripts.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) toolexec.Output
}

// Tools carries the per-run command availability state. An empty field means
// the binary is not installed; probes that depend on it yield inconclusive
// findings instead of failing.
type Tools struct {
	Pactl     string
	Aplay     string
	Systemctl string
}

// Detect resolves the configured tool binaries against PATH.
func Detect(cfg *config.Config) Tools {
	return Tools{
		Pactl:     lookPath(cfg.Tools.Pactl),
		Aplay:     lookPath(cfg.Tools.Aplay),
		Systemctl: lookPath(cfg.Tools.Systemctl),
	}
}

func lookPath(binary string) string {
	if binary == "" {
		return ""
	}
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return ""
	}
	return resolved
}

// All returns every probe in check priority order.
func All(run commandRunner, tools Tools) []diagnose.Probe {
	return []diagnose.Probe{
		&AudioStackProbe{run: run, tools: tools},
		&DevicePresenceProbe{run: run, tools: tools},
		&SinkValidityProbe{run: run, tools: tools},
		&MuteStateProbe{run: run, tools: tools},
		&SinkInputsProbe{run: run, tools: tools},
		&BluetoothProbe{run: run, tools: tools},
	}
}
