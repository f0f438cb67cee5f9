package diagnose

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Probe is one diagnostic routine. Run must never fail: any inability to
// determine the probed fact is encoded as a severity-unknown finding.
type Probe interface {
	ID() CheckID
	Description() string
	Run(ctx context.Context) Finding
}

// Runner executes every registered probe sequentially and collects their
// findings. It never short-circuits on an upstream failure: downstream
// findings remain informative even when the audio service is down.
type Runner struct {
	probes []Probe
	logger *slog.Logger
}

// NewRunner builds a runner over the given probes.
func NewRunner(probes []Probe, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{probes: probes, logger: logger}
}

// Probes returns the registered probes in registration order.
func (r *Runner) Probes() []Probe {
	out := make([]Probe, len(r.probes))
	copy(out, r.probes)
	return out
}

// RunAll runs every probe and returns the collected findings. The only error
// path is context cancellation; probe-level failures surface as unknown
// findings, never as errors.
func (r *Runner) RunAll(ctx context.Context) ([]Finding, error) {
	logger := r.logger.With("run_id", uuid.NewString())
	findings := make([]Finding, 0, len(r.probes))
	for _, probe := range r.probes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug("running probe", "check", string(probe.ID()))
		finding := probe.Run(ctx)
		logger.Debug("probe finished",
			"check", string(finding.Check),
			"severity", string(finding.Severity),
			"message", finding.Message)
		findings = append(findings, finding)
	}
	return findings, nil
}
