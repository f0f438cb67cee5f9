// Package toolexec wraps external command execution for the probes. Every
// failure mode (binary missing, non-zero exit, timeout) is encoded in the
// returned Output so callers never handle errors.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Output captures one command invocation.
type Output struct {
	Stdout   string
	Stderr   string
	Success  bool
	NotFound bool
	TimedOut bool
}

// Combined returns stdout and stderr joined for evidence transcripts.
func (o Output) Combined() string {
	if o.Stderr == "" {
		return o.Stdout
	}
	if o.Stdout == "" {
		return o.Stderr
	}
	return o.Stdout + o.Stderr
}

// Runner executes commands with a per-invocation timeout.
type Runner struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewRunner builds a runner. A non-positive timeout falls back to 5 seconds.
func NewRunner(timeout time.Duration, logger *slog.Logger) *Runner {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{timeout: timeout, logger: logger}
}

// Run executes the command and captures its output. It never returns an
// error: a command that cannot run yields an Output describing why.
func (r *Runner) Run(ctx context.Context, name string, args ...string) Output {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	switch {
	case err == nil:
		out.Success = true
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		out.TimedOut = true
		if out.Stderr == "" {
			out.Stderr = "command timed out after " + r.timeout.String()
		}
	case errors.Is(err, exec.ErrNotFound):
		out.NotFound = true
		if out.Stderr == "" {
			out.Stderr = err.Error()
		}
	default:
		if out.Stderr == "" {
			out.Stderr = err.Error()
		}
	}

	r.logger.Debug("command finished",
		"command", name+" "+strings.Join(args, " "),
		"success", out.Success,
		"duration", time.Since(start))
	return out
}
