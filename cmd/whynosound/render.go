package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"whynosound/internal/diagnose"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

const divider = "─────────────────────────────────────────"

type renderOptions struct {
	Debug    bool
	Colorize bool
}

// renderHuman writes the glyph-per-check report, the overall verdict, the
// probable root cause, and the numbered fix list.
func renderHuman(w io.Writer, report *diagnose.Report, opts renderOptions) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🔊 whynosound — Linux Audio Diagnostic")
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)

	for _, finding := range report.Findings {
		fmt.Fprintf(w, "%s %s\n", finding.Severity.Glyph(), colorizeMessage(finding, opts.Colorize))
		if finding.Suggestion != "" {
			fmt.Fprintf(w, "   👉 Fix: %s\n", finding.Suggestion)
		}
		if opts.Debug && finding.Evidence != "" {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "   [DEBUG: %s]\n", finding.Check)
			for _, line := range strings.Split(strings.TrimRight(finding.Evidence, "\n"), "\n") {
				fmt.Fprintf(w, "   | %s\n", line)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)
	fmt.Fprintln(w, verdictLine(report, opts.Colorize))
	fmt.Fprintln(w)
	fmt.Fprintln(w, report.Summary)

	if report.RootCause != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "🎯 Probable root cause:")
		fmt.Fprintf(w, "   %s\n", report.RootCause.Message)
	}

	if len(report.Remediations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "📋 Suggested fixes (in order):")
		for i, fix := range report.Remediations {
			fmt.Fprintf(w, "   %d. %s\n", i+1, fix)
		}
	}

	fmt.Fprintln(w)
}

func verdictLine(report *diagnose.Report, colorize bool) string {
	var line, color string
	switch {
	case report.ErrorCount > 0:
		line = "❌ DIAGNOSIS: Issues detected"
		color = ansiRed
	case report.WarningCount > 0:
		line = "⚠️  DIAGNOSIS: Potential issues"
		color = ansiYellow
	case report.UnknownCount > 0:
		line = "❓ DIAGNOSIS: Inconclusive"
		color = ansiDim
	default:
		line = "✅ DIAGNOSIS: System looks healthy"
		color = ansiGreen
	}
	if colorize {
		return color + line + ansiReset
	}
	return line
}

func colorizeMessage(finding diagnose.Finding, colorize bool) string {
	if !colorize {
		return finding.Message
	}
	switch finding.Severity {
	case diagnose.SeverityError:
		return ansiRed + finding.Message + ansiReset
	case diagnose.SeverityWarning:
		return ansiYellow + finding.Message + ansiReset
	case diagnose.SeverityUnknown:
		return ansiDim + finding.Message + ansiReset
	default:
		return finding.Message
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
