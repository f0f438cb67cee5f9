package diagnose

import (
	"fmt"
	"sort"
)

// Report is the immutable aggregation of one diagnostic run. Findings are
// ordered by check priority, not probe execution order.
type Report struct {
	Findings     []Finding `json:"findings"`
	ErrorCount   int       `json:"errorCount"`
	WarningCount int       `json:"warningCount"`
	UnknownCount int       `json:"unknownCount"`
	RootCause    *Finding  `json:"rootCause,omitempty"`
	Remediations []string  `json:"remediations"`
	Summary      string    `json:"summary"`
	Healthy      bool      `json:"healthy"`
}

// Aggregate builds a report from a complete finding set. It returns an error
// when the set violates the one-finding-per-check invariant; that error is an
// internal fault, never a diagnostic outcome.
func Aggregate(findings []Finding) (*Report, error) {
	if err := validateFindings(findings); err != nil {
		return nil, err
	}

	ordered := make([]Finding, len(findings))
	copy(ordered, findings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Check.Rank() < ordered[j].Check.Rank()
	})

	report := &Report{
		Findings:     ordered,
		Remediations: []string{},
	}

	for _, f := range ordered {
		switch f.Severity {
		case SeverityError:
			report.ErrorCount++
		case SeverityWarning:
			report.WarningCount++
		case SeverityUnknown:
			report.UnknownCount++
		}
	}

	// Root cause: the most upstream error, falling back to the most
	// upstream warning. Downstream symptoms are frequently consequences of
	// an upstream cause, so rank order beats discovery order and severity
	// tie-breaks.
	for _, severity := range []Severity{SeverityError, SeverityWarning} {
		for _, f := range ordered {
			if f.Severity == severity {
				cause := f
				report.RootCause = &cause
				break
			}
		}
		if report.RootCause != nil {
			break
		}
	}

	seen := make(map[string]struct{})
	for _, f := range ordered {
		if f.Severity != SeverityError && f.Severity != SeverityWarning {
			continue
		}
		if f.Suggestion == "" {
			continue
		}
		if _, dup := seen[f.Suggestion]; dup {
			continue
		}
		seen[f.Suggestion] = struct{}{}
		report.Remediations = append(report.Remediations, f.Suggestion)
	}

	report.Healthy = report.ErrorCount == 0 && report.WarningCount == 0
	report.Summary = summarize(report)
	return report, nil
}

// WithoutEvidence returns a copy of the report with raw command transcripts
// stripped from every finding, for non-debug output.
func (r *Report) WithoutEvidence() *Report {
	stripped := *r
	stripped.Findings = make([]Finding, len(r.Findings))
	for i, f := range r.Findings {
		f.Evidence = ""
		stripped.Findings[i] = f
	}
	if r.RootCause != nil {
		cause := *r.RootCause
		cause.Evidence = ""
		stripped.RootCause = &cause
	}
	return &stripped
}

func validateFindings(findings []Finding) error {
	seen := make(map[CheckID]struct{}, len(findings))
	for _, f := range findings {
		if !f.Check.Known() {
			return fmt.Errorf("diagnose: finding for unknown check %q", f.Check)
		}
		if _, dup := seen[f.Check]; dup {
			return fmt.Errorf("diagnose: duplicate finding for check %q", f.Check)
		}
		seen[f.Check] = struct{}{}
	}
	for _, id := range checkOrder {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("diagnose: no finding for check %q", id)
		}
	}
	return nil
}

func summarize(r *Report) string {
	switch {
	case r.ErrorCount > 0:
		cause := "unknown"
		if r.RootCause != nil {
			cause = r.RootCause.Message
		}
		return fmt.Sprintf("Found %d error(s) and %d warning(s). Most likely cause: %s",
			r.ErrorCount, r.WarningCount, cause)
	case r.WarningCount > 0:
		return fmt.Sprintf("No critical issues found, but %d warning(s) detected that may affect audio.",
			r.WarningCount)
	case r.UnknownCount > 0:
		return fmt.Sprintf("%d check(s) were inconclusive; no confirmed issues, but the system could not be fully verified.",
			r.UnknownCount)
	default:
		return "Audio system appears healthy. If you still have no sound, the issue may be application-specific."
	}
}
