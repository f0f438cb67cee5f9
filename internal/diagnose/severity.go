package diagnose

// Severity classifies a finding. Unknown means the probe could not determine
// the fact at all (tool missing, unparseable output, timeout) and is distinct
// from both Ok and Error: it never counts toward the verdict but is always
// surfaced.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityUnknown Severity = "unknown"
)

// Glyph returns the marker used for human output.
func (s Severity) Glyph() string {
	switch s {
	case SeverityOK:
		return "✅"
	case SeverityWarning:
		return "⚠️"
	case SeverityError:
		return "❌"
	default:
		return "❓"
	}
}
