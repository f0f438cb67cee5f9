package diagnose

// Finding is the structured outcome of one probe. Findings are created once
// per run and never mutated; WithEvidence returns a copy.
type Finding struct {
	Check      CheckID  `json:"check"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Evidence   string   `json:"evidence,omitempty"`
}

// OK builds a passing finding.
func (id CheckID) OK(message string) Finding {
	return Finding{Check: id, Severity: SeverityOK, Message: message}
}

// Warning builds a finding for a confirmed but non-fatal problem.
func (id CheckID) Warning(message, suggestion string) Finding {
	return Finding{Check: id, Severity: SeverityWarning, Message: message, Suggestion: suggestion}
}

// Error builds a finding for a confirmed problem that breaks audio.
func (id CheckID) Error(message, suggestion string) Finding {
	return Finding{Check: id, Severity: SeverityError, Message: message, Suggestion: suggestion}
}

// Unknown builds a finding for a fact the probe could not determine.
func (id CheckID) Unknown(message string) Finding {
	return Finding{Check: id, Severity: SeverityUnknown, Message: message}
}

// WithEvidence returns a copy of the finding carrying the raw command
// transcript for debug output.
func (f Finding) WithEvidence(evidence string) Finding {
	f.Evidence = evidence
	return f
}
