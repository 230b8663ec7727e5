package diag

// Severity ranks how serious a diagnostic is. Severities compare
// numerically, so SevError > SevWarning > SevInfo; Bag.HasErrors and the
// sort order rely on that.
type Severity uint8

const (
	// SevInfo marks informational output (echo, tooling comments).
	SevInfo Severity = iota
	// SevWarning marks non-fatal findings, including the categorized
	// deprecation/unchecked/inliner warnings.
	SevWarning
	// SevError marks hard failures. Reporting one does not abort the
	// run; continuing or stopping is the driver's decision.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
