package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// Informational
	InfoEcho    Code = 100
	InfoComment Code = 101

	// Errors
	ErrGeneric Code = 1001
	// ErrIncompleteInput means the source ended before a construct was
	// complete. Interactive front ends keep prompting on it instead of
	// treating the input as malformed.
	ErrIncompleteInput Code = 1002

	// Warnings
	WarnGeneric     Code = 2001
	WarnDeprecation Code = 2002
	WarnUnchecked   Code = 2003
	WarnInliner     Code = 2004
)

func (c Code) String() string {
	return fmt.Sprintf("LYRA%04d", uint16(c))
}

// DefaultSeverity maps a code onto the severity its range implies.
func (c Code) DefaultSeverity() Severity {
	switch {
	case c >= 2000:
		return SevWarning
	case c >= 1000:
		return SevError
	default:
		return SevInfo
	}
}
