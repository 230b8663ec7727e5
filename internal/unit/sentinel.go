package unit

import "lyra/internal/diag"

// NoUnit is the shared null object for "no unit here". Exists and
// IsJavaSource are false, the set-valued accessors stay empty, mutations
// of the dependency sets are no-ops, and diagnostics are discarded. Call
// sites that would otherwise branch on a nil unit return NoUnit instead.
var NoUnit = New(nil, diag.NewContext(diag.NopReporter{}))
