package unit

// Feature identifies an optional language feature that needs a one-time
// validation per unit (import of the enabling flag, version gate, ...).
type Feature uint8

const (
	FeatureInvalid Feature = iota
	FeatureXMLLiterals
	FeatureMacros
	FeatureDynamics
	FeaturePostfixOps
	FeatureReflectiveCalls
	FeatureHigherKinds
)

func (f Feature) String() string {
	switch f {
	case FeatureXMLLiterals:
		return "xml-literals"
	case FeatureMacros:
		return "macros"
	case FeatureDynamics:
		return "dynamics"
	case FeaturePostfixOps:
		return "postfix-ops"
	case FeatureReflectiveCalls:
		return "reflective-calls"
	case FeatureHigherKinds:
		return "higher-kinds"
	default:
		return "invalid"
	}
}

// FeatureChecked reports whether the feature was already validated for
// this unit.
func (u *Unit) FeatureChecked(f Feature) bool {
	_, ok := u.checkedFeatures[f]
	return ok
}

// MarkFeatureChecked records the validation. Returns false when the
// feature was already marked, so callers validate exactly once:
//
//	if u.MarkFeatureChecked(unit.FeatureMacros) { validate() }
//
// Non-existent units never validate anything: the mark is discarded and
// false is returned.
func (u *Unit) MarkFeatureChecked(f Feature) bool {
	if !u.Exists() {
		return false
	}
	if _, ok := u.checkedFeatures[f]; ok {
		return false
	}
	u.checkedFeatures[f] = struct{}{}
	return true
}
