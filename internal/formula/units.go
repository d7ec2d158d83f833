// ABOUTME: Lossless metric/imperial unit conversions for mass and length.
// ABOUTME: Round-trip error is bounded by floating-point precision only.
package formula

// UnitKind selects which conversion factor applies.
type UnitKind string

const (
	Mass   UnitKind = "mass"   // kg <-> lb
	Length UnitKind = "length" // cm <-> in
)

const (
	// KgPerLb is the exact international avoirdupois pound.
	KgPerLb = 0.45359237
	// CmPerIn is the exact international inch.
	CmPerIn = 2.54
)

// ToMetric converts an imperial value (lb or in) to metric (kg or cm).
func ToMetric(value float64, kind UnitKind) (float64, error) {
	switch kind {
	case Mass:
		return value * KgPerLb, nil
	case Length:
		return value * CmPerIn, nil
	default:
		return 0, &InvalidEnumError{Kind: "unit kind", Value: string(kind)}
	}
}

// ToImperial converts a metric value (kg or cm) to imperial (lb or in).
func ToImperial(value float64, kind UnitKind) (float64, error) {
	switch kind {
	case Mass:
		return value / KgPerLb, nil
	case Length:
		return value / CmPerIn, nil
	default:
		return 0, &InvalidEnumError{Kind: "unit kind", Value: string(kind)}
	}
}
