package models

// HealthStatus is the coarse indicator shown in the header badge
type HealthStatus string

const (
	HealthGood      HealthStatus = "good"
	HealthMild      HealthStatus = "mild"
	HealthSerious   HealthStatus = "serious"
	HealthAnalyzing HealthStatus = "analyzing"
)

// Label returns the badge text
func (h HealthStatus) Label() string {
	switch h {
	case HealthMild:
		return "Mild Symptoms"
	case HealthSerious:
		return "Serious Condition"
	case HealthAnalyzing:
		return "Analyzing..."
	default:
		return "Good Health"
	}
}

// Icon returns the badge glyph
func (h HealthStatus) Icon() string {
	switch h {
	case HealthMild:
		return "😐"
	case HealthSerious:
		return "☹"
	case HealthAnalyzing:
		return "⟳"
	default:
		return "☺"
	}
}

// Severity is the bucket derived from a confidence score
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Confidence thresholds shared by the badge and the card label
const (
	highConfidence   = 0.7
	mediumConfidence = 0.4
)

// SeverityFromConfidence maps a confidence in [0,1] to a severity bucket
func SeverityFromConfidence(confidence float64) Severity {
	switch {
	case confidence > highConfidence:
		return SeverityHigh
	case confidence > mediumConfidence:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// HealthStatus returns the badge state matching this severity
func (s Severity) HealthStatus() HealthStatus {
	switch s {
	case SeverityHigh:
		return HealthSerious
	case SeverityMedium:
		return HealthMild
	default:
		return HealthGood
	}
}

// Icon returns the glyph shown next to the severity line
func (s Severity) Icon() string {
	switch s {
	case SeverityHigh:
		return "▲"
	case SeverityMedium:
		return "●"
	default:
		return "ℹ"
	}
}
