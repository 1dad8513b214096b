package models

import (
	"fmt"
	"math"
	"strings"
)

// PredictResult is the decoded body of a prediction reply.
// Exactly one of Error or Prediction is meaningful.
type PredictResult struct {
	Error      string
	Prediction *Prediction
}

// IsError reports whether the server returned a semantic error
func (r *PredictResult) IsError() bool {
	return r.Error != ""
}

// Prediction is a diagnosis returned by the prediction service.
// Every field is optional on the wire.
type Prediction struct {
	Disease      string
	Confidence   float64
	SymptomsUsed []Symptom
	// HasSymptoms distinguishes a missing symptoms_used from an empty one
	HasSymptoms bool
}

// DiseaseName returns the disease or the fallback text
func (p *Prediction) DiseaseName() string {
	if strings.TrimSpace(p.Disease) == "" {
		return UnknownCondition
	}
	return p.Disease
}

// Percent returns the confidence as a rounded 0..100 percentage
func (p *Prediction) Percent() int {
	return int(math.Round(p.Confidence * 100))
}

// Severity returns the severity bucket for this prediction
func (p *Prediction) Severity() Severity {
	return SeverityFromConfidence(p.Confidence)
}

// SeverityLine renders e.g. "high severity - 80% confidence"
func (p *Prediction) SeverityLine() string {
	return fmt.Sprintf("%s severity - %d%% confidence", p.Severity(), p.Percent())
}

// Tags returns the display names of the symptoms the server used
func (p *Prediction) Tags() []string {
	tags := make([]string, len(p.SymptomsUsed))
	for i, s := range p.SymptomsUsed {
		tags[i] = s.DisplayName()
	}
	return tags
}

// Summary is a one-line plain text form, used for the clipboard and logs
func (p *Prediction) Summary() string {
	s := fmt.Sprintf("%s (%s)", p.DiseaseName(), p.SeverityLine())
	if tags := p.Tags(); len(tags) > 0 {
		s += " based on: " + strings.Join(tags, ", ")
	}
	return s
}
