package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeverityFromConfidence(t *testing.T) {
	tests := []struct {
		confidence float64
		severity   Severity
		health     HealthStatus
	}{
		{0.85, SeverityHigh, HealthSerious},
		{0.71, SeverityHigh, HealthSerious},
		{0.7, SeverityMedium, HealthMild},
		{0.5, SeverityMedium, HealthMild},
		{0.4, SeverityLow, HealthGood},
		{0.2, SeverityLow, HealthGood},
		{0, SeverityLow, HealthGood},
	}

	for _, tt := range tests {
		got := SeverityFromConfidence(tt.confidence)
		if got != tt.severity {
			t.Errorf("SeverityFromConfidence(%v) = %s, want %s", tt.confidence, got, tt.severity)
		}
		if got.HealthStatus() != tt.health {
			t.Errorf("SeverityFromConfidence(%v).HealthStatus() = %s, want %s", tt.confidence, got.HealthStatus(), tt.health)
		}
	}
}

func TestPredictionCardFields(t *testing.T) {
	p := &Prediction{
		Disease:      "Flu",
		Confidence:   0.8,
		SymptomsUsed: []Symptom{"high_fever", "cough"},
		HasSymptoms:  true,
	}

	if p.DiseaseName() != "Flu" {
		t.Errorf("DiseaseName() = %s", p.DiseaseName())
	}
	if p.SeverityLine() != "high severity - 80% confidence" {
		t.Errorf("SeverityLine() = %q", p.SeverityLine())
	}
	if diff := cmp.Diff([]string{"high fever", "cough"}, p.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
	want := "Flu (high severity - 80% confidence) based on: high fever, cough"
	if p.Summary() != want {
		t.Errorf("Summary() = %q, want %q", p.Summary(), want)
	}
}

func TestPredictionFallbacks(t *testing.T) {
	p := &Prediction{}

	if p.DiseaseName() != UnknownCondition {
		t.Errorf("DiseaseName() = %s, want %s", p.DiseaseName(), UnknownCondition)
	}
	if p.SeverityLine() != "low severity - 0% confidence" {
		t.Errorf("SeverityLine() = %q", p.SeverityLine())
	}
	if len(p.Tags()) != 0 {
		t.Errorf("expected no tags, got %v", p.Tags())
	}
	if p.Summary() != "Unknown condition (low severity - 0% confidence)" {
		t.Errorf("Summary() = %q", p.Summary())
	}
}

func TestPercentRounding(t *testing.T) {
	tests := []struct {
		confidence float64
		want       int
	}{
		{0.8, 80},
		{0.125, 13},
		{0.994, 99},
		{1, 100},
	}
	for _, tt := range tests {
		p := &Prediction{Confidence: tt.confidence}
		if got := p.Percent(); got != tt.want {
			t.Errorf("Percent(%v) = %d, want %d", tt.confidence, got, tt.want)
		}
	}
}

func TestMessageConstructors(t *testing.T) {
	if m := ErrorMessage("bad input"); m.Role != RoleError || m.Text != "Error: bad input" {
		t.Errorf("ErrorMessage() = %+v", m)
	}
	if m := UserMessage("hi"); m.Role != RoleUser || m.IsCard() {
		t.Errorf("UserMessage() = %+v", m)
	}
	if m := PredictionMessage(&Prediction{Disease: "Flu"}); !m.IsCard() || m.Role != RoleAssistant {
		t.Errorf("PredictionMessage() = %+v", m)
	}
}

func TestQuickActionReply(t *testing.T) {
	tests := []struct {
		id    string
		reply string
		ok    bool
	}{
		{"headache", "Please describe your symptoms in detail.", true},
		{"chart", "Here are your health trends...", true},
		{"medication", "What medication would you like to log?", true},
		{"sleep", "Let's analyze your sleep patterns...", true},
		{"unknown", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		reply, ok := QuickActionReply(tt.id)
		if reply != tt.reply || ok != tt.ok {
			t.Errorf("QuickActionReply(%q) = (%q, %v), want (%q, %v)", tt.id, reply, ok, tt.reply, tt.ok)
		}
	}
}

func TestHealthStatusLabels(t *testing.T) {
	labels := map[HealthStatus]string{
		HealthGood:      "Good Health",
		HealthMild:      "Mild Symptoms",
		HealthSerious:   "Serious Condition",
		HealthAnalyzing: "Analyzing...",
	}
	for status, want := range labels {
		if status.Label() != want {
			t.Errorf("%s.Label() = %s, want %s", status, status.Label(), want)
		}
	}
}

func TestWelcomeMarkdownListsQuickActions(t *testing.T) {
	welcome := WelcomeMarkdown()
	for i, a := range QuickActions {
		if !strings.Contains(welcome, a.Label) {
			t.Errorf("welcome message missing label %q", a.Label)
		}
		if !strings.Contains(welcome, "/"+a.ID) {
			t.Errorf("welcome message missing command /%s", a.ID)
		}
		if !strings.Contains(welcome, fmt.Sprintf("F%d", i+1)) {
			t.Errorf("welcome message missing key F%d", i+1)
		}
	}
}
