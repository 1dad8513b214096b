// Package models contains data types and constants for the SympTrack client.
package models

import (
	"fmt"
	"strings"
)

// Service paths, relative to the configured base URL
const (
	PathSymptoms = "/api/symptoms"
	PathPredict  = "/api/predict"

	// Legacy routes kept by the original server for older frontends
	PathLegacySymptoms = "/symptoms"
	PathLegacyPredict  = "/predict"
)

// Fixed user-facing texts
const (
	UnknownCondition = "Unknown condition"
	GenericFailure   = "Sorry, something went wrong. Please try again."
)

// QuickAction is one of the canned affordances offered by the welcome message
type QuickAction struct {
	ID    string
	Label string
	Reply string
}

// QuickActions lists the welcome affordances in display order
var QuickActions = []QuickAction{
	{ID: "headache", Label: "Report a new symptom", Reply: "Please describe your symptoms in detail."},
	{ID: "chart", Label: "View my health trends", Reply: "Here are your health trends..."},
	{ID: "medication", Label: "Log medication", Reply: "What medication would you like to log?"},
	{ID: "sleep", Label: "Monitor sleep patterns", Reply: "Let's analyze your sleep patterns..."},
}

// QuickActionReply returns the canned reply for an action id.
// Unknown ids report false.
func QuickActionReply(id string) (string, bool) {
	for _, a := range QuickActions {
		if a.ID == id {
			return a.Reply, true
		}
	}
	return "", false
}

// WelcomeMarkdown is the static greeting shown above the transcript,
// listing the quick actions with their function keys
func WelcomeMarkdown() string {
	var b strings.Builder
	b.WriteString("Hello! I'm **SympTrack AI**\n\n")
	b.WriteString("Your AI-powered assistant for smarter health tracking.\n\n")
	for i, a := range QuickActions {
		fmt.Fprintf(&b, "- `F%d` or `/%s`  %s\n", i+1, a.ID, a.Label)
	}
	return b.String()
}
