package chat

import "strings"

// ParseQuickCommand recognises "/<id>" input. It returns the id and true for
// any slash command; whether the id is known is up to QuickAction.
func ParseQuickCommand(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") || strings.ContainsAny(input, " \t\n") {
		return "", false
	}
	return strings.ToLower(strings.TrimPrefix(input, "/")), true
}
