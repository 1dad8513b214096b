package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeText removes ANSI escape sequences and control characters from
// untrusted text. Newlines and tabs survive.
func SanitizeText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// SanitizeLine is SanitizeText for single-line fields: line breaks and
// tabs become spaces and the result is trimmed.
func SanitizeLine(s string) string {
	s = SanitizeText(s)
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(s)
	return strings.TrimSpace(s)
}
