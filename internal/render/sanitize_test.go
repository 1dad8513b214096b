package render

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Flu", "Flu"},
		{"color codes", "\x1b[31mFlu\x1b[0m", "Flu"},
		{"cursor movement", "Cold\x1b[2J\x1b[H", "Cold"},
		{"bell and backspace", "bad\x07\x08 input", "bad input"},
		{"keeps newline and tab", "a\nb\tc", "a\nb\tc"},
		{"markup is literal", "<b>Flu</b>", "<b>Flu</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Flu\n", "Flu"},
		{"high\r\nfever", "high fever"},
		{"a\tb", "a b"},
		{"\x1b[1mCommon Cold\x1b[0m", "Common Cold"},
	}

	for _, tt := range tests {
		if got := SanitizeLine(tt.input); got != tt.want {
			t.Errorf("SanitizeLine(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
