package render

// Markdown renders trusted markdown content for terminal display.
// Server-provided text must go through SanitizeText instead.
func Markdown(content string, opts Options) (string, error) {
	return globalCache.render(content, opts)
}
