package workflow

import "strings"

// Truncate keeps the first maxTokens whitespace-separated tokens of text.
// Texts within the limit are returned unchanged, including their spacing.
func Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}

	fields := strings.Fields(text)
	if len(fields) <= maxTokens {
		return text
	}

	return strings.Join(fields[:maxTokens], " ")
}
