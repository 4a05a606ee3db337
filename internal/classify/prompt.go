package classify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ppiankov/labelguard/internal/model"
)

const systemPrompt = "You are a text classifier. You answer with a single JSON object and nothing else."

// BuildPrompt asks a general-purpose LLM to behave like a fixed-vocabulary
// classifier and report its own confidence.
func BuildPrompt(text string, labels model.LabelSet) string {
	var b strings.Builder

	b.WriteString("Classify the text below into exactly one of these labels:\n")
	for _, l := range labels {
		fmt.Fprintf(&b, "- %s\n", l)
	}
	b.WriteString(`
Respond with JSON of the form {"label": "<one label from the list>", "confidence": <number between 0 and 1>}.
The confidence is your probability that the label is correct. Do not add any other keys or prose.

Text:
"""
`)
	b.WriteString(text)
	b.WriteString("\n\"\"\"\n")

	return b.String()
}

// parseAnswer extracts the JSON object from an LLM reply. Models sometimes
// wrap it in code fences or add a sentence around it.
func parseAnswer(content string) (model.ClassificationResult, error) {
	var res model.ClassificationResult

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return res, fmt.Errorf("%w: no JSON object in %q", ErrInvalidResponse, truncateForError(content))
	}

	if err := json.Unmarshal([]byte(content[start:end+1]), &res); err != nil {
		return res, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return res, nil
}

func truncateForError(s string) string {
	const limit = 120
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
