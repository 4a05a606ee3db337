package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/labelguard/internal/model"
)

const retryPrompt = "  Enter the correct label: "

// clarify keeps asking until the operator either accepts the prediction with
// an empty line or names a known label. There is no retry bound.
func (w *Workflow) clarify(ctx context.Context, state *model.WorkflowState) error {
	prediction := state.PredictionOr("")
	prompt := fmt.Sprintf("Could you clarify your intent? The model predicted '%s': ", prediction)

	for {
		answer, err := w.prompter.Ask(ctx, prompt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrClarify, err)
		}

		answer = strings.TrimSpace(answer)
		fmt.Fprintf(w.out, "User: %s\n", answer)

		if answer == "" {
			state.FinalLabel = &prediction
			return nil
		}

		if label, ok := w.labels.Match(answer); ok {
			state.FinalLabel = &label
			return nil
		}

		fmt.Fprintf(w.out, "  Invalid label. Please choose from: %s\n", w.labels)
		prompt = retryPrompt
	}
}
