// Package workflow decides whether a classifier's answer can be trusted or
// must be confirmed by the operator.
//
// The routine has two steps. Inference always runs; clarification runs only
// when the confidence is strictly below the threshold.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/ppiankov/labelguard/internal/classify"
	"github.com/ppiankov/labelguard/internal/model"
)

const (
	// DefaultThreshold is the confidence below which a prediction is not trusted.
	DefaultThreshold = 0.80

	// DefaultMaxTokens bounds the text sent to the classifier.
	DefaultMaxTokens = 512
)

var (
	// ErrClassify wraps classifier failures.
	ErrClassify = errors.New("classification failed")

	// ErrClarify wraps failures to read the operator's clarification.
	ErrClarify = errors.New("clarification failed")
)

// Prompter asks the operator a question and returns the raw answer line.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Options configures a Workflow. Zero values select the defaults.
type Options struct {
	Threshold float64
	MaxTokens int
	Labels    model.LabelSet
	Out       io.Writer // Progress and validation notices
}

// Workflow runs one text through inference and optional clarification.
type Workflow struct {
	classifier classify.Classifier
	prompter   Prompter
	labels     model.LabelSet
	threshold  float64
	maxTokens  int
	out        io.Writer
}

// New creates a workflow around a classifier and an operator prompter.
func New(classifier classify.Classifier, prompter Prompter, opts Options) *Workflow {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	return &Workflow{
		classifier: classifier,
		prompter:   prompter,
		labels:     opts.Labels,
		threshold:  opts.Threshold,
		maxTokens:  opts.MaxTokens,
		out:        opts.Out,
	}
}

// Threshold returns the confidence gate in use.
func (w *Workflow) Threshold() float64 {
	return w.threshold
}

// Run classifies text and, for low-confidence predictions, asks the operator
// for the label. The returned state is never nil; on error it holds whatever
// was computed before the failure.
func (w *Workflow) Run(ctx context.Context, text string) (*model.WorkflowState, error) {
	state := model.NewWorkflowState(uuid.NewString(), text)

	if err := w.infer(ctx, state); err != nil {
		return state, err
	}

	if !w.needsClarification(*state.Confidence) {
		state.FinalLabel = state.Prediction
		state.Stage = model.StageDecided
		return state, nil
	}

	fmt.Fprintln(w.out, "Confidence too low. Asking for clarification...")
	state.Stage = model.StageAwaitingClarification
	state.FallbackInvoked = true

	if err := w.clarify(ctx, state); err != nil {
		return state, err
	}

	state.Stage = model.StageDecided
	return state, nil
}

func (w *Workflow) infer(ctx context.Context, state *model.WorkflowState) error {
	res, err := w.classifier.Classify(ctx, classify.Request{
		Text:      Truncate(state.InputText, w.maxTokens),
		RequestID: state.RequestID,
		Labels:    w.labels,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClassify, err)
	}

	label, confidence := res.Label, res.Confidence
	state.Prediction = &label
	state.Confidence = &confidence
	state.Stage = model.StageInferred

	fmt.Fprintf(w.out, "Predicted label: %s | Confidence: %.0f%%\n", label, confidence*100)
	return nil
}

// needsClarification is strictly "less than": a confidence equal to the
// threshold is accepted.
func (w *Workflow) needsClarification(confidence float64) bool {
	return confidence < w.threshold
}
