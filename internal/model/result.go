package model

// ClassificationResult is what a classifier returns for one text.
type ClassificationResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // In [0, 1]
}

// Stage marks how far a request has progressed through the decision workflow.
type Stage string

const (
	StageReceived              Stage = "received"
	StageInferred              Stage = "inferred"
	StageAwaitingClarification Stage = "awaiting_clarification"
	StageDecided               Stage = "decided"
)

// WorkflowState carries one request through inference and, when needed,
// clarification. It lives for a single request only.
type WorkflowState struct {
	RequestID       string   `json:"request_id"`
	InputText       string   `json:"input_text"`
	Prediction      *string  `json:"prediction,omitempty"`
	Confidence      *float64 `json:"confidence,omitempty"`
	FallbackInvoked bool     `json:"fallback_invoked"`
	FinalLabel      *string  `json:"final_label,omitempty"`
	Stage           Stage    `json:"stage"`
}

// NewWorkflowState starts a state for text.
func NewWorkflowState(requestID, text string) *WorkflowState {
	return &WorkflowState{
		RequestID: requestID,
		InputText: text,
		Stage:     StageReceived,
	}
}

// PredictionOr returns the prediction, or def when inference has not run.
func (s *WorkflowState) PredictionOr(def string) string {
	if s.Prediction == nil {
		return def
	}
	return *s.Prediction
}

// ConfidenceOr returns the confidence, or def when inference has not run.
func (s *WorkflowState) ConfidenceOr(def float64) float64 {
	if s.Confidence == nil {
		return def
	}
	return *s.Confidence
}

// FinalLabelOr returns the decided label, or def when no decision was made.
func (s *WorkflowState) FinalLabelOr(def string) string {
	if s.FinalLabel == nil {
		return def
	}
	return *s.FinalLabel
}
