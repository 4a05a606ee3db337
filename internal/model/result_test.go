package model

import "testing"

func TestWorkflowState_Defaults(t *testing.T) {
	s := NewWorkflowState("req-1", "meh")

	if s.Stage != StageReceived {
		t.Errorf("expected stage %s, got %s", StageReceived, s.Stage)
	}
	if s.PredictionOr("N/A") != "N/A" {
		t.Error("expected fallback prediction before inference")
	}
	if s.ConfidenceOr(-1) != -1 {
		t.Error("expected fallback confidence before inference")
	}
	if s.FinalLabelOr("N/A") != "N/A" {
		t.Error("expected fallback final label before decision")
	}

	label, conf := "neutral", 0.4
	s.Prediction = &label
	s.Confidence = &conf
	s.FinalLabel = &label

	if s.PredictionOr("N/A") != "neutral" || s.ConfidenceOr(0) != 0.4 || s.FinalLabelOr("") != "neutral" {
		t.Errorf("unexpected accessors: %+v", s)
	}
}
