package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewLabelSet_TrimsAndDedups(t *testing.T) {
	got := NewLabelSet(" joy", "Anger", "", "JOY", "fear ", "anger")
	want := LabelSet{"joy", "Anger", "fear"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewLabelSet mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelSet_Match(t *testing.T) {
	labels := NewLabelSet("joy", "Anger", "neutral")

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"joy", "joy", true},
		{"JOY", "joy", true},
		{"  anger  ", "Anger", true},
		{"ANGER", "Anger", true},
		{"xyz", "", false},
		{"", "", false},
		{"   ", "", false},
		{"jo", "", false},
	}

	for _, tt := range tests {
		got, ok := labels.Match(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLabelSet_String(t *testing.T) {
	labels := NewLabelSet("anger", "joy", "neutral")
	if got := labels.String(); got != "anger, joy, neutral" {
		t.Errorf("String() = %q", got)
	}
	if !labels.Contains("Neutral") {
		t.Error("expected Contains to ignore case")
	}
}
