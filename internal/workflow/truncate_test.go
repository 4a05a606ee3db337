package workflow

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"short text unchanged", "I love  this!", 5, "I love  this!"},
		{"exact length unchanged", "a b c", 3, "a b c"},
		{"long text cut", "a b c d e", 3, "a b c"},
		{"whitespace collapsed when cut", "a\t b\n c d", 2, "a b"},
		{"disabled", "a b c", 0, "a b c"},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncate_LongInputIsNotRejected(t *testing.T) {
	text := strings.Repeat("token ", 10_000)
	got := Truncate(text, DefaultMaxTokens)
	if n := len(strings.Fields(got)); n != DefaultMaxTokens {
		t.Errorf("expected %d tokens, got %d", DefaultMaxTokens, n)
	}
}
