package model

import "strings"

// LabelSet is the ordered output vocabulary of a classifier.
// Matching is case-insensitive; the configured casing is what callers get back.
type LabelSet []string

// NewLabelSet trims labels and drops blanks and case-insensitive duplicates,
// keeping the first spelling seen.
func NewLabelSet(labels ...string) LabelSet {
	set := make(LabelSet, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		key := strings.ToLower(l)
		if seen[key] {
			continue
		}
		seen[key] = true
		set = append(set, l)
	}
	return set
}

// Match returns the label equal to input ignoring case and surrounding space.
func (s LabelSet) Match(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	for _, l := range s {
		if strings.EqualFold(l, input) {
			return l, true
		}
	}
	return "", false
}

// Contains reports whether label is part of the vocabulary.
func (s LabelSet) Contains(label string) bool {
	_, ok := s.Match(label)
	return ok
}

func (s LabelSet) String() string {
	return strings.Join(s, ", ")
}
