package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim", input: "  biology  ", want: "biology"},
		{name: "lowercase", input: "Cell Biology", want: "cell biology"},
		{name: "collapse spaces", input: "cell    biology", want: "cell biology"},
		{name: "tabs trimmed", input: "\t verbs \t", want: "verbs"},
		{name: "diacritics kept", input: "Résumé", want: "résumé"},
		{name: "punctuation kept", input: "Past-Tense", want: "past-tense"},
		{name: "empty", input: "", want: ""},
		{name: "blank", input: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
