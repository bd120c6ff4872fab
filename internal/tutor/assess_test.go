package tutor

import (
	"strings"
	"testing"
)

func TestAssessSentenceQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence string
		want     []string
		wantNot  []string
	}{
		{
			name:     "capitalization_and_past_tense",
			sentence: "i go to gym yesterday",
			want:     []string{"Capitalize", "i → I", "past", "ending punctuation"},
		},
		{
			name:     "clean_sentence",
			sentence: "I went to the gym.",
			want:     []string{looksGoodReply},
			wantNot:  []string{"quick fixes"},
		},
		{
			name:     "double_space",
			sentence: "I like  tea!",
			want:     []string{"extra spaces"},
			wantNot:  []string{"Capitalize", "ending punctuation"},
		},
		{
			name:     "stative_want",
			sentence: "I am wanting a new job?",
			want:     []string{"'I want'"},
		},
		{
			name:     "capitalizes_whole_first_token",
			sentence: "hello there.",
			want:     []string{"hello → Hello"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := AssessSentenceQuality(tt.sentence)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("AssessSentenceQuality(%q) missing %q\nGot:\n%s", tt.sentence, w, got)
				}
			}
			for _, w := range tt.wantNot {
				if strings.Contains(got, w) {
					t.Errorf("AssessSentenceQuality(%q) should not contain %q\nGot:\n%s", tt.sentence, w, got)
				}
			}
		})
	}
}

func TestAssessSentenceQuality_FixedOrder(t *testing.T) {
	t.Parallel()

	got := AssessSentenceQuality("i am wanting to  go home yesterday")
	lines := strings.Split(got, "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header + 5 bullets:\n%s", len(lines), got)
	}
	order := []string{"Capitalize", "punctuation", "extra spaces", "simple past", "am wanting"}
	for i, key := range order {
		if !strings.HasPrefix(lines[i+1], "• ") || !strings.Contains(lines[i+1], key) {
			t.Errorf("line %d = %q, want bullet containing %q", i+1, lines[i+1], key)
		}
	}
}
