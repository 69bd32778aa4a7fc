package tokenizer

import (
	"slices"
	"strings"
	"testing"
)

func TestTokenizeEnglish(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []string
	}{
		{
			name: "lowercases and drops stopwords",
			in:   "The Quick Brown Fox jumps over the lazy dog",
			want: []string{"quick", "brown", "fox", "jumps", "lazy", "dog"},
		},
		{
			name: "keeps stopwords on request",
			in:   "the quick fox",
			opts: Options{KeepStopwords: true},
			want: []string{"the", "quick", "fox"},
		},
		{
			name: "min word length",
			in:   "a bb ccc dddd",
			opts: Options{MinWordLength: 3, KeepStopwords: true},
			want: []string{"ccc", "dddd"},
		},
		{
			name: "special characters deleted without splitting",
			in:   "don't stop",
			opts: Options{KeepStopwords: true},
			want: []string{"dont", "stop"},
		},
		{
			name: "stemming",
			in:   "running quickly",
			opts: Options{Stemming: true},
			want: []string{"runn", "quick"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in, tt.opts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeKoreanDelegates(t *testing.T) {
	got := Tokenize("데이터를 분석했습니다", Options{})
	want := []string{"데이터", "분석"}
	if !slices.Equal(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeKoreanGenericPath(t *testing.T) {
	// With morphological analysis disabled, Korean text goes through the
	// generic pipeline: no affix stripping, only the Korean stopword set.
	got := Tokenize("그리고 데이터를 분석", Options{DisableMorphAnalysis: true})
	want := []string{"데이터를", "분석"}
	if !slices.Equal(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeASCIIRoundTrip(t *testing.T) {
	// The Korean-detection branch must be a no-op for pure-ASCII input:
	// both configurations produce identical tokens.
	inputs := []string{
		"The quick brown fox",
		"hello world hello again",
		"numbers 123 and under_scores",
	}
	for _, in := range inputs {
		enabled := Tokenize(in, Options{})
		disabled := Tokenize(in, Options{DisableMorphAnalysis: true})
		if !slices.Equal(enabled, disabled) {
			t.Errorf("Tokenize(%q): morph path %v != generic path %v", in, enabled, disabled)
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if got := Tokenize("", Options{}); got != nil {
		t.Errorf("Tokenize(\"\") = %v, want nil", got)
	}
	if got := Tokenize("   ", Options{}); got != nil {
		t.Errorf("Tokenize(whitespace) = %v, want nil", got)
	}
	oversized := strings.Repeat("a", maxInputBytes+1)
	if got := Tokenize(oversized, Options{}); got != nil {
		t.Errorf("Tokenize(oversized) = %v, want nil", got)
	}
}

func TestStemEnglish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"running", "runn"},
		{"jumped", "jump"},
		{"cats", "cat"},
		{"pass", "pass"},
		{"bus", "bus"},
		{"this", "this"},
		{"quickly", "quick"},
		{"helpful", "help"},
		{"biggest", "bigg"},
		{"faster", "fast"},
		// Guards: the stem would be too short, and a failed guard
		// consumes the word without trying later rules.
		{"sing", "sing"},
		{"used", "used"},
		{"her", "her"},
	}
	for _, tt := range tests {
		if got := stemEnglish(tt.in); got != tt.want {
			t.Errorf("stemEnglish(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func BenchmarkTokenizeKorean(b *testing.B) {
	text := strings.Repeat("인공지능 기술을 활용한 데이터 분석 방법을 소개합니다. ", 50)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Tokenize(text, Options{})
	}
}
