package morph

import (
	"slices"
	"strings"
	"testing"
)

func TestAnalyzePriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []string
	}{
		{
			name: "compound lookup wins",
			in:   "인공지능",
			want: []string{"인공", "지능"},
		},
		{
			name: "josa stripped and discarded",
			in:   "데이터를",
			want: []string{"데이터"},
		},
		{
			name: "stacked josa stripped as one listed form",
			in:   "서울에서부터",
			want: []string{"서울"},
		},
		{
			name: "eomi stripped and discarded",
			in:   "좋았습니다",
			want: []string{"좋"},
		},
		{
			name: "suffix stripped and retained",
			in:   "기술적",
			want: []string{"기술", "적"},
		},
		{
			name: "prefix stripped when remainder is all syllables",
			in:   "슈퍼컴퓨터",
			want: []string{"슈퍼", "컴퓨터"},
		},
		{
			name: "fallback keeps unknown token whole",
			in:   "바나나",
			want: []string{"바나나"},
		},
		{
			name: "josa on compound strips only the particle",
			in:   "인공지능이",
			want: []string{"인공지능"},
		},
		{
			name: "non-korean token passes through",
			in:   "golang",
			want: []string{"golang"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.in, tt.opts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Analyze(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnalyzeInternetTerms(t *testing.T) {
	// Known slang passes through undecomposed.
	if got := Analyze("대박", Options{}); !slices.Equal(got, []string{"대박"}) {
		t.Errorf("Analyze(대박) = %v, want [대박]", got)
	}

	// Emotive consonant-jamo runs are truncated, not analyzed.
	if got := Analyze("ㅋㅋㅋㅋㅋ", Options{}); !slices.Equal(got, []string{"ㅋㅋ"}) {
		t.Errorf("Analyze(ㅋㅋㅋㅋㅋ) = %v, want [ㅋㅋ]", got)
	}
}

func TestAnalyzeStopwords(t *testing.T) {
	// 그리고 is a stopword and is dropped by default.
	got := Analyze("그리고 데이터를 분석했습니다", Options{})
	want := []string{"데이터", "분석"}
	if !slices.Equal(got, want) {
		t.Errorf("Analyze = %v, want %v", got, want)
	}

	got = Analyze("그리고 데이터를 분석했습니다", Options{KeepStopwords: true})
	want = []string{"그리고", "데이터", "분석"}
	if !slices.Equal(got, want) {
		t.Errorf("Analyze with KeepStopwords = %v, want %v", got, want)
	}
}

func TestAnalyzeMinLength(t *testing.T) {
	// 좋았습니다 reduces to the single-syllable stem 좋.
	if got := Analyze("좋았습니다", Options{MinLength: 2}); got != nil {
		t.Errorf("Analyze with MinLength 2 = %v, want nil", got)
	}
	if got := Analyze("좋았습니다", Options{MinLength: 1}); !slices.Equal(got, []string{"좋"}) {
		t.Errorf("Analyze with MinLength 1 = %v, want [좋]", got)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	if got := Analyze("", Options{}); got != nil {
		t.Errorf("Analyze(\"\") = %v, want nil", got)
	}
	if got := Analyze("   \t\n", Options{}); got != nil {
		t.Errorf("Analyze(whitespace) = %v, want nil", got)
	}
	oversized := strings.Repeat("가", maxInputBytes)
	if got := Analyze(oversized, Options{}); got != nil {
		t.Errorf("Analyze(oversized) = %v, want nil", got)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	const text = "인공지능 기술적 발전을 통해 데이터를 분석했습니다 ㅋㅋㅋ"
	first := Analyze(text, Options{})
	for i := 0; i < 5; i++ {
		if got := Analyze(text, Options{}); !slices.Equal(got, first) {
			t.Fatalf("Analyze not deterministic: %v vs %v", got, first)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"안녕!!! Hello.", "안녕 hello"},
		{"A  B\tC", "a b c"},
		{"데이터(분석)", "데이터 분석"},
		{"ㅋㅋㅋㅋㅋ", "ㅋㅋ"},
		{"", ""},
		{"...", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
