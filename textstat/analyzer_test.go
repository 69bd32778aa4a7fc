package textstat

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func TestSentiment(t *testing.T) {
	// 좋다 reduces to the stem 좋 (0.8) after morphological analysis.
	if got := Sentiment("좋다"); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("Sentiment(좋다) = %v, want 0.8", got)
	}
	// Mixed polarities average.
	got := Sentiment("좋다 나쁘다")
	if math.Abs(got-0) > 1e-12 {
		t.Errorf("Sentiment(좋다 나쁘다) = %v, want 0", got)
	}
	// No lexicon match is neutral.
	if got := Sentiment("hello world"); got != 0 {
		t.Errorf("Sentiment(hello world) = %v, want 0", got)
	}
	if got := Sentiment(""); got != 0 {
		t.Errorf("Sentiment(\"\") = %v, want 0", got)
	}
}

func TestComplexity(t *testing.T) {
	if got := Complexity(""); got != 0 {
		t.Errorf("Complexity(\"\") = %v, want 0", got)
	}

	// The weighted sum is scaled by 100 before the clamp, so any text
	// with real tokens saturates at 100. The clamp is authoritative.
	texts := []string{
		"word",
		strings.Repeat("word ", 30),
		"sophisticated vocabulary demonstrates remarkable lexical diversity",
	}
	for _, text := range texts {
		if got := Complexity(text); got != 100 {
			t.Errorf("Complexity(%q) = %v, want the saturated 100", text, got)
		}
	}
}

func TestTopicCoherence(t *testing.T) {
	// Single sentence is trivially coherent.
	if got := TopicCoherence("apple banana cherry"); got != 100 {
		t.Errorf("single-sentence coherence = %v, want 100", got)
	}
	// Identical sentences are fully coherent.
	if got := TopicCoherence("apple banana. apple banana."); math.Abs(got-100) > 1e-9 {
		t.Errorf("identical-sentence coherence = %v, want 100", got)
	}
	// Disjoint vocabulary has zero coherence.
	if got := TopicCoherence("apple banana. submarine helicopter."); got != 0 {
		t.Errorf("disjoint-sentence coherence = %v, want 0", got)
	}
}

func TestKeySentences(t *testing.T) {
	// At most n sentences returns them all, in order.
	got := KeySentences("apple banana. cherry melon.", 3)
	want := []string{"apple banana", "cherry melon"}
	if !slices.Equal(got, want) {
		t.Errorf("KeySentences = %v, want %v", got, want)
	}

	// The sentence built from frequent terms outranks the one-off.
	text := "apple banana apple. submarine. apple banana fruit. banana apple apple."
	top := KeySentences(text, 2)
	if len(top) != 2 {
		t.Fatalf("KeySentences returned %d sentences, want 2", len(top))
	}
	for _, s := range top {
		if s == "submarine" {
			t.Errorf("KeySentences ranked the one-off sentence into the top 2: %v", top)
		}
	}
}

func TestExpertiseLevel(t *testing.T) {
	if got := ExpertiseLevel("", nil); got != 0 {
		t.Errorf("ExpertiseLevel(\"\") = %v, want 0", got)
	}

	text := "데이터 데이터 분석 알고리즘"
	without := ExpertiseLevel(text, nil)
	with := ExpertiseLevel(text, []string{"데이터", "알고리즘"})
	if with <= without {
		t.Errorf("domain-keyword score %v <= keywordless score %v", with, without)
	}
	for _, v := range []float64{with, without} {
		if v < 0 || v > 100 {
			t.Errorf("ExpertiseLevel %v out of [0,100]", v)
		}
	}
}
