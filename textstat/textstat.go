// Package textstat provides the statistical primitives shared by the
// evaluators: word frequency vectors, cosine similarity, readability,
// lexicon-based sentiment, lexical complexity, sentence-adjacency topic
// coherence, key-sentence extraction, and the expertise heuristic.
//
// The pure primitives (WordFrequency, RankedFrequency, CosineSimilarity,
// SplitSentences, Readability, SentenceDiversity) are package functions.
// Everything that needs tokenization or lexicon lookups hangs off an
// Analyzer; the package-level wrappers use the embedded default lexicon.
//
// All functions are safe for concurrent use by multiple goroutines.
package textstat

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/ko-text-eval/hangul"
)

// Frequency maps a term to its weight within one scope (a sentence, the
// full text, or a query). Plain counting produces integral weights;
// synonym merging and partial-match boosting produce fractional ones.
type Frequency map[string]float64

// TermCount is one entry of a deterministic frequency ranking.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Readability formula coefficients (Flesch-Kincaid variant).
const (
	readabilityBase    = 206.835
	sentenceLenPenalty = 1.015
	wordLenPenalty     = 84.6
)

// Complexity formula weights.
const (
	diversityWeight = 40
	wordLenWeight   = 3
	maxAvgWordLen   = 10
	longWordWeight  = 30
	longWordRunes   = 6
)

// Sentence diversity weights.
const (
	lengthSpreadWeight   = 0.5
	firstWordWeight      = 0.3
	punctuationWeight    = 0.2
	stdDevScale          = 10
	singleSentenceScore  = 50
	punctuationTypeCount = 3
)

// WordFrequency counts token occurrences. The map is built fresh per
// call and never shared.
func WordFrequency(tokens []string) Frequency {
	freq := make(Frequency, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// RankedFrequency counts token occurrences and returns them ordered by
// descending count, breaking ties by first occurrence in the token
// stream. The deterministic order is what makes repeated evaluation of
// the same text bit-identical.
func RankedFrequency(tokens []string) []TermCount {
	index := make(map[string]int, len(tokens))
	ranked := make([]TermCount, 0, len(tokens))
	for _, t := range tokens {
		if i, ok := index[t]; ok {
			ranked[i].Count++
			continue
		}
		index[t] = len(ranked)
		ranked = append(ranked, TermCount{Term: t, Count: 1})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// CosineSimilarity returns the normalized dot product of two frequency
// vectors in [0, 1]. A zero-magnitude vector yields 0.
func CosineSimilarity(a, b Frequency) float64 {
	var dot, magA, magB float64
	for term, wa := range a {
		magA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		magB += wb * wb
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// SplitSentences splits text on runs of sentence-terminal punctuation
// (. ! ?) and returns the trimmed non-empty segments.
func SplitSentences(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := segments[:0]
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return nil
	}
	return sentences
}

// Readability scores text on a Flesch-Kincaid-style scale clamped to
// [0, 100]. Syllables are approximated: Hangul syllable blocks count one
// each, non-Korean words count vowel letters with a minimum of one.
func Readability(text string) float64 {
	sentenceCount := len(SplitSentences(text))
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	words := strings.Fields(text)
	wordCount := len(words)
	if wordCount < 1 {
		wordCount = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += syllableCount(w)
	}

	avgSentenceLen := float64(wordCount) / float64(sentenceCount)
	avgWordLen := float64(syllables) / float64(wordCount)

	score := readabilityBase - sentenceLenPenalty*avgSentenceLen - wordLenPenalty*avgWordLen
	return clamp(score, 0, 100)
}

// syllableCount approximates the syllable count of one word.
func syllableCount(word string) int {
	if n := hangul.SyllableCount(word); n > 0 {
		return n
	}
	vowels := 0
	for _, r := range word {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
			vowels++
		}
	}
	if vowels < 1 {
		return 1
	}
	return vowels
}

// SentenceDiversity scores structural variety across sentences in
// [0, 100]: spread of sentence lengths (50%), distinct first words
// (30%), and the variety of terminal punctuation used (20%). A text with
// at most one sentence scores a neutral 50.
func SentenceDiversity(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) <= 1 {
		return singleSentenceScore
	}

	lengths := make([]float64, len(sentences))
	var sum float64
	firstWords := make(map[string]struct{}, len(sentences))
	for i, s := range sentences {
		words := strings.Fields(s)
		lengths[i] = float64(len(words))
		sum += lengths[i]
		if len(words) > 0 {
			firstWords[strings.ToLower(words[0])] = struct{}{}
		}
	}

	mean := sum / float64(len(lengths))
	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))

	lengthScore := math.Min(100, math.Sqrt(variance)*stdDevScale)
	firstWordScore := float64(len(firstWords)) / float64(len(sentences)) * 100
	punctScore := float64(punctuationTypes(text)) / punctuationTypeCount * 100

	return lengthScore*lengthSpreadWeight +
		firstWordScore*firstWordWeight +
		punctScore*punctuationWeight
}

// punctuationTypes counts how many of the three terminal punctuation
// marks appear anywhere in the text.
func punctuationTypes(text string) int {
	n := 0
	for _, p := range []string{".", "!", "?"} {
		if strings.Contains(text, p) {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
