package textstat

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/az-ai-labs/ko-text-eval/lexicon"
	"github.com/az-ai-labs/ko-text-eval/tokenizer"
)

// Expertise heuristic weights.
const (
	expertiseWordLenMax   = 30
	expertiseWordLenNorm  = 8
	expertiseDiversityMax = 30
	expertiseDiversityCap = 0.7
	expertiseDomainMax    = 40
	domainRatioGain       = 5
	longWordRatioGain     = 2
)

// Analyzer bundles the lexicon-dependent statistics: sentiment lookup,
// complexity, topic coherence, key sentences, and the expertise
// heuristic all tokenize their input first.
type Analyzer struct {
	lex *lexicon.Lexicon
	tok *tokenizer.Tokenizer
}

// New returns an Analyzer backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex, tok: tokenizer.New(lex)}
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer {
	return New(lexicon.Default())
})

// Sentiment scores text in [-1, 1] using the embedded default lexicon.
func Sentiment(text string) float64 { return defaultAnalyzer().Sentiment(text) }

// Complexity scores text in [0, 100] using the embedded default lexicon.
func Complexity(text string) float64 { return defaultAnalyzer().Complexity(text) }

// TopicCoherence scores text in [0, 100] using the embedded default lexicon.
func TopicCoherence(text string) float64 { return defaultAnalyzer().TopicCoherence(text) }

// KeySentences extracts up to n key sentences using the embedded default lexicon.
func KeySentences(text string, n int) []string { return defaultAnalyzer().KeySentences(text, n) }

// ExpertiseLevel scores text in [0, 100] using the embedded default lexicon.
func ExpertiseLevel(text string, domainKeywords []string) float64 {
	return defaultAnalyzer().ExpertiseLevel(text, domainKeywords)
}

// Sentiment averages the polarity of tokens found in the sentiment
// lexicon. Tokens without a lexicon entry are ignored; a text with no
// matches is neutral (0).
func (a *Analyzer) Sentiment(text string) float64 {
	tokens := a.tok.Tokenize(text, tokenizer.Options{})

	var total float64
	matched := 0
	for _, t := range tokens {
		if score, ok := a.lex.SentimentScore(t); ok {
			total += score
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return total / float64(matched)
}

// Complexity combines lexical diversity, average word length, and the
// long-word ratio into a [0, 100] score. The weighted sum is scaled by
// 100 before the final clamp; the clamp is authoritative, the curve
// below it is what the level buckets were tuned against.
func (a *Analyzer) Complexity(text string) float64 {
	tokens := a.tok.Tokenize(text, tokenizer.Options{})
	if len(tokens) == 0 {
		return 0
	}

	unique := make(map[string]struct{}, len(tokens))
	totalRunes := 0
	longWords := 0
	for _, t := range tokens {
		unique[t] = struct{}{}
		n := runeLen(t)
		totalRunes += n
		if n >= longWordRunes {
			longWords++
		}
	}

	diversity := float64(len(unique)) / float64(len(tokens))
	avgWordLen := float64(totalRunes) / float64(len(tokens))
	longRatio := float64(longWords) / float64(len(tokens))

	score := diversity*diversityWeight +
		math.Min(maxAvgWordLen, avgWordLen)*wordLenWeight +
		longRatio*longWordWeight

	return math.Min(100, score*100)
}

// TopicCoherence vectorizes each sentence and averages the cosine
// similarity of adjacent pairs, scaled to [0, 100]. A text with at most
// one sentence is trivially coherent and scores 100.
func (a *Analyzer) TopicCoherence(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) <= 1 {
		return 100
	}

	vectors := make([]Frequency, len(sentences))
	for i, s := range sentences {
		vectors[i] = WordFrequency(a.tok.Tokenize(s, tokenizer.Options{}))
	}

	var total float64
	for i := 0; i < len(vectors)-1; i++ {
		total += CosineSimilarity(vectors[i], vectors[i+1])
	}
	return total / float64(len(vectors)-1) * 100
}

// KeySentences returns up to n sentences ranked by the summed corpus
// frequency of their tokens, normalized by the square root of the token
// count so long sentences are not rewarded for length alone. When the
// text has no more than n sentences they are all returned in order.
func (a *Analyzer) KeySentences(text string, n int) []string {
	sentences := SplitSentences(text)
	if len(sentences) <= n {
		return sentences
	}

	freq := WordFrequency(a.tok.Tokenize(text, tokenizer.Options{}))

	type scored struct {
		sentence string
		score    float64
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		tokens := a.tok.Tokenize(s, tokenizer.Options{})
		var score float64
		for _, t := range tokens {
			score += freq[t]
		}
		if len(tokens) > 0 {
			score /= math.Sqrt(float64(len(tokens)))
		}
		ranked[i] = scored{sentence: s, score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, n)
	for i := range out {
		out[i] = ranked[i].sentence
	}
	return out
}

// ExpertiseLevel combines average word length (max 30), lexical
// diversity (max 30), and either the domain-keyword match ratio or,
// when no keyword list is supplied, the long-word ratio (max 40).
func (a *Analyzer) ExpertiseLevel(text string, domainKeywords []string) float64 {
	tokens := a.tok.Tokenize(text, tokenizer.Options{})
	if len(tokens) == 0 {
		return 0
	}

	unique := make(map[string]struct{}, len(tokens))
	totalRunes := 0
	longWords := 0
	for _, t := range tokens {
		unique[t] = struct{}{}
		n := runeLen(t)
		totalRunes += n
		if n >= longWordRunes {
			longWords++
		}
	}

	avgWordLen := float64(totalRunes) / float64(len(tokens))
	wordLenScore := math.Min(1, avgWordLen/expertiseWordLenNorm) * expertiseWordLenMax

	diversity := math.Min(1, float64(len(unique))/(float64(len(tokens))*expertiseDiversityCap))
	diversityScore := diversity * expertiseDiversityMax

	var domainScore float64
	if len(domainKeywords) > 0 {
		keywordSet := make(map[string]struct{}, len(domainKeywords))
		for _, k := range domainKeywords {
			keywordSet[strings.ToLower(k)] = struct{}{}
		}
		matched := 0
		for _, t := range tokens {
			if _, ok := keywordSet[t]; ok {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(tokens))
		domainScore = math.Min(1, ratio*domainRatioGain) * expertiseDomainMax
	} else {
		ratio := float64(longWords) / float64(len(tokens))
		domainScore = math.Min(1, ratio*longWordRatioGain) * expertiseDomainMax
	}

	return math.Min(100, wordLenScore+diversityScore+domainScore)
}
