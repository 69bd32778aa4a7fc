// Package tokenizer splits free-form text into analysis tokens.
//
// Two code paths exist, selected once per call by a pure detection
// predicate: text containing any Korean rune is delegated entirely to the
// morphological analyzer; everything else goes through a generic
// lowercase/strip/split pipeline with stopword filtering and an optional
// simplified English stemmer. For pure-ASCII input both configurations
// behave identically, since the Korean branch can never trigger.
//
// Two API layers are provided:
//
//   - Structured: New builds a Tokenizer around an explicit Lexicon.
//   - Convenience: the package-level Tokenize uses the embedded default
//     lexicon.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/ko-text-eval/hangul"
	"github.com/az-ai-labs/ko-text-eval/lexicon"
	"github.com/az-ai-labs/ko-text-eval/morph"
)

// maxInputBytes caps input size. Oversized input yields no tokens.
const maxInputBytes = 1 << 20 // 1 MiB

// Options control a single tokenization call. The zero value keeps
// tokens of any length, removes stopwords, applies no stemming, and
// routes Korean text through the morphological analyzer.
type Options struct {
	// MinWordLength drops tokens shorter than this many runes.
	// Zero means 1 (keep everything).
	MinWordLength int

	// KeepStopwords retains stopwords in the output.
	KeepStopwords bool

	// Stemming applies the simplified English suffix stemmer.
	// It has no effect on text containing Korean.
	Stemming bool

	// DisableMorphAnalysis forces Korean text through the generic
	// pipeline instead of the morphological analyzer.
	DisableMorphAnalysis bool
}

// Tokenizer splits text using a Lexicon's stopword sets and the Korean
// morphological analyzer built from the same lexicon.
type Tokenizer struct {
	lex *lexicon.Lexicon
	ma  *morph.Analyzer
}

// New returns a Tokenizer backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Tokenizer {
	return &Tokenizer{lex: lex, ma: morph.New(lex)}
}

// Tokenize splits text into tokens using the embedded default lexicon.
func Tokenize(text string, opts Options) []string {
	return New(lexicon.Default()).Tokenize(text, opts)
}

// Tokenize splits text into tokens. It returns nil for empty, whitespace
// only, or oversized input. The call is pure: identical input and
// options always produce the identical token sequence.
func (t *Tokenizer) Tokenize(text string, opts Options) []string {
	if text == "" || len(text) > maxInputBytes {
		return nil
	}

	minLength := opts.MinWordLength
	if minLength < 1 {
		minLength = 1
	}

	hasKorean := hangul.Contains(text)
	if hasKorean && !opts.DisableMorphAnalysis {
		return t.ma.Analyze(text, morph.Options{
			MinLength:     minLength,
			KeepStopwords: opts.KeepStopwords,
		})
	}

	words := strings.Fields(stripSpecial(strings.ToLower(text)))

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < minLength {
			continue
		}
		if !opts.KeepStopwords && t.isStopword(w, hasKorean) {
			continue
		}
		if opts.Stemming && !hasKorean {
			w = stemEnglish(w)
		}
		tokens = append(tokens, w)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// isStopword checks the Korean stopword set when the input contained
// Korean, and the English set otherwise.
func (t *Tokenizer) isStopword(token string, korean bool) bool {
	if korean {
		return t.lex.IsKoreanStopword(token)
	}
	return t.lex.IsEnglishStopword(token)
}

// stripSpecial deletes every rune that is not an ASCII word character,
// whitespace, or a Hangul syllable block. Unlike the morphological
// normalizer, deleted runes do not become spaces, so "don't" collapses
// to "dont" rather than splitting.
func stripSpecial(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) || isSpace(r) || hangul.IsSyllable(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
