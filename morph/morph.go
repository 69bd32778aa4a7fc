// Package morph decomposes Korean text into morphemes using
// longest-match-first affix stripping over the lexicon wordlists.
//
// This is a rule-table heuristic, not a statistical segmenter: each
// whitespace token is matched against, in strict priority order, the
// compound table, the prefix list, the particle (josa) list, the ending
// (eomi) list, and the suffix list. The first rule that fires wins and no
// further rules are tried. Compounds are the most specific signal and are
// checked first; prefixes are checked before the suffixal rules because
// Korean prefixation is rarer and needs an extra validity check on the
// remainder, while particle and ending stripping is the dominant case.
//
// Two API layers are provided:
//
//   - Structured: New builds an Analyzer around an explicit Lexicon.
//   - Convenience: the package-level Analyze uses the embedded default
//     lexicon.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - No morphological grammar: a token ending in a particle-shaped
//     syllable is stripped even when the syllable is part of the stem
//     (바다 loses 다 if 다 is listed as an ending).
//   - Only one affix is stripped per token; stacked particles (에서는)
//     are handled solely by listing the stacked form in the lexicon.
//   - Stripped particles and endings are discarded; suffixes and
//     prefixes are retained as morphemes.
package morph

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/ko-text-eval/hangul"
	"github.com/az-ai-labs/ko-text-eval/lexicon"
)

const (
	// maxInputBytes caps input size. Oversized input yields no morphemes.
	maxInputBytes = 1 << 20 // 1 MiB

	// minPrefixTokenRunes is the minimum token length for prefix
	// stripping to be attempted at all.
	minPrefixTokenRunes = 4

	// minPrefixRunes rejects one-syllable prefixes, which misfire far
	// too often to be worth stripping.
	minPrefixRunes = 2

	// minPrefixStemRunes is the minimum remainder length after a prefix
	// is removed.
	minPrefixStemRunes = 2

	// maxEmotiveRunes is the length emotive consonant-jamo runs are
	// truncated to (ㅋㅋㅋㅋ counts the same as ㅋㅋ).
	maxEmotiveRunes = 2
)

// Options control a single analysis call. The zero value decomposes
// compounds, normalizes internet terms, removes stopwords, and keeps
// morphemes of any length.
type Options struct {
	// MinLength drops morphemes shorter than this many runes.
	// Zero means 1 (keep everything).
	MinLength int

	// KeepStopwords retains Korean stopwords in the output.
	KeepStopwords bool

	// DisableInternetTerms turns off slang pass-through and emotive
	// jamo truncation.
	DisableInternetTerms bool

	// DisableCompounds turns off compound-table decomposition.
	DisableCompounds bool
}

// Analyzer decomposes Korean tokens using a Lexicon's affix tables.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New returns an Analyzer backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze splits text into morphemes. It returns nil for empty or
// oversized input. The analysis is pure: identical input and options
// always produce the identical morpheme sequence.
func Analyze(text string, opts Options) []string {
	return New(lexicon.Default()).Analyze(text, opts)
}

// Analyze splits text into morphemes using the analyzer's lexicon.
func (a *Analyzer) Analyze(text string, opts Options) []string {
	if text == "" || len(text) > maxInputBytes {
		return nil
	}

	minLength := opts.MinLength
	if minLength < 1 {
		minLength = 1
	}

	tokens := strings.Fields(Normalize(text))

	morphemes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !opts.DisableInternetTerms {
			if a.lex.IsInternetTerm(token) {
				morphemes = append(morphemes, token)
				continue
			}
			if hangul.AllConsonantJamo(token) {
				morphemes = append(morphemes, truncateRunes(token, maxEmotiveRunes))
				continue
			}
		}
		if !hangul.Contains(token) {
			morphemes = append(morphemes, token)
			continue
		}
		morphemes = append(morphemes, a.analyzeToken(token, opts.DisableCompounds)...)
	}

	out := morphemes[:0]
	for _, m := range morphemes {
		if !opts.KeepStopwords && a.lex.IsKoreanStopword(m) {
			continue
		}
		if utf8.RuneCountInString(m) < minLength {
			continue
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// analyzeToken decomposes a single Korean token. Rules are tried in
// priority order and the first match wins.
func (a *Analyzer) analyzeToken(token string, disableCompounds bool) []string {
	// 1. Compound lookup.
	if !disableCompounds {
		if parts, ok := a.lex.Compound(token); ok {
			return parts
		}
	}

	tokenRunes := utf8.RuneCountInString(token)

	// 2. Prefix stripping, guarded by the remainder validity check.
	if tokenRunes >= minPrefixTokenRunes {
		for _, prefix := range a.lex.Prefixes() {
			prefixRunes := utf8.RuneCountInString(prefix)
			if prefixRunes < minPrefixRunes {
				continue
			}
			if !strings.HasPrefix(token, prefix) || tokenRunes <= prefixRunes+1 {
				continue
			}
			stem := token[len(prefix):]
			if utf8.RuneCountInString(stem) < minPrefixStemRunes {
				continue
			}
			if a.lex.IsCompoundComponent(stem) || hangul.AllSyllables(stem) {
				return []string{prefix, stem}
			}
		}
	}

	// 3. Particle (josa) stripping; the particle is discarded.
	if stem, ok := stripSuffix(token, tokenRunes, a.lex.Josa()); ok {
		return []string{stem}
	}

	// 4. Ending (eomi) stripping; the ending is discarded.
	if stem, ok := stripSuffix(token, tokenRunes, a.lex.Eomi()); ok {
		return []string{stem}
	}

	// 5. Suffix stripping; the suffix is retained.
	for _, suffix := range a.lex.Suffixes() {
		if !strings.HasSuffix(token, suffix) {
			continue
		}
		if utf8.RuneCountInString(suffix) >= tokenRunes {
			continue
		}
		stem := token[:len(token)-len(suffix)]
		if stem != "" {
			return []string{stem, suffix}
		}
	}

	// 6. Fallback: the token is a single morpheme.
	return []string{token}
}

// stripSuffix removes the first (longest) matching affix from the list
// and returns the remaining stem.
func stripSuffix(token string, tokenRunes int, affixes []string) (string, bool) {
	for _, affix := range affixes {
		if !strings.HasSuffix(token, affix) {
			continue
		}
		if utf8.RuneCountInString(affix) >= tokenRunes {
			continue
		}
		stem := token[:len(token)-len(affix)]
		if stem != "" {
			return stem, true
		}
	}
	return "", false
}

// truncateRunes returns at most n leading runes of s.
func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
