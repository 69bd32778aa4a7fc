// Package hangul provides Korean script predicates and normalization
// helpers shared by the tokenizer and the morphological analyzer.
//
// The predicates cover precomposed syllable blocks (가-힣) and compatibility
// jamo (ㄱ-ㅎ, ㅏ-ㅣ). Conjoining jamo and historic letters are out of scope:
// the analysis pipeline only ever sees NFC-composed modern Korean.
//
// All functions are safe for concurrent use by multiple goroutines.
package hangul

import "strings"

const (
	syllableLo = 0xAC00 // 가
	syllableHi = 0xD7A3 // 힣

	consonantLo = 0x3131 // ㄱ
	consonantHi = 0x314E // ㅎ
	vowelLo     = 0x314F // ㅏ
	vowelHi     = 0x3163 // ㅣ
)

// maxRepeat caps runs of identical Korean runes in CollapseRepeats.
const maxRepeat = 2

// IsSyllable reports whether r is a precomposed Hangul syllable block.
func IsSyllable(r rune) bool {
	return r >= syllableLo && r <= syllableHi
}

// IsJamo reports whether r is a Hangul compatibility jamo (consonant or vowel).
func IsJamo(r rune) bool {
	return r >= consonantLo && r <= vowelHi
}

// IsConsonantJamo reports whether r is a standalone consonant jamo (ㄱ-ㅎ).
// Runs of these are emotive markers (ㅋㅋㅋ, ㅎㅎ), not words.
func IsConsonantJamo(r rune) bool {
	return r >= consonantLo && r <= consonantHi
}

// Is reports whether r is any Hangul rune (syllable block or jamo).
func Is(r rune) bool {
	return IsSyllable(r) || IsJamo(r)
}

// Contains reports whether s contains at least one Hangul rune.
func Contains(s string) bool {
	for _, r := range s {
		if Is(r) {
			return true
		}
	}
	return false
}

// AllSyllables reports whether s is non-empty and consists solely of
// precomposed syllable blocks. Used as the validity heuristic after
// prefix stripping.
func AllSyllables(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsSyllable(r) {
			return false
		}
	}
	return true
}

// AllConsonantJamo reports whether s is non-empty and consists solely of
// standalone consonant jamo.
func AllConsonantJamo(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsConsonantJamo(r) {
			return false
		}
	}
	return true
}

// SyllableCount returns the number of syllable-block runes in s.
// Jamo and non-Korean runes are not counted.
func SyllableCount(s string) int {
	n := 0
	for _, r := range s {
		if IsSyllable(r) {
			n++
		}
	}
	return n
}

// CollapseRepeats reduces runs of three or more identical Korean runes to
// two (ㅋㅋㅋㅋㅋ becomes ㅋㅋ), capping the noise that laughter markers and
// drawn-out exclamations add to frequency statistics. Non-Korean runes are
// left untouched.
func CollapseRepeats(s string) string {
	var sb strings.Builder
	var prev rune
	var run int
	var wrote bool
	sb.Grow(len(s))
	for _, r := range s {
		if wrote && r == prev && Is(r) {
			run++
			if run > maxRepeat {
				continue
			}
		} else {
			run = 1
		}
		sb.WriteRune(r)
		prev = r
		wrote = true
	}
	return sb.String()
}
