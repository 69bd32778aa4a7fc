package morph

import (
	"strings"

	"github.com/az-ai-labs/ko-text-eval/hangul"
)

// Normalize prepares raw text for morpheme analysis: ASCII letters are
// lowercased, every rune outside the word/whitespace/Hangul classes is
// replaced with a space, whitespace runs are collapsed, and runs of three
// or more identical Korean runes are capped at two.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	space := false
	for _, r := range text {
		switch {
		case isWordRune(r) || hangul.Is(r):
			if space && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			space = false
			sb.WriteRune(toLowerASCII(r))
		default:
			// Whitespace and every other rune collapse into one space.
			space = true
		}
	}
	return hangul.CollapseRepeats(sb.String())
}

// isWordRune reports whether r is an ASCII word character (letter, digit,
// or underscore). Non-ASCII Latin letters are deliberately excluded: the
// analyzer treats them as noise, matching the generic tokenizer.
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

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
