package tokenizer

// Suffix rules for the simplified English stemmer. Minimum stem lengths
// guard against over-stripping short words (sing must not become s).
const minStemLen = 3

// stemEnglish strips a single common English suffix from an already
// lowercased word. It is a deliberately small approximation of Porter
// stemming: one rule fires per word, and a rule whose minimum-stem guard
// fails consumes the word without trying later rules.
func stemEnglish(word string) string {
	switch {
	case hasSuffix(word, "ing"):
		if stem := word[:len(word)-3]; len(stem) >= minStemLen {
			return stem
		}
	case hasSuffix(word, "ed"):
		if stem := word[:len(word)-2]; len(stem) >= minStemLen {
			return stem
		}
	case hasSuffix(word, "s") && !hasSuffix(word, "ss") && !hasSuffix(word, "us") && !hasSuffix(word, "is"):
		// cats -> cat, but not pass, bus, this.
		return word[:len(word)-1]
	case hasSuffix(word, "ly"):
		return word[:len(word)-2]
	case hasSuffix(word, "ful"):
		return word[:len(word)-3]
	case hasSuffix(word, "est"):
		if stem := word[:len(word)-3]; len(stem) >= minStemLen {
			return stem
		}
	case hasSuffix(word, "er"):
		if stem := word[:len(word)-2]; len(stem) >= minStemLen {
			return stem
		}
	}
	return word
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
