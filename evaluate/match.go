package evaluate

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// termHit is one matched taxonomy term with its occurrence count.
// Hits keep taxonomy order, which makes ranking ties deterministic.
type termHit struct {
	term  string
	count int
}

// taxonomyScan is the result of scanning one taxonomy over a text.
type taxonomyScan struct {
	total      int
	found      []termHit
	byCategory map[string]int
}

// scanTaxonomy counts every occurrence of every taxonomy term in text,
// case-insensitively. With wholeWord, a match must not touch a letter
// or digit on either side; the boundary runes are not consumed, so
// back-to-back occurrences all count.
func scanTaxonomy(text string, cats []termCategory, wholeWord bool) taxonomyScan {
	lowered := strings.ToLower(text)
	scan := taxonomyScan{byCategory: make(map[string]int, len(cats))}
	for _, c := range cats {
		n := 0
		for _, term := range c.terms {
			count := countOccurrences(lowered, strings.ToLower(term), wholeWord)
			if count > 0 {
				scan.found = append(scan.found, termHit{term: term, count: count})
				n += count
			}
		}
		scan.byCategory[c.name] = n
		scan.total += n
	}
	return scan
}

// topTerms returns up to n matched terms ordered by descending count,
// breaking ties by taxonomy order.
func (s taxonomyScan) topTerms(n int) []termHit {
	top := make([]termHit, len(s.found))
	copy(top, s.found)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].count > top[j].count
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// countOccurrences counts non-overlapping occurrences of term in text.
// Both arguments must already be lowercased by the caller.
func countOccurrences(text, term string, wholeWord bool) int {
	if term == "" {
		return 0
	}
	count := 0
	for i := 0; i+len(term) <= len(text); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			break
		}
		pos := i + j
		if !wholeWord || atBoundary(text, pos, len(term)) {
			count++
			i = pos + len(term)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		i = pos + size
	}
	return count
}

// atBoundary reports whether the match at text[pos:pos+length] is not
// flanked by letters or digits. Unicode-aware, so Hangul counts as a
// letter on either side.
func atBoundary(text string, pos, length int) bool {
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end := pos + length; end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
