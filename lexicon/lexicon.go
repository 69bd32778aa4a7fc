// Package lexicon loads and serves the static wordlists and tables that
// drive the analysis pipeline: Korean affix lists, compound and slang
// tables, stopword sets, domain keyword dictionaries, synonym groups,
// keyword importance weights, fallback queries, and the sentiment
// polarity lexicon.
//
// Two API layers are provided:
//
//   - Default returns the process-wide Lexicon built from the embedded
//     data files. It is constructed exactly once and never mutated, so it
//     is safe to share across goroutines.
//   - Load builds a Lexicon from caller-supplied data, for applications
//     that ship their own wordlists.
//
// A Lexicon is immutable after construction. Accessors return either
// copies or slices that callers must treat as read-only.
package lexicon

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/ko-text-eval/data"
)

// DefaultDomain is the fallback domain used for importance weights and
// canned queries when no specific domain applies.
const DefaultDomain = "기본"

// lexiconFile mirrors the layout of lexicon.yaml.
type lexiconFile struct {
	Josa             []string            `yaml:"josa"`
	Eomi             []string            `yaml:"eomi"`
	Prefixes         []string            `yaml:"prefixes"`
	Suffixes         []string            `yaml:"suffixes"`
	Compounds        map[string][]string `yaml:"compounds"`
	InternetTerms    []string            `yaml:"internet_terms"`
	StopwordsKorean  []string            `yaml:"stopwords_korean"`
	StopwordsEnglish []string            `yaml:"stopwords_english"`
}

// domainsFile mirrors the layout of domains.yaml.
type domainsFile struct {
	Domains        map[string][]string           `yaml:"domains"`
	Synonyms       map[string][]string           `yaml:"synonyms"`
	Importance     map[string]map[string]float64 `yaml:"importance"`
	DefaultQueries map[string]string             `yaml:"default_queries"`
}

// Lexicon is the immutable store of all static analysis data.
type Lexicon struct {
	josa          map[string]struct{}
	eomi          map[string]struct{}
	prefixes      map[string]struct{}
	suffixes      map[string]struct{}
	compounds     map[string][]string
	compoundParts map[string]struct{}
	internetTerms map[string]struct{}
	stopKorean    map[string]struct{}
	stopEnglish   map[string]struct{}

	// Affix lists pre-sorted longest first for the longest-match-wins
	// stripping rules.
	josaByLen   []string
	eomiByLen   []string
	prefixByLen []string
	suffixByLen []string

	domains        map[string][]string
	domainNames    []string
	synonyms       map[string][]string
	canonicals     []string
	importance     map[string]map[string]float64
	defaultQueries map[string]string
	sentiment      map[string]float64
}

// Load builds a Lexicon from YAML wordlist data, YAML domain data, and a
// tab-separated sentiment lexicon ("term<TAB>score" lines, # comments).
func Load(lexiconYAML, domainsYAML []byte, sentimentTSV string) (*Lexicon, error) {
	var lf lexiconFile
	if err := yaml.Unmarshal(lexiconYAML, &lf); err != nil {
		return nil, fmt.Errorf("lexicon: parsing wordlists: %w", err)
	}
	var df domainsFile
	if err := yaml.Unmarshal(domainsYAML, &df); err != nil {
		return nil, fmt.Errorf("lexicon: parsing domains: %w", err)
	}

	lex := &Lexicon{
		josa:           toSet(lf.Josa),
		eomi:           toSet(lf.Eomi),
		prefixes:       toSet(lf.Prefixes),
		suffixes:       toSet(lf.Suffixes),
		compounds:      lf.Compounds,
		internetTerms:  toSet(lf.InternetTerms),
		stopKorean:     toSet(lf.StopwordsKorean),
		stopEnglish:    toSet(lf.StopwordsEnglish),
		domains:        df.Domains,
		synonyms:       df.Synonyms,
		importance:     df.Importance,
		defaultQueries: df.DefaultQueries,
		sentiment:      parseSentiment(sentimentTSV),
	}
	if lex.compounds == nil {
		lex.compounds = map[string][]string{}
	}

	lex.compoundParts = make(map[string]struct{}, len(lex.compounds)*2)
	for _, parts := range lex.compounds {
		for _, p := range parts {
			lex.compoundParts[p] = struct{}{}
		}
	}

	lex.josaByLen = sortedLongestFirst(lf.Josa)
	lex.eomiByLen = sortedLongestFirst(lf.Eomi)
	lex.prefixByLen = sortedLongestFirst(lf.Prefixes)
	lex.suffixByLen = sortedLongestFirst(lf.Suffixes)

	lex.domainNames = sortedKeys(lex.domains)
	lex.canonicals = sortedKeys(lex.synonyms)

	if _, ok := lex.defaultQueries[DefaultDomain]; !ok {
		return nil, fmt.Errorf("lexicon: default_queries is missing the %q entry", DefaultDomain)
	}
	return lex, nil
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lex, err := Load(data.LexiconYAML, data.DomainsYAML, data.SentimentLexicon)
	if err != nil {
		panic("lexicon: embedded data is invalid: " + err.Error())
	}
	return lex
})

// Default returns the shared Lexicon built from the embedded data files.
// The first call constructs it; subsequent calls return the same instance.
func Default() *Lexicon {
	return defaultLexicon()
}

// Josa returns the particle list, longest first.
func (l *Lexicon) Josa() []string { return l.josaByLen }

// Eomi returns the verb/adjective ending list, longest first.
func (l *Lexicon) Eomi() []string { return l.eomiByLen }

// Prefixes returns the prefix list, longest first.
func (l *Lexicon) Prefixes() []string { return l.prefixByLen }

// Suffixes returns the suffix list, longest first.
func (l *Lexicon) Suffixes() []string { return l.suffixByLen }

// Compound returns the component morphemes of a known compound word.
func (l *Lexicon) Compound(word string) ([]string, bool) {
	parts, ok := l.compounds[word]
	return parts, ok
}

// IsCompoundComponent reports whether s appears as a component of any
// compound entry.
func (l *Lexicon) IsCompoundComponent(s string) bool {
	_, ok := l.compoundParts[s]
	return ok
}

// IsInternetTerm reports whether the token is known internet slang.
func (l *Lexicon) IsInternetTerm(token string) bool {
	_, ok := l.internetTerms[token]
	return ok
}

// IsKoreanStopword reports whether the token is a Korean stopword.
func (l *Lexicon) IsKoreanStopword(token string) bool {
	_, ok := l.stopKorean[token]
	return ok
}

// IsEnglishStopword reports whether the token is an English stopword.
func (l *Lexicon) IsEnglishStopword(token string) bool {
	_, ok := l.stopEnglish[token]
	return ok
}

// DomainNames returns all domain names in sorted order.
func (l *Lexicon) DomainNames() []string { return l.domainNames }

// DomainKeywords returns the keyword list of a domain, or nil if the
// domain is unknown.
func (l *Lexicon) DomainKeywords(domain string) []string {
	return l.domains[domain]
}

// Canonicals returns the canonical synonym-group terms in sorted order.
func (l *Lexicon) Canonicals() []string { return l.canonicals }

// Synonyms returns the variant terms of a canonical synonym-group term.
func (l *Lexicon) Synonyms(canonical string) []string {
	return l.synonyms[canonical]
}

// Importance returns the keyword importance multipliers for a domain,
// falling back to the 기본 table when the domain has none.
func (l *Lexicon) Importance(domain string) map[string]float64 {
	if m, ok := l.importance[domain]; ok {
		return m
	}
	return l.importance[DefaultDomain]
}

// DefaultQuery returns the canned query for a domain, falling back to the
// 기본 entry.
func (l *Lexicon) DefaultQuery(domain string) string {
	if q, ok := l.defaultQueries[domain]; ok {
		return q
	}
	return l.defaultQueries[DefaultDomain]
}

// SentimentScore returns the polarity of a term in [-1, 1] and whether
// the term is in the sentiment lexicon.
func (l *Lexicon) SentimentScore(term string) (float64, bool) {
	score, ok := l.sentiment[term]
	return score, ok
}

// parseSentiment parses tab-separated "term\tscore" lines, skipping
// blank lines, comments, and malformed entries.
func parseSentiment(raw string) map[string]float64 {
	m := make(map[string]float64, 64)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		term, value, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			continue
		}
		m[strings.TrimSpace(term)] = score
	}
	return m
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// sortedLongestFirst returns the items ordered by descending rune length,
// with lexicographic tie-breaking so the order is deterministic.
func sortedLongestFirst(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li > lj
		}
		return out[i] < out[j]
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
