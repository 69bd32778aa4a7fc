package evaluate

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/ko-text-eval/lexicon"
	"github.com/az-ai-labs/ko-text-eval/textstat"
	"github.com/az-ai-labs/ko-text-eval/tokenizer"
)

// Relevance evaluator weights and cutoffs.
const (
	densityWeight = 0.3
	queryWeight   = 0.3
	domainWeight  = 0.2
	topicWeight   = 0.2

	densityTopKeywords  = 15
	primaryKeywordCount = 5
	keywordMatchScale   = 1.5

	// Enhanced similarity mixes the synonym/importance-adjusted vectors
	// with the raw ones.
	enhancedSimWeight = 0.75
	rawSimWeight      = 0.25

	// Partial-match bonus range for Korean compound overlap.
	partialMatchBase = 0.3
	partialMatchGain = 0.4
	minPartialRunes  = 3

	// Secondary domain must score within this margin of the primary.
	secondaryDomainMargin = 20
)

// noDomain labels a text that matched no domain dictionary.
const noDomain = "없음"

// RelevanceResult is the relevance evaluation of one text.
type RelevanceResult struct {
	Score                  int                    `json:"score"`
	KeywordDensity         Level                  `json:"keywordDensity"`
	QueryRelevance         Level                  `json:"queryRelevance"`
	WordCount              int                    `json:"wordCount"`
	KeywordDensityAnalysis KeywordDensityAnalysis `json:"keywordDensityAnalysis"`
	QueryRelevanceAnalysis QueryRelevanceAnalysis `json:"queryRelevanceAnalysis"`
	Scores                 RelevanceScores        `json:"scores"`
	SuggestedKeywords      []string               `json:"suggestedKeywords"`
	Details                string                 `json:"details"`
}

// KeywordStat is one keyword with its count and density percentage.
type KeywordStat struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// KeywordDensityAnalysis is the density score with the top keywords
// split into primary (first five) and secondary buckets.
type KeywordDensityAnalysis struct {
	Score    float64        `json:"score"`
	Level    Level          `json:"level"`
	Keywords KeywordBuckets `json:"keywords"`
}

// KeywordBuckets splits the ranked keywords by rank.
type KeywordBuckets struct {
	Primary   []KeywordStat `json:"primary"`
	Secondary []KeywordStat `json:"secondary"`
}

// QueryScore is one evaluated query with its relevance score.
type QueryScore struct {
	Query     string  `json:"query"`
	Relevance float64 `json:"relevance"`
}

// QueryRelevanceAnalysis is the query similarity score with the
// effective query used.
type QueryRelevanceAnalysis struct {
	Score   float64      `json:"score"`
	Level   Level        `json:"level"`
	Queries []QueryScore `json:"queries"`
}

// RelevanceScores are the named sub-scores behind the headline number.
type RelevanceScores struct {
	KeywordMatch      ScoreDetail `json:"keywordMatch"`
	SemanticRelevance ScoreDetail `json:"semanticRelevance"`
	ContextualFit     ScoreDetail `json:"contextualFit"`
	QueryAlignment    ScoreDetail `json:"queryAlignment"`
}

// densityResult is the internal keyword-density analysis.
type densityResult struct {
	density float64
	level   Level
	top     []KeywordStat
}

// domainMatch is the internal domain-relevance analysis.
type domainMatch struct {
	name           string
	score          float64
	matched        []string
	secondaryName  string
	secondaryScore float64
}

// Relevance scores how relevant the text is: keyword density (30%),
// query relevance (30%), domain relevance (20%), and topic focus (20%).
// An empty query is generated dynamically from the text's own keywords
// and the best-matching domain dictionary.
func (e *Evaluator) Relevance(text, query string) RelevanceResult {
	if blank(text) {
		return emptyRelevance()
	}

	textTokens := e.tok.Tokenize(text, tokenizer.Options{MinWordLength: 1})
	wordCount := len(textTokens)

	density := e.keywordDensity(textTokens)
	domain := e.domainRelevance(textTokens)

	effectiveQuery := query
	if effectiveQuery == "" {
		effectiveQuery = e.dynamicQuery(density, domain)
	}
	queryTokens := e.tok.Tokenize(effectiveQuery, tokenizer.Options{MinWordLength: 1})

	queryScore := e.queryRelevance(textTokens, queryTokens, domain.name)
	topicFocus := e.ts.TopicCoherence(text)

	score := roundScore(density.density*densityWeight +
		queryScore*queryWeight +
		domain.score*domainWeight +
		topicFocus*topicWeight)

	primary := density.top
	var secondary []KeywordStat
	if len(primary) > primaryKeywordCount {
		secondary = primary[primaryKeywordCount:]
		primary = primary[:primaryKeywordCount]
	}
	if primary == nil {
		primary = []KeywordStat{}
	}
	if secondary == nil {
		secondary = []KeywordStat{}
	}

	suggested := []string{}
	seen := make(map[string]struct{})
	for _, k := range firstN(domain.matched, 3) {
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			suggested = append(suggested, k)
		}
	}
	for i, kw := range density.top {
		if i >= 3 {
			break
		}
		if _, dup := seen[kw.Keyword]; !dup {
			seen[kw.Keyword] = struct{}{}
			suggested = append(suggested, kw.Keyword)
		}
	}

	return RelevanceResult{
		Score:          score,
		KeywordDensity: density.level,
		QueryRelevance: queryLevel(queryScore),
		WordCount:      wordCount,
		KeywordDensityAnalysis: KeywordDensityAnalysis{
			Score: density.density,
			Level: density.level,
			Keywords: KeywordBuckets{
				Primary:   primary,
				Secondary: secondary,
			},
		},
		QueryRelevanceAnalysis: QueryRelevanceAnalysis{
			Score:   queryScore,
			Level:   queryLevel(queryScore),
			Queries: []QueryScore{{Query: effectiveQuery, Relevance: queryScore}},
		},
		Scores: RelevanceScores{
			KeywordMatch:      ScoreDetail{Score: clampScore(density.density * keywordMatchScale), Level: density.level},
			SemanticRelevance: ScoreDetail{Score: clampScore(queryScore), Level: queryLevel(queryScore)},
			ContextualFit:     ScoreDetail{Score: clampScore(domain.score), Level: queryLevel(domain.score)},
			QueryAlignment:    ScoreDetail{Score: clampScore(topicFocus), Level: queryLevel(topicFocus)},
		},
		SuggestedKeywords: suggested,
		Details:           relevanceDetails(wordCount, density, domain, queryScore, topicFocus),
	}
}

// keywordDensity ranks tokens by frequency and measures how much of the
// text the top keywords cover.
func (e *Evaluator) keywordDensity(tokens []string) densityResult {
	if len(tokens) == 0 {
		return densityResult{level: LevelVeryLow, top: []KeywordStat{}}
	}

	ranked := textstat.RankedFrequency(tokens)
	if len(ranked) > densityTopKeywords {
		ranked = ranked[:densityTopKeywords]
	}

	total := float64(len(tokens))
	top := make([]KeywordStat, len(ranked))
	sum := 0
	for i, tc := range ranked {
		sum += tc.Count
		top[i] = KeywordStat{
			Keyword: tc.Term,
			Count:   tc.Count,
			Density: float64(tc.Count) / total * 100,
		}
	}

	density := float64(sum) / total * 100
	return densityResult{density: density, level: densityLevel(density), top: top}
}

// domainRelevance finds the domain dictionary the text matches best.
// The square-root denominator keeps large dictionaries from being
// penalized for their size.
func (e *Evaluator) domainRelevance(tokens []string) domainMatch {
	if len(tokens) == 0 {
		return domainMatch{name: noDomain, matched: []string{}}
	}

	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[strings.ToLower(t)] = struct{}{}
	}

	type scored struct {
		name    string
		score   float64
		matched []string
	}
	all := make([]scored, 0, len(e.lex.DomainNames()))
	for _, name := range e.lex.DomainNames() {
		keywords := e.lex.DomainKeywords(name)
		matched := []string{}
		seen := make(map[string]struct{})
		for _, k := range keywords {
			lk := strings.ToLower(k)
			if _, ok := tokenSet[lk]; !ok {
				continue
			}
			if _, dup := seen[lk]; dup {
				continue
			}
			seen[lk] = struct{}{}
			matched = append(matched, k)
		}
		score := float64(len(matched)) / math.Sqrt(float64(len(keywords))) * 100
		all = append(all, scored{name: name, score: score, matched: matched})
	}

	// Stable sort over the name-sorted domain list keeps ties
	// deterministic.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	if all[0].score == 0 {
		return domainMatch{name: noDomain, matched: []string{}}
	}

	match := domainMatch{name: all[0].name, score: all[0].score, matched: all[0].matched}
	if len(all) > 1 && all[1].score > 0 && all[0].score-all[1].score < secondaryDomainMargin {
		match.secondaryName = all[1].name
		match.secondaryScore = all[1].score
	}
	return match
}

// dynamicQuery builds a query from the text's own top keywords plus
// matched and unmatched domain-dictionary keywords. Falls back to the
// lexicon's canned query when nothing qualifies.
func (e *Evaluator) dynamicQuery(density densityResult, domain domainMatch) string {
	topText := make([]string, 0, primaryKeywordCount)
	for i, kw := range density.top {
		if i >= primaryKeywordCount {
			break
		}
		topText = append(topText, kw.Keyword)
	}
	matched := firstN(domain.matched, 3)

	var extra []string
	if domain.name != noDomain {
		for _, k := range e.lex.DomainKeywords(domain.name) {
			if containsString(topText, k) || containsString(matched, k) {
				continue
			}
			extra = append(extra, k)
			if len(extra) == 2 {
				break
			}
		}
	}

	var fromSecondary []string
	if domain.secondaryName != "" {
		for _, k := range e.lex.DomainKeywords(domain.secondaryName) {
			if containsString(topText, k) || containsString(matched, k) || containsString(extra, k) {
				continue
			}
			fromSecondary = append(fromSecondary, k)
			break
		}
	}

	var all []string
	seen := make(map[string]struct{})
	for _, group := range [][]string{topText, matched, extra, fromSecondary} {
		for _, k := range group {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			all = append(all, k)
		}
	}

	if len(all) == 0 {
		name := domain.name
		if name == noDomain {
			name = lexicon.DefaultDomain
		}
		return e.lex.DefaultQuery(name)
	}
	return strings.Join(all, ", ")
}

// queryRelevance measures text/query similarity. Both frequency vectors
// are enhanced by synonym-group merging, Korean partial-match bonuses on
// the text side, and per-domain importance multipliers; the final score
// blends the enhanced and raw cosine similarities.
func (e *Evaluator) queryRelevance(textTokens, queryTokens []string, domain string) float64 {
	if len(textTokens) == 0 || len(queryTokens) == 0 {
		return 0
	}

	textFreq := textstat.WordFrequency(textTokens)
	queryFreq := textstat.WordFrequency(queryTokens)

	enhText := cloneFrequency(textFreq)
	enhQuery := cloneFrequency(queryFreq)

	for _, canonical := range e.lex.Canonicals() {
		variants := e.lex.Synonyms(canonical)
		mergeSynonyms(enhText, canonical, variants)
		mergeSynonyms(enhQuery, canonical, variants)
	}

	// Compound overlap: a query token contained in a text token (or the
	// reverse) earns the text token a bonus weight scaled by the length
	// overlap. Multiple query tokens boosting one text token keep only
	// the largest bonus.
	bonuses := make(map[string]float64)
	for _, qt := range queryTokens {
		if utf8.RuneCountInString(qt) < minPartialRunes {
			continue
		}
		for _, tt := range textTokens {
			if !strings.Contains(tt, qt) && !strings.Contains(qt, tt) {
				continue
			}
			ttLen := utf8.RuneCountInString(tt)
			qtLen := utf8.RuneCountInString(qt)
			ratio := float64(min(ttLen, qtLen)) / float64(max(ttLen, qtLen))
			bonus := partialMatchBase + ratio*partialMatchGain
			if bonus > bonuses[tt] {
				bonuses[tt] = bonus
			}
		}
	}
	for term, bonus := range bonuses {
		enhText[term] += bonus
	}

	importance := e.lex.Importance(domain)
	applyImportance(enhText, importance)
	applyImportance(enhQuery, importance)

	enhanced := textstat.CosineSimilarity(enhText, enhQuery)
	raw := textstat.CosineSimilarity(textFreq, queryFreq)
	return math.Min(100, (enhanced*enhancedSimWeight+raw*rawSimWeight)*100)
}

// mergeSynonyms folds every variant's count into the canonical term and
// removes the variants so nothing is counted twice.
func mergeSynonyms(freq textstat.Frequency, canonical string, variants []string) {
	count := freq[canonical]
	for _, v := range variants {
		if c, ok := freq[v]; ok {
			count += c
			delete(freq, v)
		}
	}
	if count > 0 {
		freq[canonical] = count
	}
}

func applyImportance(freq textstat.Frequency, importance map[string]float64) {
	for term, weight := range freq {
		if mult, ok := importance[term]; ok {
			freq[term] = weight * mult
		}
	}
}

func cloneFrequency(freq textstat.Frequency) textstat.Frequency {
	clone := make(textstat.Frequency, len(freq))
	for term, weight := range freq {
		clone[term] = weight
	}
	return clone
}

func relevanceDetails(wordCount int, density densityResult, domain domainMatch,
	queryScore, topicFocus float64) string {

	labels := make([]string, len(density.top))
	for i, kw := range density.top {
		labels[i] = fmt.Sprintf("%s(%d회, %.1f%%)", kw.Keyword, kw.Count, kw.Density)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "텍스트 길이: %d단어\n\n", wordCount)
	fmt.Fprintf(&sb, "상위 키워드: %s\n\n", strings.Join(labels, ", "))
	fmt.Fprintf(&sb, "키워드 밀도: %.1f%% (%s)\n", density.density, density.level)
	fmt.Fprintf(&sb, "쿼리 관련성: %.1f점 (%s)\n", queryScore, queryLevel(queryScore))
	fmt.Fprintf(&sb, "주제 일관성: %.1f점 (%s)\n\n", topicFocus, queryLevel(topicFocus))
	fmt.Fprintf(&sb, "관련 도메인: %s (%.1f점)", domain.name, domain.score)
	if domain.secondaryName != "" {
		fmt.Fprintf(&sb, "\n보조 도메인: %s (%.1f점)", domain.secondaryName, domain.secondaryScore)
	}
	fmt.Fprintf(&sb, "\n관련 키워드: %s\n\n", strings.Join(domain.matched, ", "))
	sb.WriteString("종합 평가:\n")
	fmt.Fprintf(&sb, "이 텍스트는 주요 키워드의 분포가 %s 수준으로 나타났으며, 검색 쿼리와의 관련성은 %s 수준입니다. ",
		density.level, queryLevel(queryScore))
	fmt.Fprintf(&sb, "주제 일관성은 %s 수준으로, %s 도메인과 가장 관련성이 높습니다.",
		queryLevel(topicFocus), domain.name)
	return sb.String()
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func containsString(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

// emptyRelevance is the sentinel result for empty input.
func emptyRelevance() RelevanceResult {
	return RelevanceResult{
		KeywordDensity: LevelLow,
		QueryRelevance: LevelLow,
		KeywordDensityAnalysis: KeywordDensityAnalysis{
			Level: LevelLow,
			Keywords: KeywordBuckets{
				Primary:   []KeywordStat{},
				Secondary: []KeywordStat{},
			},
		},
		QueryRelevanceAnalysis: QueryRelevanceAnalysis{
			Level:   LevelLow,
			Queries: []QueryScore{},
		},
		Scores: RelevanceScores{
			KeywordMatch:      ScoreDetail{Level: LevelLow},
			SemanticRelevance: ScoreDetail{Level: LevelLow},
			ContextualFit:     ScoreDetail{Level: LevelLow},
			QueryAlignment:    ScoreDetail{Level: LevelLow},
		},
		SuggestedKeywords: []string{},
		Details:           emptyTextMessage,
	}
}
