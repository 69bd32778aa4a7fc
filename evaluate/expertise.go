package evaluate

import (
	"fmt"
	"math"
	"strings"

	"github.com/az-ai-labs/ko-text-eval/textstat"
	"github.com/az-ai-labs/ko-text-eval/tokenizer"
)

// Expertise evaluator weights and cutoffs.
const (
	expertiseTopKeywords = 15
	expertiseMinWordLen  = 2

	coherenceWeight    = 0.35
	richnessWeight     = 0.25
	expertiseWeight    = 0.20
	readabilityWeight  = 0.10
	diversityWeight    = 0.10
	coherenceScale     = 0.8
	coherenceFloorLift = 20
	richnessScale      = 200
	richnessFloor      = 30
)

// ExpertiseResult is the expertise evaluation of one text.
type ExpertiseResult struct {
	Score           int             `json:"score"`
	TopicCoherence  Level           `json:"topicCoherence"`
	KeywordUsage    Level           `json:"keywordUsage"`
	WordCount       int             `json:"wordCount"`
	TopicAnalysis   TopicAnalysis   `json:"topicAnalysis"`
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
	Scores          ExpertiseScores `json:"scores"`
	KeySentences    []string        `json:"keySentences"`
	Details         string          `json:"details"`
}

// TopicAnalysis is the coherence score with its most representative
// sentences.
type TopicAnalysis struct {
	Score     float64  `json:"score"`
	Level     Level    `json:"level"`
	Sentences []string `json:"sentences"`
}

// KeywordAnalysis breaks the top keywords down by aggregate count and
// coarse category.
type KeywordAnalysis struct {
	Total      KeywordTotals     `json:"total"`
	Categories KeywordCategories `json:"categories"`
}

// KeywordTotals is the top-keyword count, its ratio to word count, and
// the keyword list itself.
type KeywordTotals struct {
	Count    int      `json:"count"`
	Ratio    float64  `json:"ratio"`
	Keywords []string `json:"keywords"`
}

// KeywordCategories apportions the top-keyword count across domain,
// technical, and general buckets by a fixed 40/30/30 split. Real
// per-term classification would need a curated technical-term lexicon.
type KeywordCategories struct {
	Domain    CategoryStat `json:"domain"`
	Technical CategoryStat `json:"technical"`
	General   CategoryStat `json:"general"`
}

// ExpertiseScores are the named sub-scores behind the headline number.
type ExpertiseScores struct {
	Complexity     ScoreDetail `json:"complexity"`
	Vocabulary     ScoreDetail `json:"vocabulary"`
	TechnicalTerms ScoreDetail `json:"technicalTerms"`
	Coherence      ScoreDetail `json:"coherence"`
}

// Expertise scores how expert the text reads: topic coherence (35%),
// content richness (25%), the expertise heuristic (20%), readability
// derived from mid-range complexity (10%), and sentence diversity (10%).
func (e *Evaluator) Expertise(text string) ExpertiseResult {
	if blank(text) {
		return emptyExpertise()
	}

	tokens := e.tok.Tokenize(text, tokenizer.Options{MinWordLength: expertiseMinWordLen})
	wordCount := len(tokens)
	denom := float64(wordCount)
	if denom < 1 {
		denom = 1
	}

	ranked := textstat.RankedFrequency(tokens)
	uniqueCount := len(ranked)
	top := ranked
	if len(top) > expertiseTopKeywords {
		top = top[:expertiseTopKeywords]
	}

	keywords := make([]string, len(top))
	labeled := make([]string, len(top))
	for i, tc := range top {
		keywords[i] = tc.Term
		labeled[i] = fmt.Sprintf("%s(%d)", tc.Term, tc.Count)
	}

	// Coherence gets a floor lift so it never reads near zero for any
	// non-trivial text.
	coherence := e.ts.TopicCoherence(text)*coherenceScale + coherenceFloorLift
	richness := math.Min(100, float64(uniqueCount)/denom*richnessScale+richnessFloor)
	expertise := e.ts.ExpertiseLevel(text, nil)
	complexity := e.ts.Complexity(text)
	readability := 100 - math.Abs(complexity-50)
	diversity := textstat.SentenceDiversity(text)

	keySentences := e.ts.KeySentences(text, 3)
	if keySentences == nil {
		keySentences = []string{}
	}
	topicSentences := keySentences
	if len(topicSentences) > 2 {
		topicSentences = topicSentences[:2]
	}

	score := roundScore(coherence*coherenceWeight +
		richness*richnessWeight +
		expertise*expertiseWeight +
		readability*readabilityWeight +
		diversity*diversityWeight)

	return ExpertiseResult{
		Score:          score,
		TopicCoherence: expertiseLevel(coherence),
		KeywordUsage:   expertiseLevel(richness),
		WordCount:      wordCount,
		TopicAnalysis: TopicAnalysis{
			Score:     clampScore(coherence),
			Level:     expertiseLevel(coherence),
			Sentences: topicSentences,
		},
		KeywordAnalysis: KeywordAnalysis{
			Total: KeywordTotals{
				Count:    len(top),
				Ratio:    float64(len(top)) / denom * 100,
				Keywords: keywords,
			},
			Categories: KeywordCategories{
				Domain:    CategoryStat{Count: int(math.Round(float64(len(top)) * 0.4)), Ratio: 40},
				Technical: CategoryStat{Count: int(math.Round(float64(len(top)) * 0.3)), Ratio: 30},
				General:   CategoryStat{Count: int(math.Round(float64(len(top)) * 0.3)), Ratio: 30},
			},
		},
		Scores: ExpertiseScores{
			Complexity:     ScoreDetail{Score: clampScore(complexity), Level: expertiseLevel(complexity)},
			Vocabulary:     ScoreDetail{Score: clampScore(richness), Level: expertiseLevel(richness)},
			TechnicalTerms: ScoreDetail{Score: clampScore(expertise), Level: expertiseLevel(expertise)},
			Coherence:      ScoreDetail{Score: clampScore(coherence), Level: expertiseLevel(coherence)},
		},
		KeySentences: keySentences,
		Details: expertiseDetails(wordCount, labeled, keySentences,
			coherence, richness, expertise, readability, diversity),
	}
}

func expertiseDetails(wordCount int, labeled, keySentences []string,
	coherence, richness, expertise, readability, diversity float64) string {

	var sb strings.Builder
	fmt.Fprintf(&sb, "텍스트 길이: %d단어\n\n", wordCount)
	fmt.Fprintf(&sb, "주요 키워드: %s\n\n", strings.Join(labeled, ", "))
	fmt.Fprintf(&sb, "주제 일관성: %.1f점 (%s)\n", coherence, expertiseLevel(coherence))
	fmt.Fprintf(&sb, "콘텐츠 풍부도: %.1f점 (%s)\n", richness, expertiseLevel(richness))
	fmt.Fprintf(&sb, "전문성: %.1f점 (%s)\n", expertise, expertiseLevel(expertise))
	fmt.Fprintf(&sb, "가독성: %.1f점 (%s)\n", readability, expertiseLevel(readability))
	fmt.Fprintf(&sb, "문장 다양성: %.1f점 (%s)\n\n", diversity, expertiseLevel(diversity))
	sb.WriteString("핵심 문장:\n")
	for i, s := range keySentences {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}
	sb.WriteString("\n종합 평가:\n")
	fmt.Fprintf(&sb, "이 블로그 포스팅은 %s 수준의 주제 일관성을 보이며, 콘텐츠 풍부도는 %s 수준입니다. 전문성은 %s 수준이고, 가독성은 %s 수준으로 평가됩니다.",
		expertiseLevel(coherence), expertiseLevel(richness),
		expertiseLevel(expertise), expertiseLevel(readability))
	return sb.String()
}

// emptyExpertise is the sentinel result for empty input.
func emptyExpertise() ExpertiseResult {
	return ExpertiseResult{
		TopicCoherence: LevelLow,
		KeywordUsage:   LevelLow,
		TopicAnalysis:  TopicAnalysis{Level: LevelLow, Sentences: []string{}},
		KeywordAnalysis: KeywordAnalysis{
			Total: KeywordTotals{Keywords: []string{}},
		},
		Scores: ExpertiseScores{
			Complexity:     ScoreDetail{Level: LevelLow},
			Vocabulary:     ScoreDetail{Level: LevelLow},
			TechnicalTerms: ScoreDetail{Level: LevelLow},
			Coherence:      ScoreDetail{Level: LevelLow},
		},
		KeySentences: []string{},
		Details:      emptyTextMessage,
	}
}
