package evaluate

import (
	"fmt"
	"math"
	"strings"

	"github.com/az-ai-labs/ko-text-eval/textstat"
	"github.com/az-ai-labs/ko-text-eval/tokenizer"
)

// Trustworthiness evaluator weights.
const (
	authenticityWeight     = 0.4
	emotionalWeight        = 0.3
	trustReadabilityWeight = 0.1
	trustElementWeight     = 0.2

	// Per-category authenticity weights. Exaggeration hurts credibility
	// the most, first-person voice is natural in blog writing.
	opinionWeight      = 0.7
	emphasisWeight     = 0.5
	firstPersonWeight  = 0.8
	emotionCatWeight   = 0.6
	exaggerationWeight = 0.3

	// Per-category trust-element weights and ratio multipliers.
	researchWeight = 1.0
	academicWeight = 0.8
	dataWeight     = 0.9
	factualWeight  = 0.7
	researchScale  = 25
	academicScale  = 20
	dataScale      = 22
	factualScale   = 18

	topExpressionCount = 5
)

// TrustworthinessResult is the trustworthiness evaluation of one text.
type TrustworthinessResult struct {
	Score                     int                `json:"score"`
	SubjectiveExpressionRatio Level              `json:"subjectiveExpressionRatio"`
	TrustKeywordUsage         Level              `json:"trustKeywordUsage"`
	WordCount                 int                `json:"wordCount"`
	SubjectiveExpressions     ExpressionAnalysis `json:"subjectiveExpressions"`
	TrustElements             ElementAnalysis    `json:"trustElements"`
	EmotionalContext          EmotionalContext   `json:"emotionalContext"`
	Scores                    TrustScores        `json:"scores"`
	Details                   string             `json:"details"`
}

// ExpressionAnalysis is the categorized subjective-expression scan.
type ExpressionAnalysis struct {
	Total      ExpressionTotals     `json:"total"`
	Categories SubjectiveCategories `json:"categories"`
}

// ExpressionTotals is the scan total with the top matched expressions.
type ExpressionTotals struct {
	Count       int      `json:"count"`
	Ratio       float64  `json:"ratio"`
	Expressions []string `json:"expressions"`
}

// SubjectiveCategories are the five subjective-expression categories.
type SubjectiveCategories struct {
	Opinion      CategoryStat `json:"opinion"`
	Emphasis     CategoryStat `json:"emphasis"`
	FirstPerson  CategoryStat `json:"firstPerson"`
	Emotion      CategoryStat `json:"emotion"`
	Exaggeration CategoryStat `json:"exaggeration"`
}

// ElementAnalysis is the categorized trust-element scan.
type ElementAnalysis struct {
	Total      ElementTotals   `json:"total"`
	Categories TrustCategories `json:"categories"`
}

// ElementTotals is the scan total with the top matched elements.
type ElementTotals struct {
	Count    int      `json:"count"`
	Ratio    float64  `json:"ratio"`
	Elements []string `json:"elements"`
}

// TrustCategories are the four trust-element categories.
type TrustCategories struct {
	Research CategoryStat `json:"research"`
	Academic CategoryStat `json:"academic"`
	Data     CategoryStat `json:"data"`
	Factual  CategoryStat `json:"factual"`
}

// EmotionalContext is the sentiment score with the dominant emotion and
// the emotion phrases found.
type EmotionalContext struct {
	Score                float64  `json:"score"`
	DominantEmotion      Emotion  `json:"dominantEmotion"`
	EmotionalExpressions []string `json:"emotionalExpressions"`
}

// TrustScores are the named sub-scores behind the headline number.
type TrustScores struct {
	Authenticity        ScoreDetail `json:"authenticity"`
	EmotionalExpression ScoreDetail `json:"emotionalExpression"`
	Readability         ScoreDetail `json:"readability"`
	TrustElement        ScoreDetail `json:"trustElement"`
}

// Trustworthiness scores how credible the text reads: authenticity from
// the balance of subjective expression (40%), emotional expression
// (30%), readability (10%), and trust-element usage (20%).
func (e *Evaluator) Trustworthiness(text string) TrustworthinessResult {
	if blank(text) {
		return emptyTrustworthiness()
	}

	tokens := e.tok.Tokenize(text, tokenizer.Options{})
	wordCount := len(tokens)
	denom := float64(wordCount)
	if denom < 1 {
		denom = 1
	}

	subjective := scanTaxonomy(text, subjectiveTaxonomy, true)
	trust := scanTaxonomy(text, trustTaxonomy, false)

	subjectiveRatio := float64(subjective.total) / denom * 100
	trustRatio := float64(trust.total) / denom * 100

	ratio := func(category string, scan taxonomyScan) float64 {
		return float64(scan.byCategory[category]) / denom * 100
	}
	opinionRatio := ratio(catOpinion, subjective)
	emphasisRatio := ratio(catEmphasis, subjective)
	firstPersonRatio := ratio(catFirstPerson, subjective)
	emotionRatio := ratio(catEmotion, subjective)
	exaggerationRatio := ratio(catExaggeration, subjective)

	// Per-category curves: a moderate amount of personal voice raises
	// authenticity, too much or too little lowers it. Exaggeration only
	// ever lowers it.
	authenticity := (curveOpinion(opinionRatio)*opinionWeight +
		curveEmphasis(emphasisRatio)*emphasisWeight +
		curveFirstPerson(firstPersonRatio)*firstPersonWeight +
		curveEmotion(emotionRatio)*emotionCatWeight +
		curveExaggeration(exaggerationRatio)*exaggerationWeight) /
		(opinionWeight + emphasisWeight + firstPersonWeight + emotionCatWeight + exaggerationWeight)

	sentiment := e.ts.Sentiment(text)
	emotional := emotionalExpressionScore(sentiment)
	readability := textstat.Readability(text)

	researchRatio := ratio(catResearch, trust)
	academicRatio := ratio(catAcademic, trust)
	dataRatio := ratio(catData, trust)
	factualRatio := ratio(catFactual, trust)

	trustElement := (math.Min(100, researchRatio*researchScale)*researchWeight +
		math.Min(100, academicRatio*academicScale)*academicWeight +
		math.Min(100, dataRatio*dataScale)*dataWeight +
		math.Min(100, factualRatio*factualScale)*factualWeight) /
		(researchWeight + academicWeight + dataWeight + factualWeight)

	score := roundScore(authenticity*authenticityWeight +
		emotional*emotionalWeight +
		readability*trustReadabilityWeight +
		trustElement*trustElementWeight)

	emotionExpressions := matchedEmotionTerms(text)
	dominant := dominantEmotion(sentiment, len(emotionExpressions))

	topSubjective := subjective.topTerms(topExpressionCount)
	topTrust := trust.topTerms(topExpressionCount)

	return TrustworthinessResult{
		Score:                     score,
		SubjectiveExpressionRatio: subjectiveLevel(subjectiveRatio),
		TrustKeywordUsage:         trustKeywordLevel(trustRatio),
		WordCount:                 wordCount,
		SubjectiveExpressions: ExpressionAnalysis{
			Total: ExpressionTotals{
				Count:       subjective.total,
				Ratio:       subjectiveRatio,
				Expressions: hitTerms(topSubjective),
			},
			Categories: SubjectiveCategories{
				Opinion:      CategoryStat{Count: subjective.byCategory[catOpinion], Ratio: opinionRatio},
				Emphasis:     CategoryStat{Count: subjective.byCategory[catEmphasis], Ratio: emphasisRatio},
				FirstPerson:  CategoryStat{Count: subjective.byCategory[catFirstPerson], Ratio: firstPersonRatio},
				Emotion:      CategoryStat{Count: subjective.byCategory[catEmotion], Ratio: emotionRatio},
				Exaggeration: CategoryStat{Count: subjective.byCategory[catExaggeration], Ratio: exaggerationRatio},
			},
		},
		TrustElements: ElementAnalysis{
			Total: ElementTotals{
				Count:    trust.total,
				Ratio:    trustRatio,
				Elements: hitTerms(topTrust),
			},
			Categories: TrustCategories{
				Research: CategoryStat{Count: trust.byCategory[catResearch], Ratio: researchRatio},
				Academic: CategoryStat{Count: trust.byCategory[catAcademic], Ratio: academicRatio},
				Data:     CategoryStat{Count: trust.byCategory[catData], Ratio: dataRatio},
				Factual:  CategoryStat{Count: trust.byCategory[catFactual], Ratio: factualRatio},
			},
		},
		EmotionalContext: EmotionalContext{
			Score:                sentiment,
			DominantEmotion:      dominant,
			EmotionalExpressions: emotionExpressions,
		},
		Scores: TrustScores{
			Authenticity:        ScoreDetail{Score: clampScore(authenticity), Level: trustLevel(authenticity)},
			EmotionalExpression: ScoreDetail{Score: clampScore(emotional), Level: trustLevel(emotional)},
			Readability:         ScoreDetail{Score: clampScore(readability), Level: trustLevel(readability)},
			TrustElement:        ScoreDetail{Score: clampScore(trustElement), Level: trustLevel(trustElement)},
		},
		Details: trustDetails(wordCount, subjective, trust, topSubjective, topTrust,
			sentiment, dominant, emotionExpressions,
			authenticity, emotional, readability, trustElement,
			subjectiveRatio, trustRatio,
			opinionRatio, emphasisRatio, firstPersonRatio, emotionRatio, exaggerationRatio),
	}
}

func curveOpinion(r float64) float64 {
	switch {
	case r < 2:
		return 50 + r*10
	case r < 8:
		return 70 + (8-r)*3
	}
	return 100 - (r-8)*5
}

func curveEmphasis(r float64) float64 {
	switch {
	case r < 1:
		return 60 + r*20
	case r < 5:
		return 80 - (r-1)*5
	}
	return 100 - (r-5)*10
}

func curveFirstPerson(r float64) float64 {
	switch {
	case r < 3:
		return 60 + r*10
	case r < 10:
		return 90 - (r-3)*3
	}
	return 100 - (r-10)*5
}

func curveEmotion(r float64) float64 {
	switch {
	case r < 2:
		return 50 + r*15
	case r < 6:
		return 80 - (r-2)*5
	}
	return 100 - (r-6)*8
}

func curveExaggeration(r float64) float64 {
	switch {
	case r < 1:
		return 80
	case r < 3:
		return 80 - (r-1)*15
	}
	return 50 - (r-3)*10
}

// emotionalExpressionScore rewards a moderate sentiment strength: flat
// texts read distant, extreme ones read unreliable.
func emotionalExpressionScore(sentiment float64) float64 {
	abs := math.Abs(sentiment)
	switch {
	case abs < 0.1:
		return 60
	case abs < 0.4:
		return 80 + (0.4-abs)*50
	}
	return 100 - (abs-0.4)*100
}

// matchedEmotionTerms returns the emotion-category phrases found in the
// text, in taxonomy order.
func matchedEmotionTerms(text string) []string {
	lowered := strings.ToLower(text)
	found := []string{}
	for _, term := range emotionTerms() {
		if countOccurrences(lowered, strings.ToLower(term), true) > 0 {
			found = append(found, term)
		}
	}
	return found
}

// dominantEmotion classifies the overall tone. Many distinct emotion
// phrases with a near-neutral sentiment score read as mixed.
func dominantEmotion(sentiment float64, emotionTermCount int) Emotion {
	dominant := EmotionNeutral
	if sentiment > 0.3 {
		dominant = EmotionPositive
	} else if sentiment < -0.3 {
		dominant = EmotionNegative
	}
	if emotionTermCount >= 3 && math.Abs(sentiment) < 0.2 {
		dominant = EmotionMixed
	}
	return dominant
}

func hitTerms(hits []termHit) []string {
	terms := make([]string, len(hits))
	for i, h := range hits {
		terms[i] = h.term
	}
	return terms
}

func hitLabels(hits []termHit) string {
	if len(hits) == 0 {
		return "없음"
	}
	labels := make([]string, len(hits))
	for i, h := range hits {
		labels[i] = fmt.Sprintf("%s(%d회)", h.term, h.count)
	}
	return strings.Join(labels, ", ")
}

func trustDetails(wordCount int, subjective, trust taxonomyScan,
	topSubjective, topTrust []termHit,
	sentiment float64, dominant Emotion, emotionExpressions []string,
	authenticity, emotional, readability, trustElement float64,
	subjectiveRatio, trustRatio float64,
	opinionRatio, emphasisRatio, firstPersonRatio, emotionRatio, exaggerationRatio float64) string {

	emotionList := "없음"
	if len(emotionExpressions) > 0 {
		emotionList = strings.Join(emotionExpressions, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "총 단어 수: %d개\n\n", wordCount)
	fmt.Fprintf(&sb, "개인적 표현: %d개 (%.2f%%)\n", subjective.total, subjectiveRatio)
	fmt.Fprintf(&sb, "주요 개인적 표현: %s\n\n", hitLabels(topSubjective))
	fmt.Fprintf(&sb, "신뢰 요소: %d개 (%.2f%%)\n", trust.total, trustRatio)
	fmt.Fprintf(&sb, "주요 신뢰 요소: %s\n\n", hitLabels(topTrust))
	fmt.Fprintf(&sb, "주요 감정 톤: %s (감정 점수: %.2f)\n", dominant, sentiment)
	fmt.Fprintf(&sb, "주요 감정 표현: %s\n\n", emotionList)
	fmt.Fprintf(&sb, "진정성 점수: %.1f점 (%s)\n", authenticity, trustLevel(authenticity))
	fmt.Fprintf(&sb, "감정 표현: %.1f점 (%s)\n", emotional, trustLevel(emotional))
	fmt.Fprintf(&sb, "가독성: %.1f점 (%s)\n", readability, trustLevel(readability))
	fmt.Fprintf(&sb, "신뢰 요소 점수: %.1f점 (%s)\n\n", trustElement, trustLevel(trustElement))
	sb.WriteString("카테고리별 분석:\n")
	fmt.Fprintf(&sb, "- 의견 표현: %d개 (%.2f%%)\n", subjective.byCategory[catOpinion], opinionRatio)
	fmt.Fprintf(&sb, "- 강조 표현: %d개 (%.2f%%)\n", subjective.byCategory[catEmphasis], emphasisRatio)
	fmt.Fprintf(&sb, "- 1인칭 표현: %d개 (%.2f%%)\n", subjective.byCategory[catFirstPerson], firstPersonRatio)
	fmt.Fprintf(&sb, "- 감정 표현: %d개 (%.2f%%)\n", subjective.byCategory[catEmotion], emotionRatio)
	fmt.Fprintf(&sb, "- 과장 표현: %d개 (%.2f%%)\n\n", subjective.byCategory[catExaggeration], exaggerationRatio)
	sb.WriteString("종합 평가:\n")
	fmt.Fprintf(&sb, "이 블로그 포스팅은 %s 수준의 개인적 표현을 사용하고 있으며, 신뢰 요소 활용은 %s 수준입니다. ",
		subjectiveLevel(subjectiveRatio), trustKeywordLevel(trustRatio))
	fmt.Fprintf(&sb, "진정성은 %s 수준이며, 감정 표현은 %s 수준으로 평가됩니다. ",
		trustLevel(authenticity), trustLevel(emotional))
	fmt.Fprintf(&sb, "주요 감정 톤은 %s이며, 가독성은 %s 수준입니다.",
		dominant, trustLevel(readability))
	return sb.String()
}

// emptyTrustworthiness is the sentinel result for empty input.
func emptyTrustworthiness() TrustworthinessResult {
	return TrustworthinessResult{
		SubjectiveExpressionRatio: LevelLow,
		TrustKeywordUsage:         LevelLow,
		SubjectiveExpressions: ExpressionAnalysis{
			Total: ExpressionTotals{Expressions: []string{}},
		},
		TrustElements: ElementAnalysis{
			Total: ElementTotals{Elements: []string{}},
		},
		EmotionalContext: EmotionalContext{
			DominantEmotion:      EmotionNeutral,
			EmotionalExpressions: []string{},
		},
		Scores: TrustScores{
			Authenticity:        ScoreDetail{Level: LevelVeryLow},
			EmotionalExpression: ScoreDetail{Level: LevelVeryLow},
			Readability:         ScoreDetail{Level: LevelVeryLow},
			TrustElement:        ScoreDetail{Level: LevelVeryLow},
		},
		Details: emptyTextMessage,
	}
}
