package evaluate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `인공지능 기술은 데이터 분석 방법을 크게 바꾸고 있습니다.
연구에 따르면 머신러닝 알고리즘은 대규모 데이터에서 유용한 패턴을 발견했다.
개인적으로 나는 이 기술이 매우 유용하다고 생각한다!
다만 과장된 기대보다는 실제로 검증되었다는 증거를 확인하는 태도가 필요합니다.`

func TestEvaluateIdempotent(t *testing.T) {
	first := Evaluate(sampleText)
	second := Evaluate(sampleText)
	assert.Equal(t, first, second)

	withQuery := EvaluateWithQuery(sampleText, "인공지능 데이터 분석")
	assert.Equal(t, withQuery, EvaluateWithQuery(sampleText, "인공지능 데이터 분석"))
}

func TestEvaluateAggregatesIndependently(t *testing.T) {
	result := EvaluateWithQuery(sampleText, "데이터 분석")
	assert.Equal(t, Expertise(sampleText), result.Expertise)
	assert.Equal(t, Trustworthiness(sampleText), result.Trustworthiness)
	assert.Equal(t, Relevance(sampleText, "데이터 분석"), result.Relevance)
}

func TestScoreBounds(t *testing.T) {
	texts := []string{
		sampleText,
		"짧은 글.",
		"hello world",
		strings.Repeat("데이터 ", 50),
		"매우 매우 매우 매우 너무 너무 최악 최악 최악!",
		"연구에 따르면 데이터 분석 결과 통계적으로 유의미한 상관관계가 관찰되었다.",
	}
	for _, text := range texts {
		result := Evaluate(text)

		assert.GreaterOrEqual(t, result.Expertise.Score, 0, "expertise: %q", text)
		assert.LessOrEqual(t, result.Expertise.Score, 100, "expertise: %q", text)
		assert.GreaterOrEqual(t, result.Trustworthiness.Score, 0, "trust: %q", text)
		assert.LessOrEqual(t, result.Trustworthiness.Score, 100, "trust: %q", text)
		assert.GreaterOrEqual(t, result.Relevance.Score, 0, "relevance: %q", text)
		assert.LessOrEqual(t, result.Relevance.Score, 100, "relevance: %q", text)

		for name, detail := range map[string]ScoreDetail{
			"complexity":          result.Expertise.Scores.Complexity,
			"vocabulary":          result.Expertise.Scores.Vocabulary,
			"technicalTerms":      result.Expertise.Scores.TechnicalTerms,
			"coherence":           result.Expertise.Scores.Coherence,
			"authenticity":        result.Trustworthiness.Scores.Authenticity,
			"emotionalExpression": result.Trustworthiness.Scores.EmotionalExpression,
			"readability":         result.Trustworthiness.Scores.Readability,
			"trustElement":        result.Trustworthiness.Scores.TrustElement,
			"keywordMatch":        result.Relevance.Scores.KeywordMatch,
			"semanticRelevance":   result.Relevance.Scores.SemanticRelevance,
			"contextualFit":       result.Relevance.Scores.ContextualFit,
			"queryAlignment":      result.Relevance.Scores.QueryAlignment,
		} {
			assert.GreaterOrEqual(t, detail.Score, 0.0, "%s: %q", name, text)
			assert.LessOrEqual(t, detail.Score, 100.0, "%s: %q", name, text)
			assert.NotEmpty(t, detail.Level, "%s level: %q", name, text)
		}
	}
}

func TestEmptyInputSentinels(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t ", strings.Repeat("가", maxInputBytes+1)} {
		exp := Expertise(text)
		assert.Zero(t, exp.Score)
		assert.Zero(t, exp.WordCount)
		assert.Equal(t, LevelLow, exp.TopicCoherence)
		assert.Equal(t, LevelLow, exp.KeywordUsage)
		assert.Empty(t, exp.KeywordAnalysis.Total.Keywords)
		assert.NotNil(t, exp.KeySentences)
		assert.Empty(t, exp.KeySentences)
		assert.Equal(t, emptyTextMessage, exp.Details)

		trust := Trustworthiness(text)
		assert.Zero(t, trust.Score)
		assert.Zero(t, trust.WordCount)
		assert.Zero(t, trust.SubjectiveExpressions.Total.Count)
		assert.Zero(t, trust.TrustElements.Total.Count)
		assert.Empty(t, trust.SubjectiveExpressions.Total.Expressions)
		assert.Equal(t, EmotionNeutral, trust.EmotionalContext.DominantEmotion)
		assert.Equal(t, LevelVeryLow, trust.Scores.Authenticity.Level)
		assert.Equal(t, emptyTextMessage, trust.Details)

		rel := Relevance(text, "아무 쿼리")
		assert.Zero(t, rel.Score)
		assert.Zero(t, rel.WordCount)
		assert.Empty(t, rel.KeywordDensityAnalysis.Keywords.Primary)
		assert.Empty(t, rel.QueryRelevanceAnalysis.Queries)
		assert.Empty(t, rel.SuggestedKeywords)
		assert.Equal(t, emptyTextMessage, rel.Details)
	}
}

func TestDetailsRendered(t *testing.T) {
	result := Evaluate(sampleText)
	require.NotEmpty(t, result.Expertise.Details)
	assert.Contains(t, result.Expertise.Details, "텍스트 길이")
	assert.Contains(t, result.Expertise.Details, "핵심 문장")
	assert.Contains(t, result.Trustworthiness.Details, "총 단어 수")
	assert.Contains(t, result.Trustworthiness.Details, "카테고리별 분석")
	assert.Contains(t, result.Relevance.Details, "키워드 밀도")
	assert.Contains(t, result.Relevance.Details, "관련 도메인")
}

func BenchmarkEvaluate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Evaluate(sampleText)
	}
}
