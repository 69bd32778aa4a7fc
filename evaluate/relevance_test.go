package evaluate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatedKeywordDensity(t *testing.T) {
	result := Relevance(strings.Repeat("데이터 ", 50), "")

	assert.Equal(t, LevelVeryHigh, result.KeywordDensity)
	require.NotEmpty(t, result.KeywordDensityAnalysis.Keywords.Primary)
	top := result.KeywordDensityAnalysis.Keywords.Primary[0]
	assert.Equal(t, "데이터", top.Keyword)
	assert.Equal(t, 50, top.Count)
	assert.InDelta(t, 100, top.Density, 1e-9)
}

func TestDomainDetection(t *testing.T) {
	result := Relevance("개발 데이터 알고리즘 서버 보안 기술", "")

	assert.Contains(t, result.Details, "관련 도메인: 기술")
	assert.NotEmpty(t, result.SuggestedKeywords)
	assert.Contains(t, result.SuggestedKeywords, "데이터")
}

func TestExplicitQueryUsed(t *testing.T) {
	result := Relevance("인공지능 기술로 데이터를 분석합니다", "데이터 분석")

	require.Len(t, result.QueryRelevanceAnalysis.Queries, 1)
	assert.Equal(t, "데이터 분석", result.QueryRelevanceAnalysis.Queries[0].Query)
	// The query terms appear in the text, so similarity must be positive.
	assert.Greater(t, result.Scores.SemanticRelevance.Score, 0.0)
}

func TestDynamicQueryGenerated(t *testing.T) {
	result := Relevance("여행 일정과 숙소 후기를 정리한 글입니다", "")

	require.Len(t, result.QueryRelevanceAnalysis.Queries, 1)
	assert.NotEmpty(t, result.QueryRelevanceAnalysis.Queries[0].Query)
}

func TestQueryRelevanceSynonyms(t *testing.T) {
	e := defaultEvaluator()

	// 코딩 is a synonym of 개발: the enhanced similarity must beat the
	// raw-vector similarity, which sees disjoint terms.
	withSynonym := e.queryRelevance([]string{"코딩", "강좌"}, []string{"개발", "강좌"}, "기술")
	disjoint := e.queryRelevance([]string{"바다", "하늘"}, []string{"개발", "강좌"}, "기술")
	assert.Greater(t, withSynonym, disjoint)
}

func TestQueryRelevancePartialMatch(t *testing.T) {
	e := defaultEvaluator()

	// 데이터베이스 contains the query token 데이터: the containment
	// bonus raises its weight in the text vector.
	partial := e.queryRelevance([]string{"데이터", "데이터베이스"}, []string{"데이터"}, "기술")
	assert.Greater(t, partial, 0.0)

	none := e.queryRelevance([]string{"바다", "하늘"}, []string{"데이터"}, "기술")
	assert.Zero(t, none)
}

func TestQueryRelevanceEmptySides(t *testing.T) {
	e := defaultEvaluator()
	assert.Zero(t, e.queryRelevance(nil, []string{"데이터"}, "기본"))
	assert.Zero(t, e.queryRelevance([]string{"데이터"}, nil, "기본"))
}

func TestDensityLevels(t *testing.T) {
	assert.Equal(t, LevelVeryHigh, densityLevel(40))
	assert.Equal(t, LevelHigh, densityLevel(30))
	assert.Equal(t, LevelMediumHigh, densityLevel(25))
	assert.Equal(t, LevelMedium, densityLevel(18))
	assert.Equal(t, LevelMediumLow, densityLevel(12))
	assert.Equal(t, LevelLow, densityLevel(7))
	assert.Equal(t, LevelVeryLow, densityLevel(2))
}

func TestRelevanceWordCount(t *testing.T) {
	result := Relevance("데이터 알고리즘 서버", "")
	assert.Equal(t, 3, result.WordCount)
}
