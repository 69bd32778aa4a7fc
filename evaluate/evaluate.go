// Package evaluate scores free-form text along three axes: expertise,
// trustworthiness, and relevance. Each axis produces a 0-100 score, a
// set of qualitative level labels, a structured breakdown of named
// sub-scores, and a template-rendered Korean summary.
//
// The three evaluators are mutually independent pure functions of the
// input text: each re-tokenizes with its own options and never shares
// state with the others, so calling any of them twice with the same
// input yields identical results. Empty or whitespace-only input is not
// an error; every evaluator returns a fully populated zero result with
// the lowest level labels and an explanatory message.
//
// Two API layers are provided:
//
//   - Structured: New builds an Evaluator around an explicit Lexicon.
//   - Convenience: the package-level functions use the embedded default
//     lexicon.
//
// All functions are safe for concurrent use by multiple goroutines.
package evaluate

import (
	"math"
	"strings"
	"sync"

	"github.com/az-ai-labs/ko-text-eval/lexicon"
	"github.com/az-ai-labs/ko-text-eval/textstat"
	"github.com/az-ai-labs/ko-text-eval/tokenizer"
)

// maxInputBytes caps input size. Oversized input is treated like empty
// input and yields the sentinel zero result.
const maxInputBytes = 1 << 20 // 1 MiB

// emptyTextMessage is the details string of every empty-input sentinel.
const emptyTextMessage = "텍스트가 비어 있습니다."

// ScoreDetail is one named sub-score with its qualitative level.
type ScoreDetail struct {
	Score float64 `json:"score"`
	Level Level   `json:"level"`
}

// CategoryStat is the occurrence count and word-count ratio of one
// expression or keyword category.
type CategoryStat struct {
	Count int     `json:"count"`
	Ratio float64 `json:"ratio"`
}

// Result aggregates the three independent evaluations of one text.
type Result struct {
	Expertise       ExpertiseResult       `json:"expertise"`
	Trustworthiness TrustworthinessResult `json:"trustworthiness"`
	Relevance       RelevanceResult       `json:"relevance"`
}

// Evaluator runs the three text evaluations against one Lexicon.
type Evaluator struct {
	lex *lexicon.Lexicon
	tok *tokenizer.Tokenizer
	ts  *textstat.Analyzer
}

// New returns an Evaluator backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Evaluator {
	return &Evaluator{lex: lex, tok: tokenizer.New(lex), ts: textstat.New(lex)}
}

var defaultEvaluator = sync.OnceValue(func() *Evaluator {
	return New(lexicon.Default())
})

// Evaluate runs all three evaluations with a dynamically generated
// relevance query, using the embedded default lexicon.
func Evaluate(text string) Result { return defaultEvaluator().Evaluate(text) }

// EvaluateWithQuery runs all three evaluations against an explicit
// relevance query, using the embedded default lexicon.
func EvaluateWithQuery(text, query string) Result {
	return defaultEvaluator().EvaluateWithQuery(text, query)
}

// Expertise evaluates text using the embedded default lexicon.
func Expertise(text string) ExpertiseResult { return defaultEvaluator().Expertise(text) }

// Trustworthiness evaluates text using the embedded default lexicon.
func Trustworthiness(text string) TrustworthinessResult {
	return defaultEvaluator().Trustworthiness(text)
}

// Relevance evaluates text against a query using the embedded default
// lexicon. An empty query triggers dynamic query generation.
func Relevance(text, query string) RelevanceResult {
	return defaultEvaluator().Relevance(text, query)
}

// Evaluate runs all three evaluations. The relevance query is generated
// dynamically from the text itself.
func (e *Evaluator) Evaluate(text string) Result {
	return e.EvaluateWithQuery(text, "")
}

// EvaluateWithQuery runs all three evaluations against an explicit
// relevance query. An empty query triggers dynamic query generation.
func (e *Evaluator) EvaluateWithQuery(text, query string) Result {
	return Result{
		Expertise:       e.Expertise(text),
		Trustworthiness: e.Trustworthiness(text),
		Relevance:       e.Relevance(text, query),
	}
}

// blank reports whether the input triggers the empty-input sentinel:
// whitespace-only or over the size cap.
func blank(text string) bool {
	return strings.TrimSpace(text) == "" || len(text) > maxInputBytes
}

// clampScore clamps a sub-score into [0, 100] before it is surfaced.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundScore rounds a composite score to the nearest integer and clamps
// it into [0, 100].
func roundScore(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
