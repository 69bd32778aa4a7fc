package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		term      string
		wholeWord bool
		want      int
	}{
		{"separated whole words", "분명히 분명히 분명히", "분명히", true, 3},
		{"embedded whole word rejected", "분명히분명히", "분명히", true, 0},
		{"embedded substring counted", "분명히분명히", "분명히", false, 2},
		{"punctuation is a boundary", "분명히, 분명히!", "분명히", true, 2},
		{"ascii letter blocks boundary", "data datax", "data", true, 1},
		{"digit blocks boundary", "data1", "data", true, 0},
		{"start and end of text", "데이터", "데이터", true, 1},
		{"no match", "하늘과 바다", "데이터", true, 0},
		{"empty term", "분명히", "", true, 0},
		{"empty text", "", "분명히", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countOccurrences(tt.text, tt.term, tt.wholeWord)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanTaxonomyAttribution(t *testing.T) {
	cats := []termCategory{
		{name: "first", terms: []string{"알파", "베타"}},
		{name: "second", terms: []string{"감마"}},
	}
	scan := scanTaxonomy("알파 베타 알파 감마", cats, true)

	assert.Equal(t, 4, scan.total)
	assert.Equal(t, 3, scan.byCategory["first"])
	assert.Equal(t, 1, scan.byCategory["second"])
	// Hits keep taxonomy order.
	assert.Equal(t, []termHit{{"알파", 2}, {"베타", 1}, {"감마", 1}}, scan.found)
}

func TestScanTaxonomyCaseInsensitive(t *testing.T) {
	cats := []termCategory{{name: "en", terms: []string{"fact"}}}
	scan := scanTaxonomy("Fact FACT fact", cats, true)
	assert.Equal(t, 3, scan.total)
}

func TestTopTerms(t *testing.T) {
	scan := taxonomyScan{found: []termHit{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 2}}}

	top := scan.topTerms(3)
	// Descending count, ties kept in taxonomy order.
	assert.Equal(t, []termHit{{"b", 3}, {"c", 3}, {"d", 2}}, top)

	all := scan.topTerms(10)
	assert.Len(t, all, 4)
}
