package evaluate

// termCategory is one named group of phrases scanned for as a unit.
// Category order is fixed: it decides tie-breaking when matched terms
// are ranked by count.
type termCategory struct {
	name  string
	terms []string
}

// Subjective-expression category names.
const (
	catOpinion      = "opinion"
	catEmphasis     = "emphasis"
	catFirstPerson  = "firstPerson"
	catEmotion      = "emotion"
	catExaggeration = "exaggeration"
)

// Trust-element category names.
const (
	catResearch = "research"
	catAcademic = "academic"
	catData     = "data"
	catFactual  = "factual"
)

// subjectiveTaxonomy holds the hand-authored Korean phrases that mark a
// text as subjective. Scanning uses word boundaries: these are mostly
// standalone words, and substring hits inside longer words would
// inflate counts.
var subjectiveTaxonomy = []termCategory{
	{name: catOpinion, terms: []string{
		"생각한다", "느낌", "추측", "아마도", "개인적으로",
		"내 생각에", "내 관점에서", "~인 것 같다", "~처럼 보인다", "확신한다",
	}},
	{name: catEmphasis, terms: []string{
		"분명히", "절대", "항상", "절대로", "전혀", "매우", "너무",
		"굉장히", "엄청나게", "훨씬", "최고", "최악", "가장", "제일",
	}},
	{name: catFirstPerson, terms: []string{
		"나는", "내가", "나의", "우리는", "우리가", "우리의",
		"저는", "제가", "저의",
	}},
	{name: catEmotion, terms: []string{
		"기쁘다", "슬프다", "화나다", "놀랍다", "실망스럽다",
		"만족스럽다", "불만이다", "좋아한다", "싫어한다", "사랑한다",
		"미워한다", "두렵다", "걱정된다", "기대된다",
	}},
	{name: catExaggeration, terms: []string{
		"엄청난", "대단한", "놀라운", "믿을 수 없는", "상상을 초월하는",
		"전례 없는", "혁명적인", "획기적인", "전무후무한",
		"최고의", "최상의", "최악의", "최저의",
	}},
}

// trustTaxonomy holds the phrases that mark a text as evidence-backed.
// Scanned without word boundaries: many entries are multi-word phrases
// or stems that legitimately occur inside inflected forms.
var trustTaxonomy = []termCategory{
	{name: catResearch, terms: []string{
		"연구에 따르면", "실험 결과", "조사 결과", "통계적으로", "과학적으로",
		"객관적으로", "전문가들은", "증거에 기반하여", "참고문헌", "인용",
		"출처", "데이터", "분석 결과", "연구팀은", "증명되었다",
		"검증되었다", "입증되었다", "발견되었다", "관찰되었다",
	}},
	{name: catAcademic, terms: []string{
		"논문", "학술지", "저널", "출판물", "학회", "학계", "이론",
		"가설", "방법론", "결론", "요약", "서론", "본론", "초록",
		"개요", "참고 문헌",
	}},
	{name: catData, terms: []string{
		"데이터셋", "샘플", "표본", "모집단", "변수", "상관관계",
		"인과관계", "유의미한", "통계량", "평균", "중앙값", "표준편차",
		"분산", "백분위", "신뢰구간", "유의수준",
	}},
	{name: catFactual, terms: []string{
		"사실상", "실제로", "현실적으로", "구체적으로", "명확하게",
		"정확하게", "정밀하게", "공식적으로", "합법적으로", "공인된",
		"인증된", "표준화된", "규격화된",
	}},
}

// emotionTerms returns the emotion category of the subjective taxonomy,
// used on its own by the emotional-context analysis.
func emotionTerms() []string {
	for _, c := range subjectiveTaxonomy {
		if c.name == catEmotion {
			return c.terms
		}
	}
	return nil
}
