package evaluate

// Level is a qualitative Korean label derived from a numeric score or
// ratio via fixed thresholds. The threshold tables differ per metric.
type Level string

// Level labels, lowest to highest. MediumLow and MediumHigh appear only
// on the keyword-density scale.
const (
	LevelVeryLow    Level = "매우 낮음"
	LevelLow        Level = "낮음"
	LevelMediumLow  Level = "중간 낮음"
	LevelMedium     Level = "중간"
	LevelMediumHigh Level = "중간 높음"
	LevelHigh       Level = "높음"
	LevelVeryHigh   Level = "매우 높음"
)

// Emotion is the dominant emotional tone of a text.
type Emotion string

// Dominant emotion labels.
const (
	EmotionPositive Emotion = "긍정"
	EmotionNegative Emotion = "부정"
	EmotionNeutral  Emotion = "중립"
	EmotionMixed    Emotion = "혼합"
)

// expertiseLevel buckets the expertise evaluator's scores.
func expertiseLevel(score float64) Level {
	switch {
	case score >= 75:
		return LevelVeryHigh
	case score >= 60:
		return LevelHigh
	case score >= 45:
		return LevelMedium
	case score >= 30:
		return LevelLow
	}
	return LevelVeryLow
}

// trustLevel buckets the trustworthiness evaluator's sub-scores.
func trustLevel(score float64) Level {
	switch {
	case score >= 80:
		return LevelVeryHigh
	case score >= 65:
		return LevelHigh
	case score >= 50:
		return LevelMedium
	case score >= 35:
		return LevelLow
	}
	return LevelVeryLow
}

// subjectiveLevel buckets the subjective-expression ratio, a percentage
// of word count rather than a composite score.
func subjectiveLevel(ratio float64) Level {
	switch {
	case ratio < 1:
		return LevelVeryLow
	case ratio < 2:
		return LevelLow
	case ratio < 4:
		return LevelMedium
	case ratio < 7:
		return LevelHigh
	}
	return LevelVeryHigh
}

// trustKeywordLevel buckets the trust-keyword ratio.
func trustKeywordLevel(ratio float64) Level {
	switch {
	case ratio < 0.5:
		return LevelVeryLow
	case ratio < 1:
		return LevelLow
	case ratio < 2:
		return LevelMedium
	case ratio < 4:
		return LevelHigh
	}
	return LevelVeryHigh
}

// queryLevel buckets the relevance evaluator's query, domain, and topic
// focus scores.
func queryLevel(score float64) Level {
	switch {
	case score >= 80:
		return LevelVeryHigh
	case score >= 60:
		return LevelHigh
	case score >= 40:
		return LevelMedium
	case score >= 20:
		return LevelLow
	}
	return LevelVeryLow
}

// densityLevel buckets the keyword density percentage on its own
// seven-step scale.
func densityLevel(density float64) Level {
	switch {
	case density >= 35:
		return LevelVeryHigh
	case density >= 28:
		return LevelHigh
	case density >= 22:
		return LevelMediumHigh
	case density >= 16:
		return LevelMedium
	case density >= 10:
		return LevelMediumLow
	case density >= 5:
		return LevelLow
	}
	return LevelVeryLow
}
