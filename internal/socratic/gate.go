package socratic

import "scribe_tree_writer/internal/model"

const (
	MinReflectionWords = 50

	minAccessQuality   = 3.0
	standardLevelFloor = 5.0
	advancedLevelFloor = 8.0
)

const (
	FeedbackNeedsMoreWords = "Your reflection needs more depth. Aim for at least 50 words to show your thinking process."
	FeedbackThinkDeeper    = "Take a moment to think deeper about your approach. What are you really trying to accomplish?"
	FeedbackGranted        = "Great reflection! I'm here to help you think through your ideas."
)

var (
	wordCountSuggestions = []string{
		"What is the main point you're trying to make?",
		"What challenges are you facing with this topic?",
		"What questions do you have about your approach?",
	}
	qualitySuggestions = []string{
		"Explain your main argument or thesis",
		"Describe what evidence you plan to use",
		"Identify specific areas where you need help",
	}
)

// DenyReason はアクセス拒否の理由
type DenyReason string

const (
	DenyNone       DenyReason = ""
	DenyTooShort   DenyReason = "word_count"
	DenyLowQuality DenyReason = "quality"
)

// AccessDecision はアクセスゲートの判定結果 (保存しない)。
// Granted が false のとき Level は LevelNone。
type AccessDecision struct {
	Granted      bool
	QualityScore float64
	Level        model.AILevel
	Feedback     string
	Suggestions  []string
	Reason       DenyReason
}

// LevelForQuality は品質スコアだけから決まる基本レベル。各段階の下限は含む。
// 3.0 未満でも basic を返すため、アクセス可否は Decide で判定すること。
func LevelForQuality(quality float64) model.AILevel {
	switch {
	case quality < standardLevelFloor:
		return model.LevelBasic
	case quality < advancedLevelFloor:
		return model.LevelStandard
	default:
		return model.LevelAdvanced
	}
}

// Decide は語数、品質の順に判定する。短い振り返りは品質に関係なく語数で拒否される。
func Decide(wordCount int, quality float64) AccessDecision {
	if wordCount < MinReflectionWords {
		return AccessDecision{
			QualityScore: quality,
			Level:        model.LevelNone,
			Feedback:     FeedbackNeedsMoreWords,
			Suggestions:  append([]string(nil), wordCountSuggestions...),
			Reason:       DenyTooShort,
		}
	}
	if quality < minAccessQuality {
		return AccessDecision{
			QualityScore: quality,
			Level:        model.LevelNone,
			Feedback:     FeedbackThinkDeeper,
			Suggestions:  append([]string(nil), qualitySuggestions...),
			Reason:       DenyLowQuality,
		}
	}
	return AccessDecision{
		Granted:      true,
		QualityScore: quality,
		Level:        LevelForQuality(quality),
		Feedback:     FeedbackGranted,
	}
}
