package model

// AILevel はAIパートナーの質問の難易度
type AILevel string

const (
	LevelNone     AILevel = ""
	LevelBasic    AILevel = "basic"
	LevelStandard AILevel = "standard"
	LevelAdvanced AILevel = "advanced"
)

// Rank は比較用の序数 (none=0, basic=1, standard=2, advanced=3)
func (l AILevel) Rank() int {
	switch l {
	case LevelBasic:
		return 1
	case LevelStandard:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 0
	}
}

func (l AILevel) Valid() bool {
	return l.Rank() > 0
}

func ParseAILevel(s string) (AILevel, bool) {
	l := AILevel(s)
	return l, l.Valid()
}

// QuestionType はレベルから決まる質問の種類
type QuestionType string

const (
	QuestionClarifying QuestionType = "clarifying"
	QuestionAnalytical QuestionType = "analytical"
	QuestionCritical   QuestionType = "critical"
)

// QuestionTypeFor は basic→clarifying, standard→analytical, advanced→critical
func QuestionTypeFor(level AILevel) QuestionType {
	switch level {
	case LevelBasic:
		return QuestionClarifying
	case LevelStandard:
		return QuestionAnalytical
	default:
		return QuestionCritical
	}
}
