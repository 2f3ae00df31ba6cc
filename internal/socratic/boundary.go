package socratic

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	ReasonValid            = "Response follows bounded enhancement principles"
	ReasonLacksQuestioning = "Response lacks questioning or exploratory language"
	ReasonNoIndependence   = "Response doesn't promote independent thinking"
)

// Verdict は境界チェックの結果
type Verdict struct {
	IsValid bool
	Reason  string
	// Pattern は不合格の原因になった禁止パターン (該当時のみ)
	Pattern string
}

// Validator は「答えを与えず、問いかける」境界を語彙パターンで判定します。
// 表層的な判定なので、修辞疑問に偽装した答えなどは検出できません。
type Validator struct {
	prohibited   []*regexp.Regexp
	enhancement  []*regexp.Regexp
	independence []string // 小文字化済み
}

// NewValidator はパターン一覧から Validator を作ります。正規表現が不正ならエラー。
func NewValidator(prohibited, enhancement, independence []string) (*Validator, error) {
	v := &Validator{independence: lowerAll(independence)}
	for _, p := range prohibited {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("socratic.NewValidator: prohibited pattern %q: %w", p, err)
		}
		v.prohibited = append(v.prohibited, re)
	}
	for _, p := range enhancement {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("socratic.NewValidator: enhancement pattern %q: %w", p, err)
		}
		v.enhancement = append(v.enhancement, re)
	}
	return v, nil
}

var defaultValidator = &Validator{
	prohibited:   compilePatterns(ProhibitedPatterns),
	enhancement:  compilePatterns(EnhancementPatterns),
	independence: lowerAll(IndependenceBuilders),
}

// DefaultValidator は組み込みの語彙を使う Validator
func DefaultValidator() *Validator {
	return defaultValidator
}

// ValidateResponse は組み込みの語彙で応答テキストを判定します。
func ValidateResponse(text string) Verdict {
	return defaultValidator.Validate(text)
}

// ProhibitedMatch は最初に一致した禁止パターンを返す
func (v *Validator) ProhibitedMatch(text string) (string, bool) {
	for _, re := range v.prohibited {
		if re.MatchString(text) {
			return strings.TrimPrefix(re.String(), `(?i)`), true
		}
	}
	return "", false
}

// Validate は 禁止パターン → 問いかけパターン → 自立性フレーズ の順に判定し、最初の不合格で止まる。
func (v *Validator) Validate(text string) Verdict {
	if pattern, ok := v.ProhibitedMatch(text); ok {
		return Verdict{
			Reason:  fmt.Sprintf("Response contains prohibited pattern: %s", pattern),
			Pattern: pattern,
		}
	}

	hasEnhancement := false
	for _, re := range v.enhancement {
		if re.MatchString(text) {
			hasEnhancement = true
			break
		}
	}
	if !hasEnhancement {
		return Verdict{Reason: ReasonLacksQuestioning}
	}

	lower := strings.ToLower(text)
	if !containsAny(lower, v.independence) {
		return Verdict{Reason: ReasonNoIndependence}
	}

	return Verdict{IsValid: true, Reason: ReasonValid}
}
