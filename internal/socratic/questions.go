package socratic

import "scribe_tree_writer/internal/model"

var initialQuestions = map[model.AILevel][]string{
	model.LevelBasic: {
		"What is the main point you're trying to make?",
		"Can you tell me more about your topic?",
		"What challenges are you facing?",
	},
	model.LevelStandard: {
		"What evidence supports your argument?",
		"How does this connect to your thesis?",
		"What are the key points you want to explore?",
	},
	model.LevelAdvanced: {
		"What are the implications of your argument?",
		"How might different perspectives challenge your view?",
		"What assumptions underlie your reasoning?",
	},
}

var followUpPrompts = map[model.AILevel][]string{
	model.LevelBasic: {
		"What's the main point you're trying to make?",
		"Can you explain that idea more?",
		"What made you think of this approach?",
	},
	model.LevelStandard: {
		"What evidence supports this claim?",
		"How does this connect to your thesis?",
		"What would someone who disagrees say?",
	},
	model.LevelAdvanced: {
		"What are the implications of this argument?",
		"How does this challenge conventional thinking?",
		"What assumptions are you making here?",
	},
}

// 生成器が使えないときの定型応答。境界チェックを通る文面にしておくこと。
var staticResponses = map[model.AILevel]string{
	model.LevelBasic: "What do you think is the main point you want your reader to take away? " +
		"In your view, which part of your draft says it most clearly? " +
		"You're asking good questions, so keep going.",
	model.LevelStandard: "How might the evidence you've chosen support your central claim? " +
		"What's your perspective on where your reasoning feels strongest and where it feels thin? " +
		"Your careful thinking is paying off.",
	model.LevelAdvanced: "What assumptions sit underneath your argument, and what if a skeptical reader rejected one of them? " +
		"How would you approach that challenge? " +
		"You're engaging with real complexity here.",
}

// InitialQuestions は振り返り通過直後に提示する3つの質問
func InitialQuestions(level model.AILevel) []string {
	return copyFor(initialQuestions, level)
}

// FollowUpPrompts は会話を続けるための3つの質問
func FollowUpPrompts(level model.AILevel) []string {
	return copyFor(followUpPrompts, level)
}

// StaticResponse はレベル別の定型応答。未知のレベルは advanced 扱い。
func StaticResponse(level model.AILevel) string {
	if s, ok := staticResponses[level]; ok {
		return s
	}
	return staticResponses[model.LevelAdvanced]
}

func copyFor(set map[model.AILevel][]string, level model.AILevel) []string {
	qs, ok := set[level]
	if !ok {
		qs = set[model.LevelAdvanced]
	}
	return append([]string(nil), qs...)
}
