package socratic

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"scribe_tree_writer/internal/model"
)

const (
	DefaultConversationWindow = 5
	DefaultVersionWindow      = 3
	// VersionExcerptRunes はバージョン抜粋の最大文字数
	VersionExcerptRunes = 200
)

// SystemPrompt は生成器に渡すシステム指示
const SystemPrompt = `You are a Socratic writing partner designed to help students develop stronger thinking
through thoughtful questioning. Your role is to guide students to discover insights
themselves, not to provide answers or write content for them.

Core Principles:
1. NEVER write content for the student - no thesis statements, paragraphs, or sentences
2. ALWAYS respond with questions that prompt deeper thinking
3. Focus on the student's reasoning process, not the final product
4. Help them identify gaps in their logic or evidence
5. Encourage them to explore multiple perspectives
6. Build their confidence through thoughtful inquiry

Your questions should:
- Be open-ended and thought-provoking
- Target specific aspects of their argument or reasoning
- Help them discover what they already know
- Guide them toward clarity without giving away the answer
- Encourage critical examination of assumptions

Remember: You are cultivating independent thinkers, not dependent users.`

const closingInstruction = `Respond with 1-2 thoughtful questions that guide them to find their own answer.
Do not provide direct answers or write any content for them.
End with an encouraging note about their thinking process.`

var levelInstructions = map[model.AILevel]string{
	model.LevelBasic:    "Ask simple clarifying questions to help them articulate their thoughts better.",
	model.LevelStandard: "Ask analytical questions that help them examine their reasoning and evidence.",
	model.LevelAdvanced: "Ask sophisticated questions that challenge assumptions and explore deeper implications.",
}

// HistoryTurn は過去の質問と応答の1往復
type HistoryTurn struct {
	UserMessage string
	AIResponse  string
	CreatedAt   time.Time
}

// VersionSnapshot は文書の過去バージョン
type VersionSnapshot struct {
	VersionNumber int
	Content       string
	CreatedAt     time.Time
}

// PromptInput はプロンプト組み立ての入力。History と Versions の並び順は問わない。
type PromptInput struct {
	Question string
	Context  string
	Level    model.AILevel
	History  []HistoryTurn
	Versions []VersionSnapshot

	// 0 以下なら既定値
	ConversationWindow int
	VersionWindow      int
}

// Prompt は生成器に渡す指示一式
type Prompt struct {
	System       string
	User         string
	QuestionType model.QuestionType
}

// LevelInstruction はレベルごとの問いかけ方の指示。未知のレベルは advanced 扱い。
func LevelInstruction(level model.AILevel) string {
	if s, ok := levelInstructions[level]; ok {
		return s
	}
	return levelInstructions[model.LevelAdvanced]
}

// BuildPrompt は会話履歴と文書バージョンを含むプロンプトを組み立てます。
func BuildPrompt(in PromptInput) Prompt {
	var b strings.Builder

	writeContext(&b, in.Context)

	if turns := recentTurns(in.History, windowOr(in.ConversationWindow, DefaultConversationWindow)); len(turns) > 0 {
		b.WriteString("Previous conversation (oldest first):\n")
		for _, t := range turns {
			fmt.Fprintf(&b, "Student: %s\nAssistant: %s\n", t.UserMessage, t.AIResponse)
		}
		b.WriteString("\n")
	}

	if versions := recentVersions(in.Versions, windowOr(in.VersionWindow, DefaultVersionWindow)); len(versions) > 0 {
		b.WriteString("Recent drafts of the document:\n")
		for _, v := range versions {
			fmt.Fprintf(&b, "Version %d: %s\n", v.VersionNumber, Excerpt(v.Content, VersionExcerptRunes))
		}
		b.WriteString("\n")
	}

	writeQuestion(&b, in)
	return Prompt{System: SystemPrompt, User: b.String(), QuestionType: model.QuestionTypeFor(in.Level)}
}

// BuildPlainPrompt は履歴とバージョンを含まないプロンプト
func BuildPlainPrompt(in PromptInput) Prompt {
	var b strings.Builder
	writeContext(&b, in.Context)
	writeQuestion(&b, in)
	return Prompt{System: SystemPrompt, User: b.String(), QuestionType: model.QuestionTypeFor(in.Level)}
}

func writeContext(b *strings.Builder, context string) {
	if strings.TrimSpace(context) == "" {
		return
	}
	fmt.Fprintf(b, "The student is working on this writing:\n\"%s\"\n\n", context)
}

func writeQuestion(b *strings.Builder, in PromptInput) {
	fmt.Fprintf(b, "They asked: \"%s\"\n\n", in.Question)
	b.WriteString(LevelInstruction(in.Level))
	b.WriteString("\n\n")
	b.WriteString(closingInstruction)
}

// recentTurns は時刻順に並べ替えて末尾 n 件を返す (古い順)
func recentTurns(history []HistoryTurn, n int) []HistoryTurn {
	if len(history) == 0 {
		return nil
	}
	sorted := append([]HistoryTurn(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// recentVersions はバージョン番号の新しい順に n 件
func recentVersions(versions []VersionSnapshot, n int) []VersionSnapshot {
	if len(versions) == 0 {
		return nil
	}
	sorted := append([]VersionSnapshot(nil), versions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].VersionNumber > sorted[j].VersionNumber
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Excerpt は先頭 limit 文字に切り詰め、切り詰めたときは "..." を付ける
func Excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func windowOr(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
