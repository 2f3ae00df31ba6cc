package socratic

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"scribe_tree_writer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_ConversationWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	history := make([]HistoryTurn, 20)
	for i := range history {
		history[i] = HistoryTurn{
			UserMessage: fmt.Sprintf("question-%02d", i),
			AIResponse:  fmt.Sprintf("response-%02d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
	}
	// 入力順に依存しないこと
	rand.New(rand.NewSource(42)).Shuffle(len(history), func(i, j int) {
		history[i], history[j] = history[j], history[i]
	})

	p := BuildPrompt(PromptInput{Question: "Is my intro working?", Level: model.LevelStandard, History: history})

	assert.Equal(t, 5, strings.Count(p.User, "Student: "))
	for i := 0; i < 15; i++ {
		assert.NotContains(t, p.User, fmt.Sprintf("question-%02d", i))
	}
	last := -1
	for i := 15; i < 20; i++ {
		idx := strings.Index(p.User, fmt.Sprintf("Student: question-%02d\nAssistant: response-%02d\n", i, i))
		require.NotEqual(t, -1, idx, "turn %d missing", i)
		assert.Greater(t, idx, last, "turn %d out of order", i)
		last = idx
	}
}

func TestBuildPrompt_VersionWindow(t *testing.T) {
	long := strings.Repeat("あ", 300)
	versions := []VersionSnapshot{
		{VersionNumber: 2, Content: "second"},
		{VersionNumber: 5, Content: long},
		{VersionNumber: 1, Content: "first"},
		{VersionNumber: 4, Content: "fourth"},
		{VersionNumber: 3, Content: "third"},
	}

	p := BuildPrompt(PromptInput{Question: "q", Level: model.LevelBasic, Versions: versions})

	assert.Contains(t, p.User, "Version 5: "+strings.Repeat("あ", VersionExcerptRunes)+"...\n")
	assert.Contains(t, p.User, "Version 4: fourth\n")
	assert.Contains(t, p.User, "Version 3: third\n")
	assert.NotContains(t, p.User, "Version 2:")
	assert.NotContains(t, p.User, "Version 1:")
	assert.NotContains(t, p.User, strings.Repeat("あ", VersionExcerptRunes+1))
}

func TestBuildPrompt_Level(t *testing.T) {
	tests := []struct {
		level        model.AILevel
		instruction  string
		questionType model.QuestionType
	}{
		{model.LevelBasic, "simple clarifying questions", model.QuestionClarifying},
		{model.LevelStandard, "analytical questions", model.QuestionAnalytical},
		{model.LevelAdvanced, "challenge assumptions", model.QuestionCritical},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			p := BuildPrompt(PromptInput{Question: "Where should I start?", Context: "draft text", Level: tt.level})

			assert.Equal(t, SystemPrompt, p.System)
			assert.Equal(t, tt.questionType, p.QuestionType)
			assert.Contains(t, p.User, tt.instruction)
			assert.Contains(t, p.User, `"draft text"`)
			assert.Contains(t, p.User, `They asked: "Where should I start?"`)
			assert.True(t, strings.HasSuffix(p.User, closingInstruction))
		})
	}
}

func TestBuildPlainPrompt(t *testing.T) {
	in := PromptInput{
		Question: "q",
		Level:    model.LevelAdvanced,
		History:  []HistoryTurn{{UserMessage: "old", AIResponse: "older", CreatedAt: time.Now()}},
		Versions: []VersionSnapshot{{VersionNumber: 1, Content: "v1"}},
	}

	p := BuildPlainPrompt(in)

	assert.NotContains(t, p.User, "Previous conversation")
	assert.NotContains(t, p.User, "Recent drafts")
	assert.NotContains(t, p.User, "The student is working on")
	assert.Contains(t, p.User, "Do not provide direct answers")
	assert.Equal(t, model.QuestionCritical, p.QuestionType)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "", Excerpt("", 3))
	assert.Equal(t, "abc", Excerpt("abc", 3))
	assert.Equal(t, "abc...", Excerpt("abcd", 3))
	assert.Equal(t, "日本語...", Excerpt("日本語です", 3))
}

func TestBuildPrompt_KeepsRawText(t *testing.T) {
	in := PromptInput{
		Question: `Is "sprawl" the right word?`,
		Context:  "First paragraph.\nSecond paragraph with \"quotes\".",
		Level:    model.LevelBasic,
	}

	for name, p := range map[string]Prompt{"context": BuildPrompt(in), "plain": BuildPlainPrompt(in)} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, p.User, "\"First paragraph.\nSecond paragraph with \"quotes\".\"\n\n")
			assert.Contains(t, p.User, `They asked: "Is "sprawl" the right word?"`)
			assert.NotContains(t, p.User, `\n`)
			assert.NotContains(t, p.User, `\"`)
		})
	}
}
