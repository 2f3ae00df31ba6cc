package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/handlers"
	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/repository"
	"scribe_tree_writer/internal/service"
	"scribe_tree_writer/internal/socratic"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const flowReply = "What do you think your opening should promise the reader? In your view, which detail earns that promise?"

const flowQuestions = "1. What does your reader need to believe first?\n2. Which sentence carries your main claim?\n3. What would change your mind?\n4. Why trees?"

// newFlowRouter は実際のリポジトリとサービスを sqlite 上で組み立てる
func newFlowRouter(t *testing.T, gen socratic.Generator) *chi.Mux {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 並行読み込みでも shared cache のロックに当たらないように1接続に絞る
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	appCfg := config.AppConfig{
		ReflectionHistoryLimit:  config.DefaultReflectionHistoryLimit,
		InteractionHistoryLimit: config.DefaultInteractionHistoryLimit,
		ConversationWindow:      config.DefaultConversationWindow,
		VersionWindow:           config.DefaultVersionWindow,
	}
	docRepo := repository.NewGormDocumentRepository()
	reflectionRepo := repository.NewGormReflectionRepository()
	interactionRepo := repository.NewGormInteractionRepository()
	pipeline := &socratic.Pipeline{Generator: gen, StaticFallback: true, Logger: testLogger}

	return buildRouter(handlers.Handlers{
		Reflection: handlers.NewReflectionHandler(service.NewReflectionService(db, docRepo, reflectionRepo, interactionRepo, pipeline, appCfg), testLogger),
		Partner:    handlers.NewPartnerHandler(service.NewPartnerService(db, docRepo, reflectionRepo, interactionRepo, pipeline, nil, appCfg), testLogger),
		Document:   handlers.NewDocumentHandler(service.NewDocumentService(db, docRepo), testLogger),
		Analytics:  handlers.NewAnalyticsHandler(service.NewAnalyticsService(db, docRepo, reflectionRepo, interactionRepo), testLogger),
	})
}

func TestAPIFlow_ReflectThenAsk(t *testing.T) {
	var prompts []socratic.Prompt
	gen := socratic.GeneratorFunc(func(_ context.Context, p socratic.Prompt) (string, error) {
		prompts = append(prompts, p)
		if strings.HasPrefix(p.User, "Based on this student reflection") {
			return flowQuestions, nil
		}
		return flowReply, nil
	})
	router := newFlowRouter(t, gen)
	userID := uuid.New()
	otherUser := uuid.New()

	// 1. 文書を作る
	rr := serve(t, router, createRequest(t, http.MethodPost, "/api/v1/documents",
		map[string]string{"title": "City Trees", "content": "Cities should plant more trees."}, &userID))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var doc model.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	docPath := doc.DocumentID.String()

	// 2. 短い振り返りは拒否され、記録されない
	rr = serve(t, router, createRequest(t, http.MethodPost, "/api/v1/ai/reflect",
		map[string]interface{}{"document_id": doc.DocumentID, "reflection": "I need help with this."}, &userID))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var denied model.ReflectionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &denied))
	assert.False(t, denied.AccessGranted)
	assert.Equal(t, socratic.FeedbackNeedsMoreWords, denied.Feedback)

	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/analytics/reflection-quality", nil, &userID))
	require.Equal(t, http.StatusOK, rr.Code)
	var quality model.ReflectionQualityResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quality))
	assert.Equal(t, int64(0), quality.TotalReflections)

	// 3. 十分な長さの振り返りは通過する
	long := strings.TrimSpace(strings.Repeat("plain ", 60))
	rr = serve(t, router, createRequest(t, http.MethodPost, "/api/v1/ai/reflect",
		map[string]interface{}{"document_id": doc.DocumentID, "reflection": long}, &userID))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var granted model.ReflectionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &granted))
	require.True(t, granted.AccessGranted)
	require.NotNil(t, granted.AILevel)
	assert.Equal(t, model.LevelBasic, *granted.AILevel)
	assert.Equal(t, []string{
		"What does your reader need to believe first?",
		"Which sentence carries your main claim?",
		"What would change your mind?",
	}, granted.InitialQuestions)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0].User, long)
	assert.Contains(t, prompts[0].User, "Version 1: Cities should plant more trees.")

	// 4. 質問する
	rr = serve(t, router, createRequest(t, http.MethodPost, "/api/v1/ai/ask", map[string]interface{}{
		"document_id": doc.DocumentID,
		"question":    "How should I open my essay?",
		"context":     doc.Content,
		"ai_level":    "basic",
	}, &userID))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var answer model.AskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &answer))
	assert.Equal(t, flowReply, answer.Response)
	assert.Equal(t, model.QuestionClarifying, answer.QuestionType)
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[1].User, "Version 1: Cities should plant more trees.")

	// 5. 会話履歴に振り返りと生成段階が残る
	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/conversations/"+docPath, nil, &userID))
	require.Equal(t, http.StatusOK, rr.Code)
	var conv model.ConversationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &conv))
	require.Len(t, conv.Conversations, 1)
	assert.Equal(t, string(socratic.TierContext), conv.Conversations[0].GenerationTier)
	assert.Equal(t, granted.ReflectionID, conv.Conversations[0].ReflectionID)

	// 6. 本文を更新するとバージョンが増える
	rr = serve(t, router, createRequest(t, http.MethodPatch, "/api/v1/documents/"+docPath,
		map[string]string{"content": "Cities should plant more trees because shade saves lives."}, &userID))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/documents/"+docPath+"/versions", nil, &userID))
	require.Equal(t, http.StatusOK, rr.Code)
	var versions []model.DocumentVersion
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &versions))
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].VersionNumber)

	// 7. 指標
	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/analytics/learning-metrics", nil, &userID))
	require.Equal(t, http.StatusOK, rr.Code)
	var metrics model.LearningMetricsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &metrics))
	assert.Equal(t, 1, metrics.TotalReflections)
	assert.Equal(t, service.TrendInsufficientData, metrics.ReflectionQualityTrend)
	assert.Equal(t, 1.0, metrics.AIDependencyRatio)
	assert.Equal(t, 0.0, metrics.IndependenceScore)

	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/analytics/writing-progress", nil, &userID))
	require.Equal(t, http.StatusOK, rr.Code)
	var progress model.WritingProgressResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progress))
	assert.Equal(t, int64(1), progress.DocumentsCreated)
	assert.Len(t, progress.DailyProgress, 1)

	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/analytics/ai-interactions", nil, &userID))
	require.Equal(t, http.StatusOK, rr.Code)
	var aiStats model.AIInteractionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &aiStats))
	assert.Equal(t, int64(1), aiStats.TotalInteractions)
	assert.Equal(t, map[string]int64{"basic": 1, "standard": 0, "advanced": 0}, aiStats.AILevelDistribution)
	require.Len(t, aiStats.InteractionPatterns, 1)
	assert.Equal(t, len(strings.Fields(flowReply)), aiStats.InteractionPatterns[0].ResponseLength)

	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/analytics/learning-insights", nil, &userID))
	require.Equal(t, http.StatusOK, rr.Code)
	var insights model.LearningInsightsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &insights))
	assert.Equal(t, service.TrendInsufficientData, insights.ReflectionQualityTrend)
	assert.Equal(t, 1, insights.TotalReflections)
	assert.Equal(t, int64(1), insights.TotalAIInteractions)

	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/analytics/learning-insights?start_date=2024-05-10&end_date=2024-05-01", nil, &userID))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "end_date", decodeError(t, rr).Field)

	// NaN のスコアは範囲外として弾く
	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/level/"+docPath+"?quality=NaN", nil, &userID))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "quality", decodeError(t, rr).Field)

	// 8. 他のユーザーからは見えない
	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/conversations/"+docPath, nil, &otherUser))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/level/"+docPath, nil, &otherUser))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPIFlow_GeneratorDownFallsBackToStatic(t *testing.T) {
	gen := socratic.GeneratorFunc(func(context.Context, socratic.Prompt) (string, error) {
		return "", fmt.Errorf("upstream 500")
	})
	router := newFlowRouter(t, gen)
	userID := uuid.New()

	rr := serve(t, router, createRequest(t, http.MethodPost, "/api/v1/documents", map[string]string{"content": "draft"}, &userID))
	require.Equal(t, http.StatusCreated, rr.Code)
	var doc model.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, "Untitled Document", doc.Title)

	rr = serve(t, router, createRequest(t, http.MethodPost, "/api/v1/ai/reflect", map[string]interface{}{
		"document_id": doc.DocumentID,
		"reflection":  strings.TrimSpace(strings.Repeat("plain ", 60)),
	}, &userID))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var granted model.ReflectionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &granted))
	require.True(t, granted.AccessGranted)
	assert.Equal(t, socratic.InitialQuestions(model.LevelBasic), granted.InitialQuestions)

	rr = serve(t, router, createRequest(t, http.MethodPost, "/api/v1/ai/ask", map[string]interface{}{
		"document_id": doc.DocumentID,
		"question":    "Where do I go next?",
		"ai_level":    "advanced",
	}, &userID))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var answer model.AskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &answer))
	assert.Equal(t, socratic.StaticResponse(model.LevelAdvanced), answer.Response)
	assert.Equal(t, model.QuestionCritical, answer.QuestionType)
}
