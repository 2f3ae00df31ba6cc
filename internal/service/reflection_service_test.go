package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/repository/mocks"
	"scribe_tree_writer/internal/socratic"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateReflectionText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "正常系: 通常の文章", text: "I am thinking about my essay.", wantErr: false},
		{name: "正常系: 上限ちょうど", text: strings.Repeat("a", 10000), wantErr: false},
		{name: "異常系: 空文字", text: "", wantErr: true},
		{name: "異常系: 空白のみ", text: "   \n\t ", wantErr: true},
		{name: "異常系: 長すぎる", text: strings.Repeat("a", 10001), wantErr: true},
		{name: "異常系: scriptタグ", text: "hello <SCRIPT>alert(1)</script>", wantErr: true},
		{name: "異常系: javascriptスキーム", text: "see javascript:void(0)", wantErr: true},
		{name: "異常系: onerror属性", text: "<img onerror=x>", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReflectionText(tt.text)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
			assert.Equal(t, "reflection", appErr.Detail.Field)
		})
	}
}

// fixedScore は品質スコアを固定する採点関数
func fixedScore(quality float64) scoreFunc {
	return func(text string) (socratic.DimensionScores, int, float64) {
		return socratic.DimensionScores{Depth: 2, SelfAwareness: 1, CriticalThinking: 1, GrowthMindset: 1},
			socratic.WordCount(text), quality
	}
}

func reflectionsNewestFirst(scores ...float64) []*model.Reflection {
	now := time.Now()
	out := make([]*model.Reflection, len(scores))
	for i, s := range scores {
		out[i] = &model.Reflection{ReflectionID: uuid.New(), QualityScore: s, CreatedAt: now.Add(-time.Duration(i) * time.Hour)}
	}
	return out
}

func Test_reflectionService_SubmitReflection(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	doc := testDocument(userID)

	type mocksT struct {
		doc         *mocks.DocumentRepository
		reflection  *mocks.ReflectionRepository
		interaction *mocks.InteractionRepository
	}

	tests := []struct {
		name       string
		text       string
		score      scoreFunc           // nil なら実際の採点
		gen        *recordingGenerator // nil なら質問は定型
		setup      func(m mocksT)
		wantErr    error
		wantAccess bool
		wantLevel  model.AILevel
		check      func(t *testing.T, m mocksT, resp *model.ReflectionResponse)
	}{
		{
			name: "正常系: 50語の平易な文章は basic で通過し保存される",
			text: neutralWords(60),
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				m.reflection.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return([]*model.Reflection{}, nil).Once()
				m.interaction.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
				m.reflection.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(r *model.Reflection) bool {
					return r.UserID == userID && r.DocumentID == doc.DocumentID &&
						r.WordCount == 60 && r.AILevelGranted == model.LevelBasic
				})).Return(nil).Once()
			},
			wantAccess: true,
			wantLevel:  model.LevelBasic,
			check: func(t *testing.T, m mocksT, resp *model.ReflectionResponse) {
				assert.InDelta(t, 3.7, resp.QualityScore, 1e-9)
				assert.Equal(t, socratic.FeedbackGranted, resp.Feedback)
				assert.Equal(t, socratic.InitialQuestions(model.LevelBasic), resp.InitialQuestions)
				assert.Empty(t, resp.Suggestions)
				require.NotNil(t, resp.Dimensions)
				assert.Equal(t, 1, resp.Dimensions.Depth)
				assert.NotNil(t, resp.ReflectionID)
			},
		},
		{
			name: "正常系: 語数不足は拒否され保存されない",
			text: neutralWords(10),
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
			},
			wantAccess: false,
			check: func(t *testing.T, m mocksT, resp *model.ReflectionResponse) {
				assert.Equal(t, socratic.FeedbackNeedsMoreWords, resp.Feedback)
				assert.Len(t, resp.Suggestions, 3)
				assert.Nil(t, resp.AILevel)
				assert.Nil(t, resp.ReflectionID)
				m.reflection.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:  "正常系: 品質不足は think deeper で拒否され保存されない",
			text:  neutralWords(60),
			score: fixedScore(2.5),
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
			},
			wantAccess: false,
			check: func(t *testing.T, m mocksT, resp *model.ReflectionResponse) {
				assert.Equal(t, 2.5, resp.QualityScore)
				assert.Equal(t, socratic.FeedbackThinkDeeper, resp.Feedback)
				assert.Contains(t, resp.Suggestions, "Explain your main argument or thesis")
				m.reflection.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:  "正常系: 上昇傾向の履歴で basic から standard に上がる",
			text:  neutralWords(60),
			score: fixedScore(4.0),
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				// 新しい順 [7,6,5] は古い順 [5,6,7]
				m.reflection.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return(reflectionsNewestFirst(7, 6, 5), nil).Once()
				m.interaction.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
				m.reflection.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(r *model.Reflection) bool {
					return r.AILevelGranted == model.LevelStandard && r.QualityScore == 4.0
				})).Return(nil).Once()
			},
			wantAccess: true,
			wantLevel:  model.LevelStandard,
			check: func(t *testing.T, m mocksT, resp *model.ReflectionResponse) {
				assert.Equal(t, socratic.InitialQuestions(model.LevelStandard), resp.InitialQuestions)
			},
		},
		{
			name:  "正常系: 履歴の読み込みに失敗しても基本レベルで通過する",
			text:  neutralWords(60),
			score: fixedScore(6.0),
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				m.reflection.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return(nil, errors.New("db down")).Once()
				m.interaction.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Maybe()
				m.reflection.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantAccess: true,
			wantLevel:  model.LevelStandard,
		},
		{
			name:  "正常系: 振り返りと直近の版から質問を生成する",
			text:  "I keep saying\n\"trees\" but " + neutralWords(60),
			score: fixedScore(6.0),
			gen: &recordingGenerator{reply: "1. What do you mean by trees here?\n2. Which draft felt closest to your point?\nKeep going!"},
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				m.reflection.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return([]*model.Reflection{}, nil).Once()
				m.interaction.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
				m.reflection.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.doc.On("FindVersions", mock.Anything, mock.Anything, doc.DocumentID, 3).Return([]*model.DocumentVersion{
					{VersionNumber: 2, Content: "Cities need shade."},
					{VersionNumber: 1, Content: "Trees are nice."},
				}, nil).Once()
			},
			wantAccess: true,
			wantLevel:  model.LevelStandard,
			check: func(t *testing.T, m mocksT, resp *model.ReflectionResponse) {
				assert.Equal(t, []string{
					"What do you mean by trees here?",
					"Which draft felt closest to your point?",
				}, resp.InitialQuestions)
			},
		},
		{
			name:  "正常系: 生成に失敗したら定型の質問に戻る",
			text:  neutralWords(60),
			score: fixedScore(6.0),
			gen:   &recordingGenerator{err: errors.New("upstream 503")},
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				m.reflection.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return([]*model.Reflection{}, nil).Once()
				m.interaction.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
				m.reflection.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.doc.On("FindVersions", mock.Anything, mock.Anything, doc.DocumentID, 3).Return([]*model.DocumentVersion{}, nil).Once()
			},
			wantAccess: true,
			wantLevel:  model.LevelStandard,
			check: func(t *testing.T, m mocksT, resp *model.ReflectionResponse) {
				assert.Equal(t, socratic.InitialQuestions(model.LevelStandard), resp.InitialQuestions)
			},
		},
		{
			name:  "正常系: 版の読み込みに失敗しても版なしで生成する",
			text:  neutralWords(60),
			score: fixedScore(6.0),
			gen:   &recordingGenerator{reply: "What is your reader missing?"},
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				m.reflection.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return([]*model.Reflection{}, nil).Once()
				m.interaction.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
				m.reflection.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.doc.On("FindVersions", mock.Anything, mock.Anything, doc.DocumentID, 3).Return(nil, errors.New("db down")).Once()
			},
			wantAccess: true,
			wantLevel:  model.LevelStandard,
			check: func(t *testing.T, m mocksT, resp *model.ReflectionResponse) {
				assert.Equal(t, []string{"What is your reader missing?"}, resp.InitialQuestions)
			},
		},
		{
			name: "異常系: 他人の文書は NotFound",
			text: neutralWords(60),
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:    "異常系: 空の振り返りはリポジトリを呼ばずに拒否",
			text:    "   ",
			setup:   func(m mocksT) {},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:  "異常系: 保存失敗は内部エラー",
			text:  neutralWords(60),
			score: fixedScore(6.0),
			setup: func(m mocksT) {
				m.doc.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				m.reflection.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return([]*model.Reflection{}, nil).Once()
				m.interaction.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
				m.reflection.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocksT{
				doc:         mocks.NewDocumentRepository(t),
				reflection:  mocks.NewReflectionRepository(t),
				interaction: mocks.NewInteractionRepository(t),
			}
			tt.setup(m)

			var questioner Questioner
			if tt.gen != nil {
				// 定型への切り替えはサービス側で行う
				questioner = &socratic.Pipeline{Generator: tt.gen, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
			}
			svc := NewReflectionService(setupServiceTestDB(t), m.doc, m.reflection, m.interaction, questioner, testAppConfig()).(*reflectionService)
			if tt.score != nil {
				svc.score = tt.score
			}

			resp, err := svc.SubmitReflection(ctx, userID, &model.SubmitReflectionRequest{
				DocumentID: doc.DocumentID,
				Reflection: tt.text,
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantAccess, resp.AccessGranted)
			if tt.wantAccess {
				require.NotNil(t, resp.AILevel)
				assert.Equal(t, tt.wantLevel, *resp.AILevel)
			}
			if tt.check != nil {
				tt.check(t, m, resp)
			}
			if tt.gen != nil {
				require.NotEmpty(t, tt.gen.prompts)
				assert.Contains(t, tt.gen.prompts[0].User, strings.TrimSpace(tt.text))
			}
		})
	}
}

func Test_reflectionService_ComputeAdaptiveLevel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	doc := testDocument(userID)

	ptr := func(f float64) *float64 { return &f }
	longQuestion := &model.Interaction{UserMessage: neutralWords(30), CreatedAt: time.Now()}

	tests := []struct {
		name      string
		quality   *float64
		setup     func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository)
		wantErr   error
		wantCode  string
		wantBase  model.AILevel
		wantLevel model.AILevel
		wantAdjs  []string
	}{
		{
			name:    "正常系: 指定スコアと下降傾向で advanced から standard へ",
			quality: ptr(8.0),
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				// 古い順 [7,6,5]
				r.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return(reflectionsNewestFirst(5, 6, 7), nil).Once()
				i.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
			},
			wantBase:  model.LevelAdvanced,
			wantLevel: model.LevelStandard,
			wantAdjs:  []string{"declining_trend: advanced -> standard"},
		},
		{
			name: "正常系: スコア省略時は最新の振り返りを使い、長い質問で一段上がる",
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				r.On("FindLatestByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(&model.Reflection{QualityScore: 6.0}, nil).Once()
				r.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return([]*model.Reflection{}, nil).Once()
				i.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{longQuestion, longQuestion}, nil).Once()
			},
			wantBase:  model.LevelStandard,
			wantLevel: model.LevelAdvanced,
			wantAdjs:  []string{"engagement: standard -> advanced"},
		},
		{
			name:    "正常系: 履歴なしは基本レベルのまま",
			quality: ptr(3.0),
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				r.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 10).Return([]*model.Reflection{}, nil).Once()
				i.On("FindRecentByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID, 20).Return([]*model.Interaction{}, nil).Once()
			},
			wantBase:  model.LevelBasic,
			wantLevel: model.LevelBasic,
			wantAdjs:  []string{},
		},
		{
			name:    "異常系: 範囲外のスコア",
			quality: ptr(10.5),
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:    "異常系: NaN のスコア",
			quality: ptr(math.NaN()),
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:    "異常系: 無限大のスコア",
			quality: ptr(math.Inf(1)),
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "異常系: 振り返りが一度もない",
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(doc, nil).Once()
				r.On("FindLatestByDocument", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "NO_REFLECTION",
		},
		{
			name: "異常系: 文書が見つからない",
			setup: func(d *mocks.DocumentRepository, r *mocks.ReflectionRepository, i *mocks.InteractionRepository) {
				d.On("FindByID", mock.Anything, mock.Anything, userID, doc.DocumentID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr:  model.ErrNotFound,
			wantCode: "DOCUMENT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mocks.NewDocumentRepository(t)
			r := mocks.NewReflectionRepository(t)
			i := mocks.NewInteractionRepository(t)
			tt.setup(d, r, i)

			svc := NewReflectionService(setupServiceTestDB(t), d, r, i, nil, testAppConfig())
			resp, err := svc.ComputeAdaptiveLevel(ctx, userID, doc.DocumentID, tt.quality)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, doc.DocumentID, resp.DocumentID)
			assert.Equal(t, tt.wantBase, resp.BaseLevel)
			assert.Equal(t, tt.wantLevel, resp.AILevel)
			assert.Equal(t, tt.wantAdjs, resp.Adjustments)
		})
	}
}
