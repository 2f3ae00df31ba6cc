package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"scribe_tree_writer/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReflectionHandler_PostReflection(t *testing.T) {
	userID := uuid.New()
	documentID := uuid.New()
	level := model.LevelStandard

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m serviceMocks)
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:   "正常系: 判定結果を返す",
			userID: &userID,
			body:   map[string]interface{}{"document_id": documentID, "reflection": "I am thinking about my argument."},
			setupMock: func(m serviceMocks) {
				m.reflection.On("SubmitReflection", mock.Anything, userID, &model.SubmitReflectionRequest{
					DocumentID: documentID,
					Reflection: "I am thinking about my argument.",
				}).Return(&model.ReflectionResponse{AccessGranted: true, QualityScore: 6.1, AILevel: &level}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: ユーザーIDなし",
			userID:         nil,
			body:           map[string]interface{}{"document_id": documentID, "reflection": "x"},
			setupMock:      func(m serviceMocks) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: 未知のフィールド",
			userID:         &userID,
			body:           `{"document_id":"` + documentID.String() + `","reflection":"x","extra":1}`,
			setupMock:      func(m serviceMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: document_id がない",
			userID:         &userID,
			body:           map[string]interface{}{"reflection": "x"},
			setupMock:      func(m serviceMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "document_id",
		},
		{
			name:   "異常系: 文書が見つからない",
			userID: &userID,
			body:   map[string]interface{}{"document_id": documentID, "reflection": "x"},
			setupMock: func(m serviceMocks) {
				m.reflection.On("SubmitReflection", mock.Anything, userID, mock.Anything).
					Return(nil, model.NewAppError("DOCUMENT_NOT_FOUND", "Document not found", "document_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "DOCUMENT_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tc.setupMock(m)

			rr := serve(t, router, createRequest(t, http.MethodPost, "/api/v1/ai/reflect", tc.body, tc.userID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tc.expectedCode, detail.Code)
				assert.NotEmpty(t, detail.Message)
				if tc.expectedField != "" {
					assert.Equal(t, tc.expectedField, detail.Field)
				}
				return
			}
			var resp model.ReflectionResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, resp.AccessGranted)
			require.NotNil(t, resp.AILevel)
			assert.Equal(t, model.LevelStandard, *resp.AILevel)
		})
	}
}

func TestReflectionHandler_GetAdaptiveLevel(t *testing.T) {
	userID := uuid.New()
	documentID := uuid.New()

	t.Run("正常系: quality を渡す", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.reflection.On("ComputeAdaptiveLevel", mock.Anything, userID, documentID, mock.MatchedBy(func(q *float64) bool {
			return q != nil && *q == 7.5
		})).Return(&model.AdaptiveLevelResponse{DocumentID: documentID, BaseLevel: model.LevelStandard, AILevel: model.LevelAdvanced}, nil).Once()

		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/level/"+documentID.String()+"?quality=7.5", nil, &userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.AdaptiveLevelResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, model.LevelAdvanced, resp.AILevel)
	})

	t.Run("正常系: quality 省略", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.reflection.On("ComputeAdaptiveLevel", mock.Anything, userID, documentID, (*float64)(nil)).
			Return(&model.AdaptiveLevelResponse{DocumentID: documentID}, nil).Once()

		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/level/"+documentID.String(), nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: quality が数値でない", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/level/"+documentID.String()+"?quality=high", nil, &userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "quality", decodeError(t, rr).Field)
	})

	t.Run("異常系: document_id が UUID でない", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/v1/ai/level/not-a-uuid", nil, &userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_URL_PARAM", decodeError(t, rr).Code)
	})
}
