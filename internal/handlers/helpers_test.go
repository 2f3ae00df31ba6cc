// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scribe_tree_writer/internal/handlers"
	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// serviceMocks はハンドラテスト用のサービスモック一式
type serviceMocks struct {
	reflection *mocks.ReflectionService
	partner    *mocks.PartnerService
	document   *mocks.DocumentService
	analytics  *mocks.AnalyticsService
}

// newTestRouter は開発用認証 (X-User-ID) でルートを組み立てる
func newTestRouter(t *testing.T) (*chi.Mux, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		reflection: mocks.NewReflectionService(t),
		partner:    mocks.NewPartnerService(t),
		document:   mocks.NewDocumentService(t),
		analytics:  mocks.NewAnalyticsService(t),
	}
	return buildRouter(handlers.Handlers{
		Reflection: handlers.NewReflectionHandler(m.reflection, testLogger),
		Partner:    handlers.NewPartnerHandler(m.partner, testLogger),
		Document:   handlers.NewDocumentHandler(m.document, testLogger),
		Analytics:  handlers.NewAnalyticsHandler(m.analytics, testLogger),
	}), m
}

func buildRouter(h handlers.Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(testLogger))
	handlers.RegisterRoutes(r, h, middleware.DevUserContextMiddleware)
	return r
}

// createRequest は body を JSON にしてリクエストを作る。body が string ならそのまま送る。
func createRequest(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set(middleware.DevUserHeader, userID.String())
	}
	return req
}

func serve(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "Failed to unmarshal error response body: %s", rr.Body.String())
	return errResp.Error
}
