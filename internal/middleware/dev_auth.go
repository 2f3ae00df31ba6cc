package middleware

import (
	"net/http"

	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/webutil"

	"github.com/google/uuid"
)

// DevUserHeader は開発時にユーザーIDを渡すヘッダー
const DevUserHeader = "X-User-ID"

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーのUUIDをそのまま認証済みユーザーとして扱います。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get(DevUserHeader)
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-User-ID header", "", model.ErrUnauthorized))
			return
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-User-ID format", "value", userIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Invalid X-User-ID format", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] User ID set to context (no validation)", "user_id", userID.String())
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
