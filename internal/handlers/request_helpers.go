// internal/handlers/request_helpers.go
package handlers

import (
	"log/slog"
	"net/http"

	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requireUser はコンテキストのユーザーIDを返す。無ければ 401 を書いて false。
func requireUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, *slog.Logger, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, logger, false
	}
	return userID, logger.With(slog.String("user_id", userID.String())), true
}

// uuidParam は URL パラメータを UUID として読む。不正なら 400 を書いて false。
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String(name, raw), slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", name+" is not a valid UUID", name, model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate はJSONボディを読み、validate タグで検証する。失敗時はレスポンスを書いて false。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(w, r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON", "", model.ErrInvalidInput))
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
