// internal/handlers/reflection_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/service"
	"scribe_tree_writer/internal/webutil"
)

type ReflectionHandler struct {
	service service.ReflectionService
	logger  *slog.Logger
}

func NewReflectionHandler(s service.ReflectionService, logger *slog.Logger) *ReflectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReflectionHandler{
		service: s,
		logger:  logger,
	}
}

// PostReflection は振り返りを受け取り、AIへのアクセス可否を返すハンドラ
func (h *ReflectionHandler) PostReflection(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReflection"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	var req model.SubmitReflectionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SubmitReflection(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Reflection rejected", slog.Any("error", err))
		} else {
			logger.Error("Error submitting reflection in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reflection evaluated",
		slog.String("document_id", req.DocumentID.String()),
		slog.Bool("access_granted", resp.AccessGranted),
		slog.Float64("quality_score", resp.QualityScore),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetAdaptiveLevel は文書の履歴からAIレベルを再計算するハンドラ。?quality= で現在スコアを指定できる。
func (h *ReflectionHandler) GetAdaptiveLevel(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAdaptiveLevel"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, logger, "document_id")
	if !ok {
		return
	}

	var quality *float64
	if raw := r.URL.Query().Get("quality"); raw != "" {
		q, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Warn("Invalid quality query parameter", slog.String("quality", raw))
			webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "quality must be a number", "quality", model.ErrInvalidInput))
			return
		}
		quality = &q
	}

	resp, err := h.service.ComputeAdaptiveLevel(r.Context(), userID, documentID, quality)
	if err != nil {
		logger.Warn("Error computing adaptive level", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
