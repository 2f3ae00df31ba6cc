// internal/handlers/partner_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/service"
	"scribe_tree_writer/internal/webutil"
)

type PartnerHandler struct {
	service service.PartnerService
	logger  *slog.Logger
}

func NewPartnerHandler(s service.PartnerService, logger *slog.Logger) *PartnerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PartnerHandler{
		service: s,
		logger:  logger,
	}
}

// PostAsk は学生の質問にソクラテス式の問いかけで答えるハンドラ
func (h *PartnerHandler) PostAsk(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAsk"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	var req model.AskRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.AskQuestion(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrServiceUnavailable) {
			logger.Warn("AI service unavailable", slog.Any("error", err))
		} else {
			logger.Error("Error asking question in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question answered",
		slog.String("document_id", req.DocumentID.String()),
		slog.String("question_type", string(resp.QuestionType)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostValidate は任意のテキストが問いかけの境界を守っているか判定するハンドラ
func (h *PartnerHandler) PostValidate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostValidate"))
	_, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	var req model.ValidateResponseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result := h.service.ValidateResponse(r.Context(), req.Text)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetConversations は文書の会話履歴を古い順に返すハンドラ
func (h *PartnerHandler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetConversations"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, logger, "document_id")
	if !ok {
		return
	}

	resp, err := h.service.ConversationHistory(r.Context(), userID, documentID)
	if err != nil {
		logger.Warn("Error listing conversations", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Conversations listed", slog.Int("count", len(resp.Conversations)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
