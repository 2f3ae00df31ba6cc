// internal/handlers/document_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/service"
	"scribe_tree_writer/internal/webutil"
)

type DocumentHandler struct {
	service service.DocumentService
	logger  *slog.Logger
}

func NewDocumentHandler(s service.DocumentService, logger *slog.Logger) *DocumentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentHandler{
		service: s,
		logger:  logger,
	}
}

// PostDocument は新しい文書を作成するハンドラ
func (h *DocumentHandler) PostDocument(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostDocument"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateDocumentRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	doc, err := h.service.CreateDocument(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating document in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Document created successfully", slog.String("document_id", doc.DocumentID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, doc, logger)
}

// GetDocuments は自分の文書を更新の新しい順に返すハンドラ
func (h *DocumentHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDocuments"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	docs, err := h.service.ListDocuments(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing documents in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if docs == nil {
		docs = []*model.Document{}
	}
	logger.Info("Documents listed successfully", slog.Int("count", len(docs)))
	webutil.RespondWithJSON(w, http.StatusOK, docs, logger)
}

func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDocument"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, logger, "document_id")
	if !ok {
		return
	}

	doc, err := h.service.GetDocument(r.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Document not found", slog.String("document_id", documentID.String()))
		} else {
			logger.Error("Error getting document from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}

// PatchDocument はタイトルと本文を部分更新するハンドラ。本文が変わると新しいバージョンができる。
func (h *DocumentHandler) PatchDocument(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchDocument"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, logger, "document_id")
	if !ok {
		return
	}

	var req model.UpdateDocumentRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	doc, err := h.service.UpdateDocument(r.Context(), userID, documentID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			logger.Warn("Document update rejected", slog.Any("error", err))
		} else {
			logger.Error("Error updating document in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Document updated successfully", slog.String("document_id", documentID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}

func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteDocument"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, logger, "document_id")
	if !ok {
		return
	}

	if err := h.service.DeleteDocument(r.Context(), userID, documentID); err != nil {
		logger.Warn("Error deleting document", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Document deleted successfully", slog.String("document_id", documentID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetVersions は文書のバージョン履歴を新しい順に返すハンドラ
func (h *DocumentHandler) GetVersions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVersions"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, logger, "document_id")
	if !ok {
		return
	}

	versions, err := h.service.ListVersions(r.Context(), userID, documentID)
	if err != nil {
		logger.Warn("Error listing versions", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if versions == nil {
		versions = []*model.DocumentVersion{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, versions, logger)
}
