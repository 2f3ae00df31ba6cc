// internal/handlers/analytics_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/service"
	"scribe_tree_writer/internal/webutil"
)

// クエリの日付形式
const dateLayout = "2006-01-02"

type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  *slog.Logger
}

func NewAnalyticsHandler(s service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		service: s,
		logger:  logger,
	}
}

// GetReflectionQuality は ?start_date=&end_date=&limit=&offset= で振り返りスコアの推移を返すハンドラ
func (h *AnalyticsHandler) GetReflectionQuality(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReflectionQuality"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	q, err := parseReflectionQualityQuery(r)
	if err != nil {
		logger.Warn("Invalid analytics query", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ReflectionQuality(r.Context(), userID, q)
	if err != nil {
		logger.Warn("Error getting reflection quality", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *AnalyticsHandler) GetDocumentAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDocumentAnalytics"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	documentID, ok := uuidParam(w, r, logger, "document_id")
	if !ok {
		return
	}

	resp, err := h.service.DocumentAnalytics(r.Context(), userID, documentID)
	if err != nil {
		logger.Warn("Error getting document analytics", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *AnalyticsHandler) GetLearningMetrics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLearningMetrics"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.LearningMetrics(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting learning metrics", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetWritingProgress は ?start_date=&end_date= の期間に作成した文書の推移を返すハンドラ
func (h *AnalyticsHandler) GetWritingProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWritingProgress"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	dr, ok := dateRangeParam(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.WritingProgress(r.Context(), userID, dr)
	if err != nil {
		logger.Warn("Error getting writing progress", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *AnalyticsHandler) GetAIInteractions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAIInteractions"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	dr, ok := dateRangeParam(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.AIInteractions(r.Context(), userID, dr)
	if err != nil {
		logger.Warn("Error getting AI interaction analytics", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *AnalyticsHandler) GetLearningInsights(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLearningInsights"))
	userID, logger, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	dr, ok := dateRangeParam(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.LearningInsights(r.Context(), userID, dr)
	if err != nil {
		logger.Warn("Error getting learning insights", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func dateRangeParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (model.DateRange, bool) {
	dr, err := parseDateRange(r.URL.Query())
	if err != nil {
		logger.Warn("Invalid analytics query", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return dr, false
	}
	return dr, true
}

// parseDateRange は日付を UTC で解釈し、end_date はその日の終わりまでを含める。
func parseDateRange(values url.Values) (model.DateRange, error) {
	var dr model.DateRange
	if raw := values.Get("start_date"); raw != "" {
		start, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return dr, model.NewAppError("VALIDATION_ERROR", "start_date must be YYYY-MM-DD", "start_date", model.ErrInvalidInput)
		}
		dr.StartDate = &start
	}
	if raw := values.Get("end_date"); raw != "" {
		end, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return dr, model.NewAppError("VALIDATION_ERROR", "end_date must be YYYY-MM-DD", "end_date", model.ErrInvalidInput)
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		dr.EndDate = &end
	}
	return dr, nil
}

func parseReflectionQualityQuery(r *http.Request) (model.ReflectionQualityQuery, error) {
	var q model.ReflectionQualityQuery
	values := r.URL.Query()

	dr, err := parseDateRange(values)
	if err != nil {
		return q, err
	}
	q.StartDate, q.EndDate = dr.StartDate, dr.EndDate

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return q, model.NewAppError("VALIDATION_ERROR", "limit must be between 1 and 100", "limit", model.ErrInvalidInput)
		}
		q.Limit = limit
	}
	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return q, model.NewAppError("VALIDATION_ERROR", "offset must be an integer", "offset", model.ErrInvalidInput)
		}
		q.Offset = offset
	}
	return q, nil
}
