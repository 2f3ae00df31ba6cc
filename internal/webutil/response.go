// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"scribe_tree_writer/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// AppError 以外のエラーは詳細をログに残し、クライアントには汎用メッセージだけ返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{Error: defaultErrorDetail(statusCode)}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// defaultErrorDetail は sentinel エラーだけが返ってきたときの応答内容
func defaultErrorDetail(statusCode int) model.ErrorDetail {
	switch statusCode {
	case http.StatusNotFound:
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "Resource not found"}
	case http.StatusBadRequest:
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: "Invalid input"}
	case http.StatusConflict:
		return model.ErrorDetail{Code: "CONFLICT", Message: "Resource conflict"}
	case http.StatusUnauthorized:
		return model.ErrorDetail{Code: "UNAUTHORIZED", Message: "Authentication required"}
	case http.StatusForbidden:
		return model.ErrorDetail{Code: "FORBIDDEN", Message: "Access denied"}
	case http.StatusServiceUnavailable:
		return model.ErrorDetail{Code: "AI_SERVICE_UNAVAILABLE", Message: "AI service is temporarily unavailable. Please try again later."}
	default:
		return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "An internal server error occurred"}
	}
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger != nil {
			logger.Error("Error marshaling JSON response", slog.Any("error", err))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse は全てのバリデーションエラーを1つの AppError にまとめます。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}

// ValidateStruct は validate タグで検証し、最初の違反を AppError にして返します。
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("webutil.ValidateStruct: %w", err)
	}
	first := validationErrors[0]
	return model.NewAppError("VALIDATION_ERROR", first.Translate(Trans), first.Field(), model.ErrInvalidInput)
}
