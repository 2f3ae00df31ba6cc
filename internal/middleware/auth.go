package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub クレームのユーザーIDをコンテキストに格納します。
func JWTAuthMiddleware(cfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required", "", model.ErrUnauthorized))
				return
			}

			// "Bearer {token}" の形式
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Invalid Authorization header format", "", model.ErrUnauthorized))
				return
			}

			// 署名と有効期限(exp)を検証
			token, err := jwt.Parse(headerParts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errUnexpectedSigningMethod
				}
				return []byte(cfg.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Invalid or expired token", "", model.ErrUnauthorized))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token does not identify a user", "", model.ErrUnauthorized))
				return
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token does not identify a user", "", model.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID は認証済みユーザーIDをコンテキストに格納します。
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	// 以降のログにユーザーIDを載せる
	return context.WithValue(ctx, logCtxKey{}, GetLogger(ctx).With("user_id", userID.String()))
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "Authentication required", "", model.ErrUnauthorized)
	}
	return value, nil
}
