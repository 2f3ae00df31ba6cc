package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// RequestIDHeader はレスポンスに返すリクエストIDのヘッダー名
const RequestIDHeader = "X-Request-ID"

// maxLoggedBody はデバッグログに載せる本文の最大バイト数。
// 振り返りや下書きの全文がログに残らないよう切り詰める。
const maxLoggedBody = 512

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名 (小文字)
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-user-id":     true,
}

// quietPaths は完了ログを Debug に落とすパス
var quietPaths = map[string]bool{
	"/health": true,
}

// responseLogger はステータスコードと書き込んだ本文を記録する
type responseLogger struct {
	http.ResponseWriter
	statusCode int
	written    int
	body       *bytes.Buffer
}

func newResponseLogger(w http.ResponseWriter, captureBody bool) *responseLogger {
	rl := &responseLogger{ResponseWriter: w, statusCode: http.StatusOK}
	if captureBody {
		rl.body = new(bytes.Buffer)
	}
	return rl
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	if rl.body != nil && rl.body.Len() < maxLoggedBody {
		rl.body.Write(b)
	}
	n, err := rl.ResponseWriter.Write(b)
	rl.written += n
	return n, err
}

// LoggingMiddleware はリクエストごとのロガーをコンテキストに格納し、開始と完了を記録します。
// Debug レベルが有効なときだけヘッダーと本文 (先頭のみ) を出力します。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			reqID := middleware.GetReqID(r.Context())
			if reqID != "" {
				w.Header().Set(RequestIDHeader, reqID)
			}
			requestLogger := logger.With("req_id", reqID)
			ctx := context.WithValue(r.Context(), logCtxKey{}, requestLogger)
			r = r.WithContext(ctx)

			quiet := quietPaths[r.URL.Path]
			startLevel := slog.LevelInfo
			if quiet {
				startLevel = slog.LevelDebug
			}
			requestLogger.Log(ctx, startLevel, "Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(ctx, slog.LevelDebug)
			var reqBodyBytes []byte
			if debug && r.Body != nil {
				reqBodyBytes, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
			}

			rl := newResponseLogger(w, debug)
			next.ServeHTTP(rl, r)

			latency := time.Since(startTime)
			statusCode := rl.statusCode

			logLevel := slog.LevelInfo
			switch {
			case statusCode >= 500:
				logLevel = slog.LevelError
			case statusCode >= 400:
				logLevel = slog.LevelWarn
			case quiet:
				logLevel = slog.LevelDebug
			}

			requestLogger.Log(ctx, logLevel, "Request completed",
				"status", statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.written,
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", truncateBody(reqBodyBytes),
				)
				requestLogger.Debug("Response detail",
					"status", statusCode,
					"headers", formatHeaders(rl.Header()),
					"body", truncateBody(rl.body.Bytes()),
				)
			}
		})
	}
}

// GetLogger はコンテキストから slog.Logger を取得します。
// 格納されていなければ slog.Default() を返します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders はヘッダーをログ用に整形し、機密ヘッダーをマスクする
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}

func truncateBody(b []byte) string {
	if len(b) <= maxLoggedBody {
		return string(b)
	}
	return string(b[:maxLoggedBody]) + "...(truncated)"
}
