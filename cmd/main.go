// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/handlers"
	"scribe_tree_writer/internal/llm"
	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/repository"
	"scribe_tree_writer/internal/service"
	"scribe_tree_writer/internal/socratic"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// cmd/ から実行した場合は ../configs、ルートからなら ./configs を読む
	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 文章生成サービス。キーが無ければ nil のまま定型応答で動く
	generator, err := llm.NewGenerator(context.Background(), config.Cfg.AI, logger)
	if err != nil {
		slog.Error("Error initializing AI generator", slog.Any("error", err))
		os.Exit(1)
	}
	pipeline := &socratic.Pipeline{
		Generator:      generator,
		StaticFallback: config.Cfg.AI.StaticFallback,
		Timeout:        config.Cfg.AI.Timeout,
		Logger:         logger,
	}

	// Dependency Injection
	docRepo := repository.NewGormDocumentRepository()
	reflectionRepo := repository.NewGormReflectionRepository()
	interactionRepo := repository.NewGormInteractionRepository()

	appCfg := config.Cfg.App
	documentService := service.NewDocumentService(db, docRepo)
	reflectionService := service.NewReflectionService(db, docRepo, reflectionRepo, interactionRepo, pipeline, appCfg)
	partnerService := service.NewPartnerService(db, docRepo, reflectionRepo, interactionRepo, pipeline, nil, appCfg)
	analyticsService := service.NewAnalyticsService(db, docRepo, reflectionRepo, interactionRepo)

	h := handlers.Handlers{
		Reflection: handlers.NewReflectionHandler(reflectionService, logger),
		Partner:    handlers.NewPartnerHandler(partnerService, logger),
		Document:   handlers.NewDocumentHandler(documentService, logger),
		Analytics:  handlers.NewAnalyticsHandler(analyticsService, logger),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	// 生成の全段階を待てるだけの余裕を持たせる
	r.Use(chimiddleware.Timeout(requestTimeout(config.Cfg.AI.Timeout)))

	var auth func(http.Handler) http.Handler
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		auth = middleware.JWTAuthMiddleware(config.Cfg.JWT)
	} else {
		slog.Warn("Authentication disabled, trusting X-User-ID header")
		auth = middleware.DevUserContextMiddleware
	}
	handlers.RegisterRoutes(r, h, auth)

	r.Get("/health", healthHandler(db))

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: requestTimeout(config.Cfg.AI.Timeout) + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定と APP_ENV からロガーを組み立てる。dev では tint で色付き出力。
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	switch {
	case strings.ToLower(appEnv) == "dev":
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	case strings.ToLower(config.Cfg.Log.Format) == "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
		tempLogger.Info("Using text log handler", slog.String("APP_ENV", appEnv))
	default:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel, AddSource: true})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	log.Println("Log Config Loaded...")
	return slog.New(handler)
}

// requestTimeout は文脈付き・文脈なしの2段階ぶんに余裕を足した時間
func requestTimeout(tierTimeout time.Duration) time.Duration {
	if tierTimeout <= 0 {
		return 60 * time.Second
	}
	return 2*tierTimeout + 10*time.Second
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
