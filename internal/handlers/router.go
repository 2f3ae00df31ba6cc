// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers は /api/v1 配下のハンドラ一式
type Handlers struct {
	Reflection *ReflectionHandler
	Partner    *PartnerHandler
	Document   *DocumentHandler
	Analytics  *AnalyticsHandler
}

// RegisterRoutes は認証済みルートを登録します。auth はユーザーIDをコンテキストに入れるミドルウェア。
func RegisterRoutes(r chi.Router, h Handlers, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Route("/ai", func(r chi.Router) {
				r.Post("/reflect", h.Reflection.PostReflection)
				r.Get("/level/{document_id}", h.Reflection.GetAdaptiveLevel)
				r.Post("/ask", h.Partner.PostAsk)
				r.Post("/validate", h.Partner.PostValidate)
				r.Get("/conversations/{document_id}", h.Partner.GetConversations)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.Document.PostDocument)
				r.Get("/", h.Document.GetDocuments)
				r.Get("/{document_id}", h.Document.GetDocument)
				r.Patch("/{document_id}", h.Document.PatchDocument)
				r.Put("/{document_id}", h.Document.PatchDocument)
				r.Delete("/{document_id}", h.Document.DeleteDocument)
				r.Get("/{document_id}/versions", h.Document.GetVersions)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/reflection-quality", h.Analytics.GetReflectionQuality)
				r.Get("/documents/{document_id}", h.Analytics.GetDocumentAnalytics)
				r.Get("/learning-metrics", h.Analytics.GetLearningMetrics)
				r.Get("/writing-progress", h.Analytics.GetWritingProgress)
				r.Get("/ai-interactions", h.Analytics.GetAIInteractions)
				r.Get("/learning-insights", h.Analytics.GetLearningInsights)
			})
		})
	})
}
