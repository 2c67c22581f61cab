package router

import (
	"net/http"

	"printshop/internal/handler"
	"printshop/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	stockHandler *handler.StockHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: Recovery -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customerHandler.Create)
			r.Get("/", customerHandler.List)
			r.Get("/{phone}", customerHandler.GetByPhone)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.Create)
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.GetByID)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
			r.Post("/{id}/file", productHandler.UploadFile)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.Create)
			r.Get("/", orderHandler.List)
			r.Get("/{id}", orderHandler.GetByID)
			r.Delete("/{id}", orderHandler.Delete)
			r.Patch("/{id}/status", orderHandler.UpdateStatus)
			r.Post("/{id}/advance", orderHandler.Advance)
			r.Get("/{id}/filament-check", orderHandler.FilamentCheck)
			r.Post("/{id}/notify", orderHandler.Notify)
			r.Get("/{id}/messages", orderHandler.ListMessages)
			r.Get("/{id}/report", orderHandler.Report)
			r.Get("/{id}/report.svg", orderHandler.ReportSVG)
		})

		r.Patch("/prints/{id}/status", orderHandler.UpdatePrintStatus)

		r.Route("/filaments", func(r chi.Router) {
			r.Post("/", stockHandler.Create)
			r.Get("/", stockHandler.List)
			r.Get("/low", stockHandler.LowStock)
			r.Get("/summary", stockHandler.Summary)
			r.Get("/groups", stockHandler.Groups)
			r.Get("/{id}", stockHandler.GetByID)
			r.Put("/{id}", stockHandler.Update)
			r.Delete("/{id}", stockHandler.Delete)
		})
	})

	return r
}
