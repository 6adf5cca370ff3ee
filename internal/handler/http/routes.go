package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/profile", h.profile)

		r.Route("/assets", func(r chi.Router) {
			r.Post("/", h.createAsset)
			r.Get("/", h.listAssets)
			r.Get("/{id}", h.getAsset)
			r.Patch("/{id}", h.updateAsset)
			r.Delete("/{id}", h.deleteAsset)
		})
	})

	return router
}
