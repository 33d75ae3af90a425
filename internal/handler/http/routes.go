package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/version/", h.getServerVersion)
		r.Handle("/metrics", promhttp.Handler())
	})

	// routes scoped to the authenticated gym owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/members", func(r chi.Router) {
			r.Get("/", h.listMembers)
			r.Post("/", h.createMember)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getMember)
				r.Patch("/", h.updateMember)
				r.Delete("/", h.deleteMember)

				r.Get("/notes", h.listNotes)
				r.Post("/notes", h.addNote)
				r.Delete("/notes/{noteID}", h.deleteNote)

				r.Get("/activities", h.listActivities)
				r.Post("/activities", h.logActivity)
			})
		})

		r.Route("/api/dashboard", func(r chi.Router) {
			r.Get("/config", h.getDashboardConfig)
			r.Put("/config", h.saveDashboardConfig)
			r.Get("/metrics", h.getGymMetrics)
		})

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.createProduct)
			r.Patch("/{id}", h.updateProduct)
		})

		r.Route("/api/stripe", func(r chi.Router) {
			r.Get("/account-info", h.getStripeAccountInfo)
			r.Post("/connect-account", h.createConnectAccount)
			r.Get("/session", h.getStripeSession)
			r.Post("/session/reinitialize", h.reinitializeStripeSession)
		})
	})

	return router
}
