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
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/ping", h.ping)
	})

	// routes behind token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users/current", func(r chi.Router) {
			r.Get("/", h.getCurrentUser)
			r.Patch("/", h.updateCurrentUser)
			r.Delete("/", h.logout)
		})

		r.Route("/api/contacts", func(r chi.Router) {
			r.Post("/", h.createContact)
			r.Get("/", h.searchContacts)

			r.Route("/{contactID}", func(r chi.Router) {
				r.Get("/", h.getContact)
				r.Put("/", h.updateContact)
				r.Delete("/", h.deleteContact)

				r.Route("/addresses", func(r chi.Router) {
					r.Post("/", h.createAddress)
					r.Get("/", h.listAddresses)
					r.Get("/{addressID}", h.getAddress)
					r.Put("/{addressID}", h.updateAddress)
					r.Delete("/{addressID}", h.deleteAddress)
				})
			})
		})
	})

	return router
}
