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

	// inline validation: contract travels with the request
	router.Post("/api/validate", h.validate)

	// named contract management and stored-contract validation
	router.Route("/api/contracts", func(r chi.Router) {
		r.Post("/", h.registerContract)
		r.Get("/", h.listContracts)
		r.Get("/{name}", h.getContract)
		r.Delete("/{name}", h.deleteContract)
		r.Post("/{name}/validate", h.validateStored)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
