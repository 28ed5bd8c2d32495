package wire

import (
	"admin-panel/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireServices(r chi.Router, servicesHandler *adaptor.ServicesHandler) {
	r.Route("/services", func(r chi.Router) {
		r.Get("/", servicesHandler.GetServices) // also accepts ?category=
		r.Post("/", servicesHandler.CreateService)
		r.Get("/{id}", servicesHandler.GetServiceByID)
		r.Put("/{id}", servicesHandler.UpdateService)
		r.Delete("/{id}", servicesHandler.DeleteService)
	})
}
