package wire

import (
	"admin-panel/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEvent(r chi.Router, eventHandler *adaptor.EventHandler) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.GetEvents) // newest start date first
		r.Post("/", eventHandler.CreateEvent)
		r.Get("/{id}", eventHandler.GetEventByID)
		r.Put("/{id}", eventHandler.UpdateEvent)
		r.Delete("/{id}", eventHandler.DeleteEvent)
	})
}
