package wire

import (
	"admin-panel/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.GetUsers)    // GET /api/users?page=1&limit=10&search=&status=
		r.Post("/", userHandler.CreateUser) // POST /api/users
		r.Get("/{id}", userHandler.GetUserByID)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
		r.Post("/{id}/toggle-status", userHandler.ToggleStatus)
	})
}
