package wire

import (
	"admin-panel/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShop(r chi.Router, shopHandler *adaptor.ShopHandler) {
	r.Route("/shops", func(r chi.Router) {
		r.Get("/", shopHandler.GetShops)
		r.Post("/", shopHandler.CreateShop)
		r.Get("/{id}", shopHandler.GetShopByID)
		r.Put("/{id}", shopHandler.UpdateShop)
		r.Delete("/{id}", shopHandler.DeleteShop)
	})
}
