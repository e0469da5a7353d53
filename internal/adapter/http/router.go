package http

import (
	"net/http"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Cart         *CartHandler
	Catalog      *CatalogHandler
	Checkout     *CheckoutHandler
	Chatbot      *ChatbotHandler
	Reservations *ReservationHandler
	Content      *ContentHandler
	Auth         *AuthHandler
	Functions    *FunctionsHandler
	Admin        *AdminHandler
}

// NewRouter wires the public and admin APIs. Admin routes sit behind
// RequireAdmin; everything runs through logging and panic recovery.
func NewRouter(h Handlers, auth interfaces.AuthService, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public storefront.
	mux.HandleFunc("GET /api/menu/categories", h.Catalog.ListCategories)
	mux.HandleFunc("GET /api/menu/items", h.Catalog.ListMenuItems)
	mux.HandleFunc("GET /api/menu/items/{id}", h.Catalog.GetMenuItem)
	mux.HandleFunc("GET /api/deals", h.Catalog.ListActiveDeals)

	mux.HandleFunc("POST /api/carts", h.Cart.CreateCart)
	mux.HandleFunc("GET /api/carts/{id}", h.Cart.GetCart)
	mux.HandleFunc("POST /api/carts/{id}/items", h.Cart.AddItem)
	mux.HandleFunc("PATCH /api/carts/{id}/items/{itemID}", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/carts/{id}/items/{itemID}", h.Cart.RemoveItem)
	mux.HandleFunc("DELETE /api/carts/{id}", h.Cart.ClearCart)

	mux.HandleFunc("POST /api/checkout", h.Checkout.PlaceOrder)
	mux.HandleFunc("GET /api/orders/{number}", h.Checkout.TrackOrder)
	mux.HandleFunc("GET /api/orders/{number}/history", h.Checkout.OrderHistory)

	mux.HandleFunc("POST /api/chatbot", h.Chatbot.Respond)
	mux.HandleFunc("POST /api/reservations", h.Reservations.Request)

	mux.HandleFunc("GET /api/blog", h.Content.ListPosts)
	mux.HandleFunc("GET /api/blog/{slug}", h.Content.GetPost)
	mux.HandleFunc("GET /api/gallery", h.Content.ListGallery)
	mux.HandleFunc("GET /api/testimonials", h.Content.ListTestimonials)
	mux.HandleFunc("POST /api/testimonials", h.Content.SubmitTestimonial)
	mux.HandleFunc("POST /api/subscribe", h.Content.Subscribe)
	mux.HandleFunc("POST /api/contact", h.Content.SubmitContact)
	mux.HandleFunc("GET /api/settings", h.Content.SiteSettings)

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// Serverless-style endpoints the payment widget calls.
	mux.HandleFunc("POST /api/functions/create-payment-intent", h.Functions.CreatePaymentIntent)
	mux.HandleFunc("POST /api/functions/send-email", h.Functions.SendEmail)

	// Admin dashboard.
	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/admin/orders", h.Admin.ListOrders)
	admin.HandleFunc("PATCH /api/admin/orders/{number}/status", h.Admin.UpdateOrderStatus)

	admin.HandleFunc("GET /api/admin/reservations", h.Admin.ListReservations)
	admin.HandleFunc("PATCH /api/admin/reservations/{id}/status", h.Admin.UpdateReservationStatus)
	admin.HandleFunc("DELETE /api/admin/reservations/{id}", h.Admin.DeleteReservation)

	admin.HandleFunc("POST /api/admin/menu/categories", h.Admin.SaveCategory)
	admin.HandleFunc("PUT /api/admin/menu/categories/{id}", h.Admin.SaveCategory)
	admin.HandleFunc("DELETE /api/admin/menu/categories/{id}", h.Admin.DeleteCategory)

	admin.HandleFunc("GET /api/admin/menu/items", h.Admin.ListMenuItems)
	admin.HandleFunc("POST /api/admin/menu/items", h.Admin.SaveMenuItem)
	admin.HandleFunc("PUT /api/admin/menu/items/{id}", h.Admin.SaveMenuItem)
	admin.HandleFunc("DELETE /api/admin/menu/items/{id}", h.Admin.DeleteMenuItem)

	admin.HandleFunc("GET /api/admin/deals", h.Admin.ListDeals)
	admin.HandleFunc("POST /api/admin/deals", h.Admin.SaveDeal)
	admin.HandleFunc("PUT /api/admin/deals/{id}", h.Admin.SaveDeal)
	admin.HandleFunc("DELETE /api/admin/deals/{id}", h.Admin.DeleteDeal)

	admin.HandleFunc("GET /api/admin/blog", h.Admin.ListPosts)
	admin.HandleFunc("POST /api/admin/blog", h.Admin.SavePost)
	admin.HandleFunc("PUT /api/admin/blog/{id}", h.Admin.SavePost)
	admin.HandleFunc("DELETE /api/admin/blog/{id}", h.Admin.DeletePost)

	admin.HandleFunc("POST /api/admin/gallery", h.Admin.SaveGalleryImage)
	admin.HandleFunc("PUT /api/admin/gallery/{id}", h.Admin.SaveGalleryImage)
	admin.HandleFunc("DELETE /api/admin/gallery/{id}", h.Admin.DeleteGalleryImage)

	admin.HandleFunc("GET /api/admin/testimonials", h.Admin.ListTestimonials)
	admin.HandleFunc("POST /api/admin/testimonials", h.Admin.SaveTestimonial)
	admin.HandleFunc("PUT /api/admin/testimonials/{id}", h.Admin.SaveTestimonial)
	admin.HandleFunc("DELETE /api/admin/testimonials/{id}", h.Admin.DeleteTestimonial)

	admin.HandleFunc("GET /api/admin/subscribers", h.Admin.ListSubscribers)
	admin.HandleFunc("GET /api/admin/contact", h.Admin.ListContactSubmissions)

	admin.HandleFunc("GET /api/admin/users", h.Admin.ListUsers)
	admin.HandleFunc("POST /api/admin/users", h.Admin.CreateUser)
	admin.HandleFunc("DELETE /api/admin/users/{id}", h.Admin.DeleteUser)

	admin.HandleFunc("GET /api/admin/settings", h.Admin.ListSettings)
	admin.HandleFunc("PUT /api/admin/settings/{key}", h.Admin.PutSetting)

	mux.Handle("/api/admin/", RequireAdmin(auth)(admin))

	var handler http.Handler = mux
	handler = RecoveryMiddleware(log)(handler)
	handler = LoggingMiddleware(log)(handler)
	return handler
}
