package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/auth"
	"github.com/meshahan/pakcuisine/internal/app/catalog"
	"github.com/meshahan/pakcuisine/internal/app/checkout"
	"github.com/meshahan/pakcuisine/internal/app/content"
	"github.com/meshahan/pakcuisine/internal/app/reservations"
	"github.com/meshahan/pakcuisine/internal/app/settings"
	"github.com/meshahan/pakcuisine/internal/domain"
)

// AdminHandler backs the dashboard panels. Every route here sits behind
// RequireAdmin.
type AdminHandler struct {
	checkout     *checkout.Service
	reservations *reservations.Service
	catalog      *catalog.Service
	content      *content.Service
	settings     *settings.Service
	auth         *auth.Service
	logger       logger.Logger
}

func NewAdminHandler(
	checkout *checkout.Service,
	reservations *reservations.Service,
	catalog *catalog.Service,
	content *content.Service,
	settings *settings.Service,
	auth *auth.Service,
	logger logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		checkout:     checkout,
		reservations: reservations,
		catalog:      catalog,
		content:      content,
		settings:     settings,
		auth:         auth,
		logger:       logger,
	}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

func (h *AdminHandler) handleServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		respondError(w, "Invalid status transition", http.StatusConflict, nil)
	case strings.Contains(err.Error(), "validation failed"):
		respondError(w, err.Error(), http.StatusBadRequest, nil)
	default:
		h.logger.Error(action, "Admin operation failed", "", nil, err)
		respondError(w, "Operation failed", http.StatusInternalServerError, nil)
	}
}

// Orders.

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := domain.OrderStatus(r.URL.Query().Get("status"))

	orders, err := h.checkout.ListOrders(r.Context(), status)
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}

	resp := make([]map[string]interface{}, len(orders))
	for i, o := range orders {
		resp[i] = map[string]interface{}{
			"order_number":   o.Number,
			"customer_name":  o.CustomerName,
			"phone":          o.Phone,
			"status":         o.Status,
			"payment_method": o.PaymentMethod,
			"total_amount":   o.TotalAmount,
			"created_at":     o.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	changedBy := "admin"
	if claims := ClaimsFromContext(r.Context()); claims != nil {
		changedBy = claims.Email
	}

	order, err := h.checkout.UpdateOrderStatus(r.Context(), number, domain.OrderStatus(req.Status), changedBy)
	if err != nil {
		h.handleServiceError(w, "order_status_update_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order_number": order.Number,
		"status":       order.Status,
	})
}

// Reservations.

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	status := domain.ReservationStatus(r.URL.Query().Get("status"))

	list, err := h.reservations.List(r.Context(), status)
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}

	resp := make([]map[string]interface{}, len(list))
	for i, res := range list {
		resp[i] = reservationResponse(res)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid reservation id", http.StatusBadRequest, nil)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	res, err := h.reservations.UpdateStatus(r.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		h.handleServiceError(w, "reservation_status_update_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, reservationResponse(res))
}

func (h *AdminHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid reservation id", http.StatusBadRequest, nil)
		return
	}
	if err := h.reservations.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Menu categories.

type categoryRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func (h *AdminHandler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	c := &domain.MenuCategory{Name: req.Name, Position: req.Position}
	status := http.StatusCreated
	if id, err := pathID(r); err == nil {
		c.ID = id
		status = http.StatusOK
	}

	if err := h.catalog.SaveCategory(r.Context(), c); err != nil {
		h.handleServiceError(w, "category_save_failed", err)
		return
	}
	writeJSON(w, status, map[string]interface{}{"id": c.ID, "name": c.Name, "position": c.Position})
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid category id", http.StatusBadRequest, nil)
		return
	}
	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Menu items. Admin sees unavailable items too.

func (h *AdminHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.MenuItems(r.Context(), 0, false)
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, menuItemsResponse(items))
}

type menuItemRequest struct {
	CategoryID   int     `json:"category_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsAvailable  bool    `json:"is_available"`
}

func (h *AdminHandler) SaveMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	m := &domain.MenuItem{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsVegetarian: req.IsVegetarian,
		IsAvailable:  req.IsAvailable,
	}
	status := http.StatusCreated
	if id, err := pathID(r); err == nil {
		m.ID = id
		status = http.StatusOK
	}

	if err := h.catalog.SaveMenuItem(r.Context(), m); err != nil {
		h.handleServiceError(w, "menu_item_save_failed", err)
		return
	}
	writeJSON(w, status, menuItemResponse(m))
}

func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid item id", http.StatusBadRequest, nil)
		return
	}
	if err := h.catalog.DeleteMenuItem(r.Context(), id); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Deals. Admin sees expired and future deals too.

func (h *AdminHandler) ListDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.catalog.AllDeals(r.Context())
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, dealsResponse(deals))
}

type dealRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	OldPrice    float64    `json:"old_price"`
	ImageURL    string     `json:"image_url"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

func (h *AdminHandler) SaveDeal(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	d := &domain.Deal{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		ImageURL:    req.ImageURL,
	}
	if req.StartsAt != nil {
		d.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		d.EndsAt = *req.EndsAt
	}
	status := http.StatusCreated
	if id, err := pathID(r); err == nil {
		d.ID = id
		status = http.StatusOK
	}

	if err := h.catalog.SaveDeal(r.Context(), d); err != nil {
		h.handleServiceError(w, "deal_save_failed", err)
		return
	}
	writeJSON(w, status, dealResponse(d))
}

func (h *AdminHandler) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid deal id", http.StatusBadRequest, nil)
		return
	}
	if err := h.catalog.DeleteDeal(r.Context(), id); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Blog.

func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.AllPosts(r.Context())
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}

	resp := make([]map[string]interface{}, len(posts))
	for i, p := range posts {
		resp[i] = map[string]interface{}{
			"id":           p.ID,
			"slug":         p.Slug,
			"title":        p.Title,
			"published":    p.Published,
			"published_at": p.PublishedAt,
			"updated_at":   p.UpdatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type blogPostRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Body      string `json:"body"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}

func (h *AdminHandler) SavePost(w http.ResponseWriter, r *http.Request) {
	var req blogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	p := &domain.BlogPost{
		Slug:      req.Slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
	if p.Published {
		now := time.Now()
		p.PublishedAt = &now
	}
	status := http.StatusCreated
	if id, err := pathID(r); err == nil {
		p.ID = id
		status = http.StatusOK
	}

	if err := h.content.SavePost(r.Context(), p); err != nil {
		h.handleServiceError(w, "post_save_failed", err)
		return
	}
	writeJSON(w, status, map[string]interface{}{"id": p.ID, "slug": p.Slug})
}

func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest, nil)
		return
	}
	if err := h.content.DeletePost(r.Context(), id); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Gallery.

type galleryImageRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

func (h *AdminHandler) SaveGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req galleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	g := &domain.GalleryImage{Title: req.Title, URL: req.URL, Position: req.Position}
	status := http.StatusCreated
	if id, err := pathID(r); err == nil {
		g.ID = id
		status = http.StatusOK
	}

	if err := h.content.SaveGalleryImage(r.Context(), g); err != nil {
		h.handleServiceError(w, "gallery_save_failed", err)
		return
	}
	writeJSON(w, status, map[string]interface{}{"id": g.ID, "url": g.URL})
}

func (h *AdminHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid image id", http.StatusBadRequest, nil)
		return
	}
	if err := h.content.DeleteGalleryImage(r.Context(), id); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Testimonials. The admin panel is where approval happens.

func (h *AdminHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.content.AllTestimonials(r.Context())
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, testimonialsResponse(testimonials))
}

type testimonialAdminRequest struct {
	Author   string `json:"author"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Approved bool   `json:"approved"`
}

func (h *AdminHandler) SaveTestimonial(w http.ResponseWriter, r *http.Request) {
	var req testimonialAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	t := &domain.Testimonial{
		Author:   req.Author,
		Quote:    req.Quote,
		Rating:   req.Rating,
		Approved: req.Approved,
	}
	status := http.StatusCreated
	if id, err := pathID(r); err == nil {
		t.ID = id
		status = http.StatusOK
	}

	if err := h.content.SaveTestimonial(r.Context(), t); err != nil {
		h.handleServiceError(w, "testimonial_save_failed", err)
		return
	}
	writeJSON(w, status, map[string]interface{}{"id": t.ID, "approved": t.Approved})
}

func (h *AdminHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, "Invalid testimonial id", http.StatusBadRequest, nil)
		return
	}
	if err := h.content.DeleteTestimonial(r.Context(), id); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Subscribers and contact submissions are read-only panels.

func (h *AdminHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.content.Subscribers(r.Context())
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}

	resp := make([]map[string]interface{}, len(subscribers))
	for i, s := range subscribers {
		resp[i] = map[string]interface{}{
			"id":         s.ID,
			"email":      s.Email,
			"created_at": s.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.content.ContactSubmissions(r.Context())
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}

	resp := make([]map[string]interface{}, len(submissions))
	for i, c := range submissions {
		resp[i] = map[string]interface{}{
			"id":         c.ID,
			"name":       c.Name,
			"email":      c.Email,
			"subject":    c.Subject,
			"message":    c.Message,
			"created_at": c.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Users. Password hashes never appear in responses.

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}

	resp := make([]map[string]interface{}, len(users))
	for i, u := range users {
		resp[i] = map[string]interface{}{
			"id":         u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       u.Role,
			"created_at": u.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type userRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	user, err := h.auth.CreateUser(r.Context(), req.Email, req.Name, req.Password, domain.Role(req.Role))
	if err != nil {
		h.handleServiceError(w, "user_create_failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		h.handleServiceError(w, "db_delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Settings.

func (h *AdminHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	all, err := h.settings.All(r.Context())
	if err != nil {
		h.handleServiceError(w, "db_query_failed", err)
		return
	}

	resp := make([]map[string]interface{}, len(all))
	for i, s := range all {
		resp[i] = map[string]interface{}{
			"key":        s.Key,
			"value":      s.Value,
			"updated_at": s.UpdatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type settingRequest struct {
	Value string `json:"value"`
}

func (h *AdminHandler) PutSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req settingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := h.settings.Set(r.Context(), key, req.Value); err != nil {
		h.handleServiceError(w, "setting_save_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": req.Value})
}
