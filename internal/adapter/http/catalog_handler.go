package http

import (
	"net/http"
	"strconv"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/catalog"
	"github.com/meshahan/pakcuisine/internal/domain"
)

// CatalogHandler serves the public menu and deals pages.
type CatalogHandler struct {
	service *catalog.Service
	logger  logger.Logger
}

func NewCatalogHandler(service *catalog.Service, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("db_query_failed", "Failed to list categories", "", nil, err)
		respondError(w, "Failed to load menu", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse(categories))
}

// ListMenuItems returns available items, optionally filtered by category.
func (h *CatalogHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	categoryID := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, "Invalid category id", http.StatusBadRequest, nil)
			return
		}
		categoryID = id
	}

	items, err := h.service.MenuItems(r.Context(), categoryID, true)
	if err != nil {
		h.logger.Error("db_query_failed", "Failed to list menu items", "", nil, err)
		respondError(w, "Failed to load menu", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, menuItemsResponse(items))
}

func (h *CatalogHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, "Invalid item id", http.StatusBadRequest, nil)
		return
	}

	item, err := h.service.MenuItem(r.Context(), id)
	if err != nil {
		respondError(w, "Menu item not found", http.StatusNotFound, nil)
		return
	}
	writeJSON(w, http.StatusOK, menuItemResponse(item))
}

func (h *CatalogHandler) ListActiveDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.service.ActiveDeals(r.Context())
	if err != nil {
		h.logger.Error("db_query_failed", "Failed to list deals", "", nil, err)
		respondError(w, "Failed to load deals", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, dealsResponse(deals))
}

// Response shaping keeps the wire format stable even if domain fields move.

func categoriesResponse(categories []*domain.MenuCategory) []map[string]interface{} {
	resp := make([]map[string]interface{}, len(categories))
	for i, c := range categories {
		resp[i] = map[string]interface{}{
			"id":       c.ID,
			"name":     c.Name,
			"position": c.Position,
		}
	}
	return resp
}

func menuItemResponse(m *domain.MenuItem) map[string]interface{} {
	return map[string]interface{}{
		"id":            m.ID,
		"category_id":   m.CategoryID,
		"name":          m.Name,
		"description":   m.Description,
		"price":         m.Price,
		"image_url":     m.ImageURL,
		"is_vegetarian": m.IsVegetarian,
		"is_available":  m.IsAvailable,
	}
}

func menuItemsResponse(items []*domain.MenuItem) []map[string]interface{} {
	resp := make([]map[string]interface{}, len(items))
	for i, m := range items {
		resp[i] = menuItemResponse(m)
	}
	return resp
}

func dealResponse(d *domain.Deal) map[string]interface{} {
	resp := map[string]interface{}{
		"id":          d.ID,
		"title":       d.Title,
		"description": d.Description,
		"price":       d.Price,
		"image_url":   d.ImageURL,
	}
	if d.OldPrice > 0 {
		resp["old_price"] = d.OldPrice
	}
	if !d.StartsAt.IsZero() {
		resp["starts_at"] = d.StartsAt
	}
	if !d.EndsAt.IsZero() {
		resp["ends_at"] = d.EndsAt
	}
	return resp
}

func dealsResponse(deals []*domain.Deal) []map[string]interface{} {
	resp := make([]map[string]interface{}, len(deals))
	for i, d := range deals {
		resp[i] = dealResponse(d)
	}
	return resp
}
