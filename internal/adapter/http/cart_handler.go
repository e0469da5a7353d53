package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/catalog"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// CartHandler exposes the cart API. Prices, names and images are resolved
// server-side from the menu so the client can only choose item and quantity.
type CartHandler struct {
	carts   interfaces.CartService
	catalog *catalog.Service
	logger  logger.Logger
}

func NewCartHandler(carts interfaces.CartService, catalog *catalog.Service, logger logger.Logger) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog, logger: logger}
}

type cartView struct {
	CartID    string            `json:"cart_id"`
	Lines     []domain.CartLine `json:"lines"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

func newCartView(cartID string, cart *domain.Cart) cartView {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartView{
		CartID:    cartID,
		Lines:     lines,
		Total:     cart.Total(),
		ItemCount: cart.Count(),
	}
}

// CreateCart issues a fresh cart ID. Nothing is persisted until the first
// item is added.
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"cart_id": uuid.NewString()})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := r.PathValue("id")

	cart, err := h.carts.Get(r.Context(), cartID)
	if err != nil {
		h.logger.Error("cart_load_failed", "Failed to load cart", cartID, nil, err)
		respondError(w, "Failed to load cart", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cartID, cart))
}

type addItemRequest struct {
	ItemID int `json:"item_id"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := r.PathValue("id")

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if req.ItemID < 1 {
		respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "item_id", Message: "item id is required"},
		})
		return
	}

	item, err := h.catalog.MenuItem(r.Context(), req.ItemID)
	if err != nil {
		respondError(w, "Menu item not found", http.StatusNotFound, nil)
		return
	}
	if !item.IsAvailable {
		respondError(w, "Menu item is not available", http.StatusConflict, nil)
		return
	}

	cart, err := h.carts.AddItem(r.Context(), cartID, domain.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		ImageURL:  item.ImageURL,
		Quantity:  1,
	})
	if err != nil {
		h.logger.Error("cart_update_failed", "Failed to add item to cart", cartID, nil, err)
		respondError(w, "Failed to update cart", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cartID, cart))
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID := r.PathValue("id")
	itemID, err := strconv.Atoi(r.PathValue("itemID"))
	if err != nil {
		respondError(w, "Invalid item id", http.StatusBadRequest, nil)
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if req.Delta == 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "delta", Message: "delta must be non-zero"},
		})
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), cartID, itemID, req.Delta)
	if err != nil {
		h.logger.Error("cart_update_failed", "Failed to update quantity", cartID, nil, err)
		respondError(w, "Failed to update cart", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cartID, cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := r.PathValue("id")
	itemID, err := strconv.Atoi(r.PathValue("itemID"))
	if err != nil {
		respondError(w, "Invalid item id", http.StatusBadRequest, nil)
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), cartID, itemID)
	if err != nil {
		h.logger.Error("cart_update_failed", "Failed to remove item", cartID, nil, err)
		respondError(w, "Failed to update cart", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(cartID, cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartID := r.PathValue("id")

	if err := h.carts.Clear(r.Context(), cartID); err != nil {
		h.logger.Error("cart_clear_failed", "Failed to clear cart", cartID, nil, err)
		respondError(w, "Failed to clear cart", http.StatusInternalServerError, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
