package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/reservations"
	"github.com/meshahan/pakcuisine/internal/domain"
)

type ReservationHandler struct {
	service *reservations.Service
	logger  logger.Logger
}

func NewReservationHandler(service *reservations.Service, logger logger.Logger) *ReservationHandler {
	return &ReservationHandler{service: service, logger: logger}
}

type reservationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	PartySize int    `json:"party_size"`
	Notes     string `json:"notes"`
}

func (h *ReservationHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "date", Message: "date must be in YYYY-MM-DD format"},
		})
		return
	}

	res, err := h.service.Request(r.Context(), req.Name, req.Email, req.Phone, date, req.TimeSlot, req.PartySize, req.Notes)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			respondError(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		h.logger.Error("reservation_failed", "Failed to create reservation", "", nil, err)
		respondError(w, "Failed to create reservation", http.StatusInternalServerError, nil)
		return
	}

	writeJSON(w, http.StatusCreated, reservationResponse(res))
}

func reservationResponse(res *domain.Reservation) map[string]interface{} {
	return map[string]interface{}{
		"id":         res.ID,
		"name":       res.Name,
		"email":      res.Email,
		"phone":      res.Phone,
		"date":       res.Date.Format("2006-01-02"),
		"time_slot":  res.TimeSlot,
		"party_size": res.PartySize,
		"notes":      res.Notes,
		"status":     res.Status,
		"created_at": res.CreatedAt,
	}
}
