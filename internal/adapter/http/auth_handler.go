package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type AuthHandler struct {
	service interfaces.AuthService
	logger  logger.Logger
}

func NewAuthHandler(service interfaces.AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondError(w, "Email and password are required", http.StatusBadRequest, nil)
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, "Invalid email or password", http.StatusUnauthorized, nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
