package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type ChatbotHandler struct {
	service interfaces.ChatbotService
	logger  logger.Logger
}

func NewChatbotHandler(service interfaces.ChatbotService, logger logger.Logger) *ChatbotHandler {
	return &ChatbotHandler{service: service, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *ChatbotHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "message", Message: "message is required"},
		})
		return
	}

	reply, err := h.service.Respond(r.Context(), req.Message)
	if err != nil {
		h.logger.Error("chatbot_failed", "Failed to compose chatbot reply", "", nil, err)
		respondError(w, "Failed to compose reply", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
