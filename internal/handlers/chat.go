package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"dentalspace-backend/internal/models"
	"dentalspace-backend/internal/services"
)

type chatCompleter interface {
	Complete(ctx context.Context, apiKey string, messages []models.ChatMessage) (json.RawMessage, error)
}

type ChatHandler struct {
	completer chatCompleter
	apiKey    string
}

func NewChatHandler(completer chatCompleter, apiKey string) *ChatHandler {
	return &ChatHandler{
		completer: completer,
		apiKey:    apiKey,
	}
}

// Chat relays one message to OpenAI with the DentalSpace system prompt.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req models.ChatRequest
	// An empty body is an empty request and falls through to the message check.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
		return
	}

	if h.apiKey == "" {
		log.Println("✗ OPENAI_API_KEY environment variable not set")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "OpenAI API key not configured"})
		return
	}

	messages := services.BuildMessages(req.Context, req.ConversationHistory, req.Message)

	reply, err := h.completer.Complete(r.Context(), h.apiKey, messages)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply, Status: models.StatusSuccess})
}

func handleServiceError(w http.ResponseWriter, err error) {
	var (
		authErr      *services.AuthError
		rateErr      *services.RateLimitError
		upstreamErr  *services.UpstreamError
		malformedErr *services.MalformedResponseError
	)

	switch {
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "OpenAI API key invalid"})
	case errors.As(err, &rateErr):
		writeJSON(w, rateErr.StatusCode, models.ErrorResponse{Error: "Rate limit exceeded"})
	case errors.As(err, &upstreamErr):
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "OpenAI API error"})
	case errors.As(err, &malformedErr):
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Unexpected response format"})
	default:
		log.Printf("Backend API Error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
	}
}
