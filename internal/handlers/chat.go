package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/grace-hospital/grace-backend/internal/services"
)

// defaultConversationID keeps single-browser deployments working when the
// front-end does not supply an ID of its own.
const defaultConversationID = "default"

// ChatHandler handles inbound chat messages
type ChatHandler struct {
	dispatcher *services.Dispatcher
}

// NewChatHandler creates a new chat handler
func NewChatHandler(dispatcher *services.Dispatcher) *ChatHandler {
	return &ChatHandler{dispatcher: dispatcher}
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// ChatResponse is the reply payload
type ChatResponse struct {
	Response string `json:"response"`
	UserID   string `json:"user_id"`
}

// HandleChat processes one chat message and returns the reply
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chat payload",
		})
	}

	conversationID := req.UserID
	if conversationID == "" {
		conversationID = defaultConversationID
	}
	// "new" asks for a fresh conversation identity
	if conversationID == "new" {
		conversationID = uuid.NewString()
	}

	log.Printf("💬 Chat message from %s: %s", conversationID, req.Message)

	response, err := h.dispatcher.Handle(c.Context(), conversationID, req.Message)
	if err != nil {
		log.Printf("Error handling chat message: %v", err)
		return err
	}

	return c.JSON(ChatResponse{
		Response: response,
		UserID:   conversationID,
	})
}
