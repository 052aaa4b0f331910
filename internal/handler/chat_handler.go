package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nayrana/internal/chat"
)

// ChatHandler serves the rule-based chat assistant. All state lives with the
// client; the server holds nothing between turns.
type ChatHandler struct{}

// NewChatHandler creates a new chat handler.
func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

// ChatRequest represents one chat turn.
type ChatRequest struct {
	Message string     `json:"message" validate:"required"`
	State   chat.State `json:"state"`
}

// ChatResponse carries the reply and the state to echo back next turn.
type ChatResponse struct {
	Reply string     `json:"reply"`
	State chat.State `json:"state"`
}

// Message godoc
// @Summary Get a chat reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Message and conversation state"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Message(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error(), "VALIDATION_FAILED")
	}

	reply, state := chat.Reply(req.Message, req.State)
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply, State: state})
}
