package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain"
)

// ChatEngine is the conversation core as the transport sees it.
type ChatEngine interface {
	HandleMessage(ctx context.Context, from *domain.Profile, text string) (*domain.Reply, error)
	HandleCallback(ctx context.Context, from *domain.Profile, data string) (*domain.Reply, error)
}

// EventHandler receives conversation events from the chat transport and
// returns renderable replies.
type EventHandler struct {
	engine ChatEngine
}

func NewEventHandler(engine ChatEngine) *EventHandler {
	return &EventHandler{engine: engine}
}

type messageRequest struct {
	ChatID    int64  `json:"chat_id" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Text      string `json:"text" binding:"required"`
}

type callbackRequest struct {
	ChatID int64  `json:"chat_id" binding:"required"`
	Data   string `json:"data" binding:"required"`
}

// Message handles POST /api/v1/events/message.
func (h *EventHandler) Message(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	from := &domain.Profile{
		ChatID:    req.ChatID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	}
	reply, err := h.engine.HandleMessage(c.Request.Context(), from, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reply)
}

// Callback handles POST /api/v1/events/callback.
func (h *EventHandler) Callback(c *gin.Context) {
	var req callbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	from := &domain.Profile{ChatID: req.ChatID}
	reply, err := h.engine.HandleCallback(c.Request.Context(), from, req.Data)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reply)
}
