package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novanest_backend/internal/services"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	{
		messages.POST("", h.Send)
		messages.GET("", h.Thread)
		messages.PUT("/read/:userId", h.MarkConversationRead)
	}

	conversations := rg.Group("/conversations")
	{
		conversations.GET("", h.Conversations)
		conversations.GET("/details", h.ConversationsWithDetails)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) Thread(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	counterpartID := c.Query("userId")
	if counterpartID == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Query parameter userId is required"))
		return
	}

	messages, err := h.messageService.Thread(userID, counterpartID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	conversations, err := h.messageService.Conversations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (h *MessageHandler) ConversationsWithDetails(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	conversations, err := h.messageService.ConversationsWithDetails(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (h *MessageHandler) MarkConversationRead(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	result, err := h.messageService.MarkConversationRead(userID, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
