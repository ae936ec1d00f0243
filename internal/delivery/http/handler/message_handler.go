package handler

import (
	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MessageHandler struct {
	messages *usecase.MessageService
}

type sendMessageRequest struct {
	ToUserID int64  `json:"to_user_id"`
	Content  string `json:"content"`
}

func NewMessageHandler(messages *usecase.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router, authMw fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/messages", authMw, h.Send)
	// The static conversations route must register before the param route.
	r.Get("/messages/conversations", authMw, h.Conversations)
	r.Get("/messages/:userId", authMw, h.Conversation)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	m, err := h.messages.Send(c.Context(), middleware.ActorFromCtx(c), usecase.SendMessageInput{
		ToUserID: req.ToUserID,
		Content:  req.Content,
	})
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusNotFound:   "Recipient not found",
			fiber.StatusBadRequest: "Invalid message payload",
		})
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromMessage(m))
}

func (h *MessageHandler) Conversations(c fiber.Ctx) error {
	convs, err := h.messages.Conversations(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConversations(convs))
}

func (h *MessageHandler) Conversation(c fiber.Ctx) error {
	otherID, err := parseIDParam(c, "userId")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	msgs, err := h.messages.Conversation(c.Context(), middleware.ActorFromCtx(c), otherID)
	if err != nil {
		return mapUsecaseError(err, map[int]string{
			fiber.StatusNotFound: "User not found",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMessages(msgs))
}
