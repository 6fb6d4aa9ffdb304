package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/dto"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/middleware"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Thread handles GET /pets/:id/messages
func (h *MessageHandler) Thread(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid pet ID")
	}

	thread, err := h.messageService.GetThread(petID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	resp := dto.ThreadResponse{
		Messages:  make([]dto.MessageResponse, len(thread.Messages)),
		CanSend:   thread.CanSend,
		HasPinned: thread.HasPinned,
	}
	for i, m := range thread.Messages {
		resp.Messages[i] = toMessageResponse(m)
	}
	if thread.Recipient != nil {
		resp.Recipient = &dto.UserResponse{
			ID:    thread.Recipient.ID,
			Email: thread.Recipient.Email,
			Name:  thread.Recipient.Name,
			Role:  thread.Recipient.Role,
		}
	}
	return c.JSON(resp)
}

// Command handles POST /pets/:id/messages with a tagged action body: send,
// pin, unpin or delete.
func (h *MessageHandler) Command(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid pet ID")
	}

	var cmd dto.ThreadCommand
	if err := c.BodyParser(&cmd); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request")
	}

	switch cmd.Action {
	case dto.ActionSend:
		msg, err := h.messageService.Send(petID, userID, cmd.Content)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": toMessageResponse(*msg),
		})

	case dto.ActionPin, dto.ActionUnpin:
		msg, err := h.messageService.SetPinned(cmd.MessageID, userID, cmd.Action == dto.ActionPin)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "is_pinned": msg.IsPinned})

	case dto.ActionDelete:
		if err := h.messageService.Delete(cmd.MessageID, userID); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"success": true})

	default:
		return fail(c, fiber.StatusBadRequest, "Unknown action")
	}
}

// Edit handles PUT /messages/:id
func (h *MessageHandler) Edit(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid message ID")
	}

	var req dto.EditMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request")
	}

	msg, err := h.messageService.Edit(messageID, userID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": toMessageResponse(*msg)})
}
