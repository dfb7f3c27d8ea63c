package server

import (
	"github.com/gofiber/fiber/v2"

	"shopbot/app/service/chat"
)

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	if len(req.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "messages required"})
	}

	for _, m := range req.Messages {
		if err := m.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	reply := s.chatSvc.Resolve(c.Context(), req.Messages)

	return c.JSON(chatResponse{Reply: reply})
}
