package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Upstream pricing is per character, so oversized inputs are rejected
// outright instead of being truncated.
const maxTTSLength = 1000

type ttsRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleTTS(c *fiber.Ctx) error {
	var req ttsRequest
	if err := c.BodyParser(&req); err != nil || req.Text == "" || len(req.Text) > maxTTSLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid text"})
	}

	if !s.ttsClient.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No API key"})
	}

	audio, err := s.ttsClient.Synthesize(c.Context(), req.Text)
	if err != nil {
		slog.Error("TTS synthesis failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "TTS failed"})
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")

	return c.Send(audio)
}
