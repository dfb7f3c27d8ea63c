package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"shopbot/app/service/chat"
)

type webhookPayload struct {
	Entry []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Value webhookValue `json:"value"`
}

type webhookValue struct {
	Messages []webhookMessage `json:"messages"`
}

type webhookMessage struct {
	From string      `json:"from"`
	Text webhookText `json:"text"`
}

type webhookText struct {
	Body string `json:"body"`
}

// handleWhatsAppVerify answers the Meta webhook subscription handshake.
func (s *Server) handleWhatsAppVerify(c *fiber.Ctx) error {
	if c.Query("hub.mode") == "subscribe" && c.Query("hub.verify_token") == s.cfg.WhatsApp.VerifyToken {
		slog.Info("WhatsApp webhook verified")
		return c.SendString(c.Query("hub.challenge"))
	}

	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid verify token"})
}

// handleWhatsAppMessage answers inbound messages. Meta expects 200 no
// matter what happens here, otherwise it keeps retrying the delivery, so
// every exit path of this handler is a 200.
func (s *Server) handleWhatsAppMessage(c *fiber.Ctx) error {
	var payload webhookPayload
	if err := c.BodyParser(&payload); err != nil {
		slog.Warn("unparseable WhatsApp webhook payload", "error", err)
		return c.JSON(fiber.Map{"status": "ok"})
	}

	from, text, ok := firstInboundMessage(payload)
	if !ok {
		// Delivery-status callbacks carry no message.
		return c.JSON(fiber.Map{"status": "ok"})
	}

	slog.Info("WhatsApp message received", "from", from)

	reply := s.chatSvc.Resolve(c.Context(), []chat.Message{{Role: chat.RoleUser, Content: text}})

	if err := s.waClient.SendText(c.Context(), from, reply); err != nil {
		slog.Error("Failed to send WhatsApp reply", "to", from, "error", err)
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

func firstInboundMessage(payload webhookPayload) (from, text string, ok bool) {
	if len(payload.Entry) == 0 || len(payload.Entry[0].Changes) == 0 {
		return "", "", false
	}

	messages := payload.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 || messages[0].Text.Body == "" {
		return "", "", false
	}

	return messages[0].From, messages[0].Text.Body, true
}
