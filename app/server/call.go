package server

import (
	"github.com/gofiber/fiber/v2"

	"shopbot/app/service/callflow"
)

type callRequest struct {
	Text  string         `json:"text"`
	State callflow.State `json:"state"`
	Slots callflow.Slots `json:"slots"`
}

type callResponse struct {
	Reply string         `json:"reply"`
	State callflow.State `json:"state"`
	Slots callflow.Slots `json:"slots"`
}

// handleCallTurn advances one voice-demo conversation turn. The engine is
// stateless: the client sends back the state and slots from the previous
// response. An empty state opens the call with the greeting.
func (s *Server) handleCallTurn(c *fiber.Ctx) error {
	var req callRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	if req.State != "" && !req.State.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown state"})
	}

	turn := s.callSvc.Respond(req.Text, req.State, req.Slots)

	return c.JSON(callResponse{Reply: turn.Response, State: turn.Next, Slots: turn.Slots})
}
