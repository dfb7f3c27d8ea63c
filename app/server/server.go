package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"

	"shopbot/app/client/elevenlabs"
	"shopbot/app/client/whatsapp"
	"shopbot/app/config"
	"shopbot/app/service/callflow"
	"shopbot/app/service/chat"
)

// Server is the HTTP surface of the demos: chat resolution, the TTS
// proxy, the WhatsApp webhook and the voice-call turn endpoint.
type Server struct {
	cfg       *config.Config
	app       *fiber.App
	chatSvc   *chat.Service
	callSvc   *callflow.Service
	ttsClient *elevenlabs.Client
	waClient  *whatsapp.Client
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:       do.MustInvoke[*config.Config](di),
		chatSvc:   do.MustInvoke[*chat.Service](di),
		callSvc:   do.MustInvoke[*callflow.Service](di),
		ttsClient: do.MustInvoke[*elevenlabs.Client](di),
		waClient:  do.MustInvoke[*whatsapp.Client](di),
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})

	api := s.app.Group("/api")
	api.Post("/chat", s.handleChat)
	api.Post("/tts", s.handleTTS)
	api.Get("/whatsapp", s.handleWhatsAppVerify)
	api.Post("/whatsapp", s.handleWhatsAppMessage)
	api.Post("/call", s.handleCallTurn)

	return s, nil
}

// App exposes the fiber app, used by handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		if err := s.app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("HTTP API listening", "addr", s.cfg.Server.Addr)

	return s.app.Listen(s.cfg.Server.Addr)
}
