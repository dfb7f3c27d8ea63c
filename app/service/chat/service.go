package chat

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/samber/do"

	"shopbot/app/client/assistant"
	"shopbot/app/service/salon"
)

const (
	// Scripted replies arrive instantly, which reads as fake. A small
	// delay proportional to reply length mimics typing.
	typingBaseDelay    = 400 * time.Millisecond
	typingPerCharDelay = 5 * time.Millisecond
	typingMaxExtra     = 1200 * time.Millisecond
)

// Service resolves a conversation to a reply: the upstream model when one
// is configured and reachable, the scripted salon engine otherwise. It
// never fails; the engine has an answer for every input.
type Service struct {
	assistantClient *assistant.Client
	engine          *salon.Engine
}

func New(di *do.Injector) (*Service, error) {
	seed := uint64(time.Now().UnixNano())

	return &Service{
		assistantClient: do.MustInvoke[*assistant.Client](di),
		engine:          salon.NewEngine(rand.New(rand.NewPCG(seed, seed>>1))),
	}, nil
}

// NewWithEngine wires an explicit engine, used by tests to control the
// random source.
func NewWithEngine(assistantClient *assistant.Client, engine *salon.Engine) *Service {
	return &Service{
		assistantClient: assistantClient,
		engine:          engine,
	}
}

// Resolve computes the reply for the given conversation. The last message
// is the one being answered; the rest is context.
func (s *Service) Resolve(ctx context.Context, messages []Message) string {
	if s.assistantClient.Configured() {
		reply, err := s.assistantClient.Reply(ctx, toAssistantMessages(messages))
		if err == nil {
			return reply
		}

		// Upstream trouble is invisible to the end user: the scripted
		// engine takes over and the failure is only logged.
		slog.Warn("assistant call failed, using scripted replies", "error", err)
		return s.scriptedReply(messages)
	}

	reply := s.scriptedReply(messages)
	s.simulateTyping(ctx, len(reply))

	return reply
}

func (s *Service) scriptedReply(messages []Message) string {
	var lastMessage string
	if len(messages) > 0 {
		lastMessage = messages[len(messages)-1].Content
	}

	contents := make([]string, 0, len(messages))
	priorReplies := make([]string, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, m.Content)
		if m.Role == RoleAssistant {
			priorReplies = append(priorReplies, m.Content)
		}
	}

	return s.engine.Reply(lastMessage, strings.Join(contents, " "), priorReplies)
}

func (s *Service) simulateTyping(ctx context.Context, replyLength int) {
	extra := time.Duration(replyLength) * typingPerCharDelay
	if extra > typingMaxExtra {
		extra = typingMaxExtra
	}

	timer := time.NewTimer(typingBaseDelay + extra)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func toAssistantMessages(messages []Message) []assistant.Message {
	result := make([]assistant.Message, 0, len(messages))
	for _, m := range messages {
		result = append(result, assistant.Message{Role: m.Role, Content: m.Content})
	}
	return result
}
