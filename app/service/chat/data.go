package chat

import "fmt"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation. Only the two chat roles exist;
// anything else is rejected at the HTTP boundary.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (m Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return fmt.Errorf("unknown role %q", m.Role)
	}
	if m.Content == "" {
		return fmt.Errorf("empty content")
	}
	return nil
}
