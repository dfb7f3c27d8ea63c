package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/samber/do"

	"shopbot/app/config"
)

const graphAPIBase = "https://graph.facebook.com/v21.0"

// Client sends outbound messages through the Meta WhatsApp Cloud API.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	return &Client{
		cfg: do.MustInvoke[*config.Config](di),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

func (c *Client) Configured() bool {
	return c.cfg.WhatsApp.AccessToken != "" && c.cfg.WhatsApp.PhoneNumberID != ""
}

type outboundMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             outboundText `json:"text"`
}

type outboundText struct {
	Body string `json:"body"`
}

// SendText delivers one text message to a WhatsApp user. Failures are for
// the caller to log; they are never retried.
func (c *Client) SendText(ctx context.Context, to, text string) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp access token or phone number ID not configured")
	}

	body, err := json.Marshal(outboundMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             outboundText{Body: text},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", graphAPIBase, c.cfg.WhatsApp.PhoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.WhatsApp.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call messages API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("messages API returned %d: %s", resp.StatusCode, errorText)
	}

	return nil
}
