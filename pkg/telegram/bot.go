package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"billing-automation/pkg/vendorhttp"
)

// Bot is a send-only Telegram Bot API client.
type Bot struct {
	token  string
	apiURL string
	http   *vendorhttp.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string, httpClient *http.Client) *Bot {
	return &Bot{
		token:  token,
		apiURL: defaultAPIURL,
		http:   vendorhttp.New(httpClient, vendorhttp.DefaultSettings("telegram")),
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = strings.TrimRight(url, "/")
}

// SendMessage sends text to chatID. chatID may be numeric or an @channel name.
func (b *Bot) SendMessage(ctx context.Context, chatID, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID, text, parseMode string) error {
	body, err := json.Marshal(SendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             parseMode,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", b.apiURL, b.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("telegram sendMessage API error %d: undecodable response", resp.StatusCode)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram sendMessage failed: %s", apiResp.Description)
	}
	return nil
}
