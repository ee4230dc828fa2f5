package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"TradeAdvisor/internal/model"
)

// TelegramNotifier delivers rendered signal reports via the Telegram Bot
// API. Reports arrive pre-formatted from the formatter; the notifier only
// decides how loudly to deliver them.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Client   *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		BaseURL:  "https://api.telegram.org",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (t *TelegramNotifier) apiURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", t.BaseURL, t.BotToken, method)
}

// sendMessage is the Bot API payload. The formatters emit HTML, so the
// parse mode is fixed here and nowhere else.
type sendMessage struct {
	ChatID              string `json:"chat_id"`
	Text                string `json:"text"`
	ParseMode           string `json:"parse_mode"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
}

// actionable reports whether a signal kind should ring the chat. NEUTRAL
// and INSUFFICIENT_DATA updates are informational and arrive silently.
func actionable(kind model.SignalKind) bool {
	return kind == model.SignalBuy || kind == model.SignalSell
}

func (t *TelegramNotifier) post(msg sendMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := t.Client.Post(t.apiURL("sendMessage"), "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// Send delivers an audible message. Used for command replies and the
// daily report.
func (t *TelegramNotifier) Send(text string) error {
	return t.post(sendMessage{ChatID: t.ChatID, Text: text, ParseMode: "HTML"})
}

// SendSignal delivers a signal report; only BUY and SELL notify, the rest
// arrive without a sound.
func (t *TelegramNotifier) SendSignal(kind model.SignalKind, text string) error {
	return t.post(sendMessage{
		ChatID:              t.ChatID,
		Text:                text,
		ParseMode:           "HTML",
		DisableNotification: !actionable(kind),
	})
}

// retry runs attempt with exponential backoff until it succeeds, retries
// are exhausted, or ctx is cancelled.
func (t *TelegramNotifier) retry(ctx context.Context, maxRetries int, attempt func() error) error {
	var lastErr error
	for i := 0; ; i++ {
		lastErr = attempt()
		if lastErr == nil {
			return nil
		}
		if i == maxRetries {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		log.Printf("[WARN] Telegram send failed (attempt %d/%d): %v, retrying in %v", i+1, maxRetries+1, lastErr, backoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}

// SendWithRetry sends an audible message with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	return t.retry(ctx, maxRetries, func() error { return t.Send(text) })
}

// SendSignalWithRetry sends a signal report with exponential backoff retry.
func (t *TelegramNotifier) SendSignalWithRetry(ctx context.Context, kind model.SignalKind, text string, maxRetries int) error {
	return t.retry(ctx, maxRetries, func() error { return t.SendSignal(kind, text) })
}
