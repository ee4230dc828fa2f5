package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// CommandFunc handles one bot command; args are the whitespace fields
// after the command name. An empty reply means the handler already
// responded through other means.
type CommandFunc func(args []string) string

// CommandMux routes chat messages to the commands this bot exposes. The
// first field of the message selects the handler; anything unknown gets
// the help text. Registration happens before polling starts, so no
// locking is needed.
type CommandMux struct {
	handlers map[string]CommandFunc
	help     string
}

// NewCommandMux creates a mux that answers unknown input with help.
func NewCommandMux(help string) *CommandMux {
	return &CommandMux{handlers: make(map[string]CommandFunc), help: help}
}

// Handle registers a command by its leading token, e.g. "/signal".
func (m *CommandMux) Handle(name string, fn CommandFunc) {
	m.handlers[name] = fn
}

// Dispatch resolves a raw chat message into a reply.
func (m *CommandMux) Dispatch(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return m.help
	}
	fn, ok := m.handlers[fields[0]]
	if !ok {
		return m.help
	}
	return fn(fields[1:])
}

// telegramUpdate represents a Telegram update from long polling.
type telegramUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
	} `json:"message"`
}

// StartPolling long-polls the Bot API and feeds incoming messages through
// the mux. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, mux *CommandMux) {
	// Separate client: the long-poll hold (30s) exceeds the send timeout.
	client := &http.Client{Timeout: 35 * time.Second}
	offset := 0

	for ctx.Err() == nil {
		updates, err := t.pollUpdates(ctx, client, offset)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Printf("[WARN] telegram poll: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, upd := range updates {
			offset = upd.UpdateID + 1
			if upd.Message == nil {
				continue
			}
			cmd := strings.TrimSpace(upd.Message.Text)
			if cmd == "" {
				continue
			}
			log.Printf("[INFO] received command: %s", cmd)
			if reply := mux.Dispatch(cmd); reply != "" {
				if err := t.Send(reply); err != nil {
					log.Printf("[ERROR] send command reply: %v", err)
				}
			}
		}
	}
	log.Println("[INFO] Telegram polling stopped")
}

func (t *TelegramNotifier) pollUpdates(ctx context.Context, client *http.Client, offset int) ([]telegramUpdate, error) {
	u := fmt.Sprintf("%s?offset=%d&timeout=30", t.apiURL("getUpdates"), offset)
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("create polling request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poll updates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read polling response: %w", err)
	}
	var result struct {
		OK     bool             `json:"ok"`
		Result []telegramUpdate `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode polling response: %w", err)
	}
	if !result.OK {
		return nil, fmt.Errorf("getUpdates not ok: %s", string(body))
	}
	return result.Result, nil
}
