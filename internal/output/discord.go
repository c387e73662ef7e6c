package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Discord forwards notifications to a Discord channel via Webhook.
type Discord struct {
	webhookURL string
	client     *http.Client
}

func NewDiscord(webhookURL string) *Discord {
	return &Discord{
		webhookURL: webhookURL,
		client:     &http.Client{},
	}
}

func (d *Discord) Notify(level Level, message string) {
	prefix := map[Level]string{
		LevelSuccess: "✅",
		LevelError:   "❌",
		LevelInfo:    "ℹ️",
		LevelWarning: "⚠️",
	}[level]

	if err := d.send(prefix + " " + message); err != nil {
		log.Printf("output: %v", err)
	}
}

type discordPayload struct {
	Content string `json:"content"`
}

func (d *Discord) send(text string) error {
	payload, err := json.Marshal(discordPayload{Content: text})
	if err != nil {
		return fmt.Errorf("discord: marshaling payload: %w", err)
	}

	resp, err := d.client.Post(d.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("discord: sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		return fmt.Errorf("discord: API error %d: %v", resp.StatusCode, result["message"])
	}

	return nil
}
