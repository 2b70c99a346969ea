package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const slackPostMessageURL = "https://slack.com/api/chat.postMessage"

type slackPostMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type slackPostMessageResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

var slackHTTPClient = &http.Client{Timeout: 10 * time.Second}

// SendSlackDM posts a direct message through the Slack Web API. It is
// a no-op when SLACK_BOT_TOKEN is unset or the member has no Slack id.
func SendSlackDM(slackUserID, message string) error {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" || slackUserID == "" {
		return nil
	}

	body, err := json.Marshal(slackPostMessageRequest{
		Channel: slackUserID,
		Text:    message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal Slack payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, slackPostMessageURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build Slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := slackHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Slack API returned status %d", resp.StatusCode)
	}

	var result slackPostMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode Slack response: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("Slack API error: %s", result.Error)
	}

	return nil
}
