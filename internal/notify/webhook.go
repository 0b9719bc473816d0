package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hamed0406/resourcemonitor/internal/domain"
)

// Webhook posts {"text": message} to an incoming-webhook style endpoint
// (Slack, Mattermost, Rocket.Chat and friends all accept this shape).
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{URL: url, Client: &http.Client{}}
}

type webhookPayload struct {
	Text string `json:"text"`
}

func (w *Webhook) Notify(ctx context.Context, message string) error {
	body, err := json.Marshal(webhookPayload{Text: message})
	if err != nil {
		return &domain.NotifyError{Endpoint: w.URL, Cause: fmt.Errorf("encode payload: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return &domain.NotifyError{Endpoint: w.URL, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return &domain.NotifyError{Endpoint: w.URL, Cause: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return &domain.NotifyError{Endpoint: w.URL, StatusCode: resp.StatusCode}
	}
	return nil
}
