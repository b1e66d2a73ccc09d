// Package notifier delivers the daily selection result to an external
// webhook. Delivery is best-effort: failures are reported to the caller but
// never roll back the recorded selection.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const maxAttempts = 3

// payload is the minimal selection-announcement body the webhook expects.
type payload struct {
	UID string `json:"uid"`
}

// WebhookNotifier posts the selection to a configured webhook URL with
// bounded retries and exponential backoff.
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

// NewWebhook creates a notifier. Each attempt is bounded by timeout;
// retryWait is the initial backoff between attempts and doubles per retry.
func NewWebhook(url string, timeout, retryWait time.Duration) *WebhookNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(maxAttempts - 1).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryWait * 4).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || !r.IsSuccess()
		})

	return &WebhookNotifier{
		client: client,
		url:    url,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, mail string) error {
	if mail == "" {
		return fmt.Errorf("cannot notify: mail is empty")
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload{UID: mail}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("webhook request failed after %d attempts: %w", maxAttempts, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("webhook returned status %d after %d attempts", resp.StatusCode(), maxAttempts)
	}

	return nil
}
