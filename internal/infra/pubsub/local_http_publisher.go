package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nearby/internal/domain/service"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/presence-sub"
	localPushRetries  = 2
)

// localHTTPPublisher delivers presence events straight to a push endpoint,
// standing in for a Pub/Sub push subscription during development. Like
// Pub/Sub it redelivers when the endpoint answers 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	newBackOff func() backoff.BackOff
	logger     *slog.Logger
}

// PushMessage is the body Google Pub/Sub posts to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher posting push messages to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(200*time.Millisecond),
			), localPushRetries)
		},
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	body, err := pushBody(event)
	if err != nil {
		return err
	}

	attempts := 0
	err = backoff.Retry(func() error {
		attempts++

		return p.post(ctx, body, event.RequestID)
	}, backoff.WithContext(p.newBackOff(), ctx))
	if err != nil {
		return err
	}

	p.logger.Debug("[LocalPubSub] Presence event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
		slog.Int("attempts", attempts),
	)

	return nil
}

// post makes one delivery attempt. Rejections other than 5xx are final.
func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	default:
		return backoff.Permanent(errors.Errorf("push endpoint rejected event with status %d", resp.StatusCode))
	}
}

func pushBody(event *service.PresenceEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = presenceAttributes(event)

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
