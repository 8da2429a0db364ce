// Package notification delivers system notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"nearby/config"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// sender is the part of the messaging client the service uses.
type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client sender
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return nil, errors.New("firebase credentials path is required")
	}

	opts := []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrapf(err, "device token rejected")
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}
