package service

import (
	"context"
)

// PushService delivers system notifications to a registered device.
type PushService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
