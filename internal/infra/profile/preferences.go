package profile

import (
	"context"
	"net/http"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
)

const preferencesPath = "/api/v1/notifications/preferences"

// PreferencesBody is the data member of the preferences endpoints.
type PreferencesBody struct {
	Preferences *entity.NotificationPreferences `json:"preferences"`
}

type preferenceClient struct {
	*Client
}

// NewPreferenceClient adapts c to the consumer preference collaborator.
func NewPreferenceClient(c *Client) service.PreferenceClient {
	return &preferenceClient{Client: c}
}

func (c *preferenceClient) Fetch(ctx context.Context) (*entity.NotificationPreferences, error) {
	var body PreferencesBody
	if err := c.do(ctx, http.MethodGet, preferencesPath, nil, &body); err != nil {
		return nil, err
	}

	return body.Preferences, nil
}

func (c *preferenceClient) Put(ctx context.Context, prefs entity.NotificationPreferences) error {
	return c.do(ctx, http.MethodPut, preferencesPath, prefs, nil)
}
