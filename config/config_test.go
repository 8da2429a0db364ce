package config

import (
	"testing"
	"time"

	"nearby/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"transport": map[string]any{
			"token":     "",
			"baseDelay": "1s",
		},
		"notification": map[string]any{
			"deviceToken": "",
			"timeZone":    "",
		},
		"location": map[string]any{
			"replayFile": "",
		},
		"matching": map[string]any{
			"inboundBurst": 40,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "TRANSPORT_TOKEN", want: "transport.token"},
		{envKey: "TRANSPORT_BASEDELAY", want: "transport.baseDelay"},
		{envKey: "NOTIFICATION_DEVICETOKEN", want: "notification.deviceToken"},
		{envKey: "NOTIFICATION_TIME_ZONE", want: "notification.time.zone"},
		{envKey: "LOCATION_REPLAYFILE", want: "location.replayFile"},
		{envKey: "MATCHING_INBOUNDBURST", want: "matching.inboundBurst"},
		{envKey: "HUB__DEBUG", want: "hub.debug"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, constants.DatabaseDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 54*time.Second, cfg.Transport.PingPeriod)
	assert.Equal(t, 30*time.Second, cfg.Transport.MaxDelay)
	assert.InDelta(t, 2000.0, cfg.Presence.DefaultRadius, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.Notification.TTL)
	assert.Equal(t, 10, cfg.Notification.MaxActive)
	assert.Equal(t, constants.AlerterLog, cfg.Notification.Alerter)
	assert.Equal(t, 5*time.Minute, cfg.Matching.Cooldown)
	assert.Equal(t, constants.PubSubProviderNoop, cfg.PubSub.Provider)
}

func TestApplyDefaults_PingPeriodBelowPongWait(t *testing.T) {
	cfg := &Config{Transport: &TransportConfig{PongWait: 10 * time.Second, PingPeriod: 20 * time.Second}}
	applyDefaults(cfg)

	assert.Equal(t, 9*time.Second, cfg.Transport.PingPeriod)
}
