package agent

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/infra/location"
	"nearby/internal/infra/transport"
	mockUsecase "nearby/internal/mocks/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *transport.Session {
	return transport.NewSession(transport.Options{
		URL:       "ws://127.0.0.1:1/ws",
		BaseDelay: time.Second,
		MaxDelay:  time.Second,
		WriteWait: time.Second,
	}, testLogger(), clockwork.NewFakeClock())
}

func run(t *testing.T, c *Console) string {
	t.Helper()

	require.NoError(t, c.Run(context.Background()))

	return c.out.(*bytes.Buffer).String()
}

func TestVendorConsole_Commands(t *testing.T) {
	presence := mockUsecase.NewMockPresenceUsecase(t)
	out := &bytes.Buffer{}
	input := strings.Join([]string{
		"online 25.033 121.5654",
		"radius 3000",
		"accept maybe",
		"teleport",
		"quit",
		"offline",
	}, "\n")

	presence.EXPECT().GoOnline(mock.Anything, &entity.Coordinates{Latitude: 25.033, Longitude: 121.5654}).Return(nil).Once()
	radius := 3000.0
	presence.EXPECT().UpdateDeliverySettings(mock.Anything, entity.DeliverySettings{DeliveryRadius: &radius}).Return(nil).Once()
	presence.EXPECT().Presence().Return(entity.VendorPresence{
		VendorID:             "v1",
		Coordinates:          entity.Coordinates{Latitude: 25.033, Longitude: 121.5654},
		IsOnline:             true,
		AcceptingOrders:      true,
		DeliveryRadiusMeters: 3000,
	})

	c := NewVendorConsole(VendorConsoleParams{
		Stdio:    Stdio{In: strings.NewReader(input), Out: out},
		Presence: presence,
		Session:  testSession(),
		Logger:   testLogger(),
	})

	output := run(t, c)

	assert.Contains(t, output, "25.03300, 121.56540")
	assert.Contains(t, output, "3000")
	assert.Contains(t, output, "usage: accept on|off")
	assert.Contains(t, output, `unknown command "teleport"`)
}

func TestVendorConsole_ReportsSettingsFailure(t *testing.T) {
	presence := mockUsecase.NewMockPresenceUsecase(t)
	out := &bytes.Buffer{}

	accepting := true
	presence.EXPECT().UpdateDeliverySettings(mock.Anything, entity.DeliverySettings{AcceptingOrders: &accepting}).
		Return(assert.AnError).Once()
	presence.EXPECT().Presence().Return(entity.VendorPresence{DeliveryRadiusMeters: 2000}).Once()

	c := NewVendorConsole(VendorConsoleParams{
		Stdio:    Stdio{In: strings.NewReader("accept on\n"), Out: out},
		Presence: presence,
		Session:  testSession(),
		Logger:   testLogger(),
	})

	assert.Contains(t, run(t, c), "accept: "+assert.AnError.Error())
}

func TestVendorConsole_MoveFeedsManualSource(t *testing.T) {
	presence := mockUsecase.NewMockPresenceUsecase(t)
	clock := clockwork.NewFakeClock()
	source := location.NewManualSource(clock)

	c := NewVendorConsole(VendorConsoleParams{
		Stdio:    Stdio{In: strings.NewReader("move 12.9716 77.5946\nmove north\n"), Out: &bytes.Buffer{}},
		Presence: presence,
		Session:  testSession(),
		Manual:   source,
		Logger:   testLogger(),
	})

	output := run(t, c)

	pos, err := source.CurrentPosition(context.Background(), entity.LocationOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Latitude: 12.9716, Longitude: 77.5946}, pos.Coordinates)
	assert.Contains(t, output, "usage: move <lat> <lng>")
}

func newConsumerConsole(t *testing.T, input string) (*Console, *mockUsecase.MockProximityUsecase, *mockUsecase.MockPreferenceUsecase, *func([]entity.NotificationRecord)) {
	proximity := mockUsecase.NewMockProximityUsecase(t)
	prefs := mockUsecase.NewMockPreferenceUsecase(t)

	var listener func([]entity.NotificationRecord)
	proximity.EXPECT().Subscribe(mock.Anything).Run(func(fn func([]entity.NotificationRecord)) {
		listener = fn
	}).Return().Once()

	c := NewConsumerConsole(ConsumerConsoleParams{
		Stdio:       Stdio{In: strings.NewReader(input), Out: &bytes.Buffer{}},
		Proximity:   proximity,
		Preferences: prefs,
		Session:     testSession(),
		Logger:      testLogger(),
	})

	return c, proximity, prefs, &listener
}

func TestConsumerConsole_ListAndAcknowledge(t *testing.T) {
	c, proximity, _, _ := newConsumerConsole(t, "list\nack n-1\nack n-2\n")

	expires := time.Date(2026, 10, 18, 9, 0, 30, 0, time.UTC)
	proximity.EXPECT().Active().Return([]entity.NotificationRecord{{
		Event: entity.ProximityEvent{
			NotificationID: "n-1",
			VendorName:     "Tea Cart",
			DistanceMeters: 250,
		},
		Priority:  entity.PriorityHigh,
		State:     entity.RecordActive,
		ExpiresAt: expires,
	}}).Once()
	proximity.EXPECT().Acknowledge("n-1").Return(true).Once()
	proximity.EXPECT().Acknowledge("n-2").Return(false).Once()

	output := run(t, c)

	assert.Contains(t, output, "Tea Cart")
	assert.Contains(t, output, "09:00:30")
	assert.Contains(t, output, "no active notification n-2")
	assert.NotContains(t, output, "no active notification n-1")
}

func TestConsumerConsole_AnnouncesNewNotifications(t *testing.T) {
	c, _, _, listener := newConsumerConsole(t, "")
	require.NotNil(t, *listener)

	record := entity.NotificationRecord{
		Event:    entity.ProximityEvent{NotificationID: "n-1", VendorName: "Tea Cart", DistanceMeters: 640},
		Priority: entity.PriorityMedium,
	}
	(*listener)([]entity.NotificationRecord{record})
	(*listener)([]entity.NotificationRecord{record})

	output := c.out.(*bytes.Buffer).String()
	assert.Equal(t, 1, strings.Count(output, "Tea Cart is 640 m away"))
	assert.Contains(t, output, "[medium]")
}

func TestConsumerConsole_EditPreferences(t *testing.T) {
	c, _, prefs, _ := newConsumerConsole(t, "prefs radius 1500\nprefs quiet 22:00 08:00\nprefs dnd maybe\n")

	current := entity.DefaultPreferences()
	prefs.EXPECT().Current().Return(current)
	prefs.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p entity.NotificationPreferences) bool {
		return p.RadiusMeters == 1500
	})).Return(nil).Once()
	prefs.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p entity.NotificationPreferences) bool {
		return p.QuietHours == entity.QuietHours{Enabled: true, Start: "22:00", End: "08:00"}
	})).Return(nil).Once()

	output := run(t, c)

	assert.Contains(t, output, "usage: prefs")
}

func TestConsumerConsole_Permission(t *testing.T) {
	c, proximity, _, _ := newConsumerConsole(t, "permission request\n")

	proximity.EXPECT().RequestAlertPermission(mock.Anything).Return(service.PermissionGranted, nil).Once()
	proximity.EXPECT().Permission().Return(service.PermissionGranted).Once()

	assert.Contains(t, run(t, c), "alert permission: granted")
}
