package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	mockSvc "nearby/internal/mocks/service"
	"nearby/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubPreferences serves fixed preferences to the engine.
type stubPreferences struct {
	mu    sync.Mutex
	prefs entity.NotificationPreferences
}

func (s *stubPreferences) Load(context.Context) (entity.NotificationPreferences, error) {
	return s.Current(), nil
}

func (s *stubPreferences) Save(_ context.Context, prefs entity.NotificationPreferences) error {
	s.set(prefs)

	return nil
}

func (s *stubPreferences) Current() entity.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.prefs.Clone()
}

func (s *stubPreferences) Subscribe(func(entity.NotificationPreferences)) {}

func (s *stubPreferences) set(prefs entity.NotificationPreferences) {
	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()
}

var _ usecase.PreferenceUsecase = (*stubPreferences)(nil)

type engineFixture struct {
	engine  usecase.ProximityUsecase
	channel *fakeChannel
	clock   *clockwork.FakeClock
	prefs   *stubPreferences
	alerter *mockSvc.MockHostAlerter
}

func createTestProximityEngine(t *testing.T, at string, permission service.Permission) *engineFixture {
	t.Helper()

	now, err := time.Parse("15:04", at)
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, now.Hour(), now.Minute(), 0, 0, time.UTC))
	channel := newFakeChannel(true)
	prefs := &stubPreferences{prefs: entity.DefaultPreferences()}
	alerter := mockSvc.NewMockHostAlerter(t)
	alerter.EXPECT().Permission().Return(permission).Once()

	engine, err := NewProximityEngine(ProximityEngineParams{
		Channel:     channel,
		Preferences: prefs,
		Alerter:     alerter,
		Clock:       clock,
		Config:      testConfig(),
		Logger:      testLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(engine.Close)

	return &engineFixture{engine: engine, channel: channel, clock: clock, prefs: prefs, alerter: alerter}
}

func nearbyEvent(id, vendorID string, distance float64) entity.ProximityEvent {
	return entity.ProximityEvent{
		Type:           entity.ProximityNearby,
		NotificationID: id,
		VendorID:       vendorID,
		VendorName:     "Vendor " + vendorID,
		DistanceMeters: distance,
		Coordinates:    delhi,
		Products: []entity.Product{
			{ID: "p1", Name: "Tomatoes", Category: "vegetables", Price: 40, Unit: "kg"},
		},
	}
}

func activeIDs(records []entity.NotificationRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID())
	}

	return ids
}

func TestProximityEngine_AdmitsNearbyVendor(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)

	f.engine.HandleEvent(nearbyEvent("n1", "v1", 450))

	active := f.engine.Active()
	require.Len(t, active, 1)
	record := active[0]
	assert.Equal(t, "n1", record.ID())
	assert.Equal(t, entity.PriorityMedium, record.Priority)
	assert.Equal(t, entity.RecordActive, record.State)
	assert.Equal(t, "6 minutes", record.Event.EstimatedArrival)
	assert.Equal(t, f.clock.Now().Add(30*time.Second), record.ExpiresAt)
}

func TestProximityEngine_Filters(t *testing.T) {
	rating := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		at     string
		prefs  func(*entity.NotificationPreferences)
		event  func(*entity.ProximityEvent)
		admits bool
	}{
		{
			name:   "do not disturb",
			at:     "12:00",
			prefs:  func(p *entity.NotificationPreferences) { p.DoNotDisturb = true },
			admits: false,
		},
		{
			name:   "notifications disabled",
			at:     "12:00",
			prefs:  func(p *entity.NotificationPreferences) { p.Enabled = false },
			admits: false,
		},
		{
			name:   "quiet hours late evening",
			at:     "23:30",
			prefs:  func(p *entity.NotificationPreferences) { p.QuietHours.Enabled = true },
			admits: false,
		},
		{
			name:   "quiet hours early morning",
			at:     "05:00",
			prefs:  func(p *entity.NotificationPreferences) { p.QuietHours.Enabled = true },
			admits: false,
		},
		{
			name:   "outside quiet hours",
			at:     "12:00",
			prefs:  func(p *entity.NotificationPreferences) { p.QuietHours.Enabled = true },
			admits: true,
		},
		{
			name:   "quiet hours configured but disabled",
			at:     "23:30",
			admits: true,
		},
		{
			name:   "beyond radius",
			at:     "12:00",
			event:  func(e *entity.ProximityEvent) { e.DistanceMeters = 1001 },
			admits: false,
		},
		{
			name:   "on the radius",
			at:     "12:00",
			event:  func(e *entity.ProximityEvent) { e.DistanceMeters = 1000 },
			admits: true,
		},
		{
			name:   "category not followed",
			at:     "12:00",
			prefs:  func(p *entity.NotificationPreferences) { p.VendorCategories = []string{"fruits"} },
			admits: false,
		},
		{
			name:   "category followed",
			at:     "12:00",
			prefs:  func(p *entity.NotificationPreferences) { p.VendorCategories = []string{"fruits", "vegetables"} },
			admits: true,
		},
		{
			name:   "rating below minimum",
			at:     "12:00",
			prefs:  func(p *entity.NotificationPreferences) { p.MinimumRating = 4 },
			event:  func(e *entity.ProximityEvent) { e.VendorRating = rating(3.5) },
			admits: false,
		},
		{
			name:   "unrated vendor passes rating filter",
			at:     "12:00",
			prefs:  func(p *entity.NotificationPreferences) { p.MinimumRating = 4 },
			admits: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProximityEngine(t, tt.at, service.PermissionDefault)
			prefs := entity.DefaultPreferences()
			if tt.prefs != nil {
				tt.prefs(&prefs)
			}
			f.prefs.set(prefs)

			event := nearbyEvent("n1", "v1", 400)
			if tt.event != nil {
				tt.event(&event)
			}
			f.engine.HandleEvent(event)

			if tt.admits {
				assert.Len(t, f.engine.Active(), 1)
			} else {
				assert.Empty(t, f.engine.Active())
			}
		})
	}
}

func TestProximityEngine_RadiusChangeAppliesToLaterEvents(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	event := nearbyEvent("n1", "v1", 1500)

	f.engine.HandleEvent(event)
	assert.Empty(t, f.engine.Active())

	prefs := entity.DefaultPreferences()
	prefs.RadiusMeters = 2000
	f.prefs.set(prefs)

	f.engine.HandleEvent(event)
	assert.Equal(t, []string{"n1"}, activeIDs(f.engine.Active()))
}

func TestProximityEngine_DuplicateNotificationIgnored(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)

	var snapshots int
	f.engine.Subscribe(func([]entity.NotificationRecord) { snapshots++ })

	f.engine.HandleEvent(nearbyEvent("n1", "v1", 200))
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 150))

	active := f.engine.Active()
	require.Len(t, active, 1)
	assert.Equal(t, 200.0, active[0].Event.DistanceMeters)
	assert.Equal(t, 1, snapshots)
}

func TestProximityEngine_DepartedRemovesVendorRecords(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 200))
	f.engine.HandleEvent(nearbyEvent("n2", "v2", 300))
	f.engine.HandleEvent(nearbyEvent("n3", "v1", 250))

	// Departures are honoured even when new notifications are suppressed.
	prefs := entity.DefaultPreferences()
	prefs.DoNotDisturb = true
	f.prefs.set(prefs)

	f.engine.HandleEvent(entity.ProximityEvent{Type: entity.ProximityDeparted, VendorID: "v1"})

	assert.Equal(t, []string{"n2"}, activeIDs(f.engine.Active()))

	// The remaining record still expires on its own.
	f.clock.Advance(time.Minute)
	assert.Eventually(t, func() bool { return len(f.engine.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestProximityEngine_UpdatedReplacesInPlace(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 700))
	f.engine.HandleEvent(nearbyEvent("n2", "v2", 600))

	updated := nearbyEvent("", "v1", 250)
	updated.Type = entity.ProximityUpdated
	f.engine.HandleEvent(updated)

	active := f.engine.Active()
	require.Equal(t, []string{"n2", "n1"}, activeIDs(active))
	assert.Equal(t, 250.0, active[1].Event.DistanceMeters)
	assert.Equal(t, entity.PriorityHigh, active[1].Priority)

	// An update for a vendor without an active record is admitted like a new one.
	fresh := nearbyEvent("n3", "v3", 100)
	fresh.Type = entity.ProximityUpdated
	f.engine.HandleEvent(fresh)

	assert.Equal(t, []string{"n3", "n2", "n1"}, activeIDs(f.engine.Active()))
}

func TestProximityEngine_UpdatedWithOwnIDKeepsExpiryAndDedup(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 700))

	f.clock.Advance(10 * time.Second)
	updated := nearbyEvent("n9", "v1", 250)
	updated.Type = entity.ProximityUpdated
	f.engine.HandleEvent(updated)
	require.Equal(t, []string{"n9"}, activeIDs(f.engine.Active()))

	// Redelivery of either id is absorbed by the same record.
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 700))
	f.engine.HandleEvent(nearbyEvent("n9", "v1", 250))
	assert.Equal(t, []string{"n9"}, activeIDs(f.engine.Active()))

	// Expiry still counts from the first admission.
	f.clock.Advance(19 * time.Second)
	assert.Len(t, f.engine.Active(), 1)

	f.clock.Advance(time.Second)
	assert.Eventually(t, func() bool { return len(f.engine.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestProximityEngine_AcknowledgeByOriginalIDAfterUpdate(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 700))

	updated := nearbyEvent("n9", "v1", 250)
	updated.Type = entity.ProximityUpdated
	f.engine.HandleEvent(updated)

	assert.True(t, f.engine.Acknowledge("n1"))
	assert.Empty(t, f.engine.Active())
}

func TestProximityEngine_FilteredUpdateDropsRecord(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 200))
	f.engine.HandleEvent(nearbyEvent("n2", "v2", 300))

	moved := nearbyEvent("n3", "v1", 4000)
	moved.Type = entity.ProximityUpdated
	f.engine.HandleEvent(moved)

	assert.Equal(t, []string{"n2"}, activeIDs(f.engine.Active()))

	// A filtered nearby event leaves existing records alone.
	f.engine.HandleEvent(nearbyEvent("n4", "v2", 4000))
	assert.Equal(t, []string{"n2"}, activeIDs(f.engine.Active()))
}

func TestProximityEngine_CapsActiveNotifications(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)

	for i := 1; i <= 11; i++ {
		f.engine.HandleEvent(nearbyEvent(fmt.Sprintf("n%d", i), fmt.Sprintf("v%d", i), 100))
	}

	active := f.engine.Active()
	require.Len(t, active, 10)
	assert.Equal(t, "n11", active[0].ID())
	assert.Equal(t, "n2", active[9].ID())
}

func TestProximityEngine_ExpiresAfterTTL(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 200))

	f.clock.Advance(29 * time.Second)
	assert.Len(t, f.engine.Active(), 1)

	f.clock.Advance(time.Second)
	assert.Eventually(t, func() bool { return len(f.engine.Active()) == 0 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, f.channel.events(service.EventAcknowledge), "expiry is not an acknowledgement")
}

func TestProximityEngine_ExpiryIsPerRecord(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 200))
	f.clock.Advance(10 * time.Second)
	f.engine.HandleEvent(nearbyEvent("n2", "v2", 200))

	f.clock.Advance(20 * time.Second)
	assert.Eventually(t, func() bool {
		ids := activeIDs(f.engine.Active())
		return len(ids) == 1 && ids[0] == "n2"
	}, time.Second, 5*time.Millisecond)

	f.clock.Advance(10 * time.Second)
	assert.Eventually(t, func() bool { return len(f.engine.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestProximityEngine_Acknowledge(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.engine.HandleEvent(nearbyEvent("n1", "v1", 200))

	f.clock.Advance(5 * time.Second)
	require.True(t, f.engine.Acknowledge("n1"))
	assert.Empty(t, f.engine.Active())

	acks := f.channel.events(service.EventAcknowledge)
	require.Len(t, acks, 1)
	assert.JSONEq(t, `{"notificationId":"n1"}`, string(acks[0]))

	// The cancelled expiry does not fire, and a second ack is a no-op.
	f.clock.Advance(30 * time.Second)
	assert.False(t, f.engine.Acknowledge("n1"))
	assert.Len(t, f.channel.events(service.EventAcknowledge), 1)
}

func TestProximityEngine_AlertsOnlyWhenGranted(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)

	f.engine.HandleEvent(nearbyEvent("n1", "v1", 200))
	assert.Len(t, f.engine.Active(), 1, "records are kept without permission")

	f.alerter.EXPECT().RequestPermission(mock.Anything).Return(service.PermissionGranted, nil).Once()
	permission, err := f.engine.RequestAlertPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.PermissionGranted, permission)
	assert.Equal(t, service.PermissionGranted, f.engine.Permission())

	alerts := make(chan service.Alert, 1)
	f.alerter.EXPECT().
		Alert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, alert service.Alert) { alerts <- alert }).
		Return(nil).
		Once()

	f.engine.HandleEvent(nearbyEvent("n2", "v2", 120))

	select {
	case alert := <-alerts:
		assert.Equal(t, "n2", alert.Tag)
		assert.Equal(t, "Vendor v2 is nearby", alert.Title)
		assert.True(t, alert.Sound)
		assert.True(t, alert.Visual)
		assert.False(t, alert.Vibration)
		assert.Equal(t, string(entity.PriorityHigh), alert.Data["priority"])
	case <-time.After(time.Second):
		t.Fatal("alert was not raised")
	}
}

func TestProximityEngine_RequestPermissionFailure(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)
	f.alerter.EXPECT().RequestPermission(mock.Anything).Return(service.PermissionDefault, errors.New("no host")).Once()

	permission, err := f.engine.RequestAlertPermission(context.Background())

	assert.Error(t, err)
	assert.Equal(t, service.PermissionDefault, permission)
}

func TestProximityEngine_RoutesChannelEvents(t *testing.T) {
	f := createTestProximityEngine(t, "12:00", service.PermissionDefault)

	f.channel.deliver(t, service.EventVendorNearby, nearbyEvent("n1", "v1", 200))
	f.channel.deliver(t, service.EventProximityNotification, nearbyEvent("n2", "v2", 300))
	f.channel.deliver(t, service.EventVendorNearby, "not an event")

	assert.Equal(t, []string{"n2", "n1"}, activeIDs(f.engine.Active()))

	f.channel.deliver(t, service.EventVendorDeparted, map[string]string{"vendorId": "v1"})

	assert.Equal(t, []string{"n2"}, activeIDs(f.engine.Active()))
}
