package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"
	"nearby/internal/util"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// ProximityEngineParams holds dependencies for the notification engine, injected by Fx.
type ProximityEngineParams struct {
	fx.In

	Channel     service.EventChannel
	Preferences usecase.PreferenceUsecase
	Alerter     service.HostAlerter
	Clock       clockwork.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

type activeRecord struct {
	record entity.NotificationRecord
	timer  clockwork.Timer
	ids    []string // every notification id delivered for this record
}

func (r *activeRecord) holds(id string) bool {
	return slices.Contains(r.ids, id)
}

type proximityEngine struct {
	channel   service.EventChannel
	prefs     usecase.PreferenceUsecase
	alerter   service.HostAlerter
	clock     clockwork.Clock
	logger    *slog.Logger
	ttl       time.Duration
	maxActive int
	zone      *time.Location

	mu          sync.Mutex
	active      []*activeRecord // newest first
	permission  service.Permission
	subscribers []func([]entity.NotificationRecord)
	closed      bool
}

// NewProximityEngine creates the engine and routes the proximity events of
// the channel into it.
func NewProximityEngine(params ProximityEngineParams) (usecase.ProximityUsecase, error) {
	zone := time.Local
	if tz := params.Config.Notification.TimeZone; tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, errors.Wrapf(err, "load time zone %q", tz)
		}
		zone = loc
	}

	e := &proximityEngine{
		channel:    params.Channel,
		prefs:      params.Preferences,
		alerter:    params.Alerter,
		clock:      params.Clock,
		logger:     params.Logger.With(slog.String("component", "proximity")),
		ttl:        params.Config.Notification.TTL,
		maxActive:  params.Config.Notification.MaxActive,
		zone:       zone,
		permission: params.Alerter.Permission(),
	}

	e.route(service.EventVendorNearby, entity.ProximityNearby)
	e.route(service.EventProximityNotification, entity.ProximityNearby)
	e.route(service.EventVendorUpdated, entity.ProximityUpdated)
	e.route(service.EventVendorDeparted, entity.ProximityDeparted)

	return e, nil
}

func (e *proximityEngine) route(event string, kind entity.ProximityEventType) {
	e.channel.On(event, func(payload json.RawMessage) {
		var ev entity.ProximityEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			e.logger.Warn("Discarding malformed proximity event", slog.String("event", event), slog.Any("error", err))

			return
		}
		if ev.Type == "" || event != service.EventProximityNotification {
			ev.Type = kind
		}
		e.HandleEvent(ev)
	})
}

func (e *proximityEngine) HandleEvent(event entity.ProximityEvent) {
	if event.VendorID == "" {
		e.logger.Warn("Discarding proximity event without vendor", slog.String("notification_id", event.NotificationID))

		return
	}

	if event.Type == entity.ProximityDeparted {
		e.removeVendor(event.VendorID)

		return
	}

	if reason, ok := e.admissible(event); !ok {
		e.logger.Debug("Proximity event filtered",
			slog.String("notification_id", event.NotificationID),
			slog.String("vendor_id", event.VendorID),
			slog.String("reason", reason))

		// The vendor no longer qualifies, so its record would go stale.
		if event.Type == entity.ProximityUpdated {
			e.removeVendor(event.VendorID)
		}

		return
	}

	if event.Type == entity.ProximityUpdated && e.replace(event) {
		return
	}

	e.admit(event)
}

// admissible runs the preference filters in order and names the first one
// that rejects the event.
func (e *proximityEngine) admissible(event entity.ProximityEvent) (string, bool) {
	prefs := e.prefs.Current()

	if !prefs.Enabled || prefs.DoNotDisturb {
		return "suppressed", false
	}
	if prefs.QuietHours.Contains(e.clock.Now().In(e.zone).Format("15:04")) {
		return "quiet hours", false
	}
	if event.DistanceMeters > prefs.RadiusMeters {
		return "out of radius", false
	}
	if len(prefs.VendorCategories) > 0 && !slices.ContainsFunc(event.Categories(), func(c string) bool {
		return slices.Contains(prefs.VendorCategories, c)
	}) {
		return "category", false
	}
	if event.VendorRating != nil && *event.VendorRating < prefs.MinimumRating {
		return "rating", false
	}

	return "", true
}

// replace swaps the content of the vendor's active record in place. It
// reports false when the vendor has no active record.
func (e *proximityEngine) replace(event entity.ProximityEvent) bool {
	e.mu.Lock()
	idx := slices.IndexFunc(e.active, func(r *activeRecord) bool {
		return r.record.Event.VendorID == event.VendorID
	})
	if idx < 0 || e.closed {
		e.mu.Unlock()

		return false
	}
	rec := e.active[idx]
	if event.NotificationID == "" {
		event.NotificationID = rec.record.Event.NotificationID
	} else if !rec.holds(event.NotificationID) {
		rec.ids = append(rec.ids, event.NotificationID)
	}
	rec.record.Event = event
	rec.record.Priority = entity.PriorityForDistance(event.DistanceMeters)
	snapshot := e.snapshotLocked()
	subscribers := append([]func([]entity.NotificationRecord){}, e.subscribers...)
	e.mu.Unlock()

	e.publish(subscribers, snapshot)

	return true
}

func (e *proximityEngine) admit(event entity.ProximityEvent) {
	if event.NotificationID == "" {
		e.logger.Warn("Discarding proximity event without notification id", slog.String("vendor_id", event.VendorID))

		return
	}
	if event.EstimatedArrival == "" {
		event.EstimatedArrival = util.EstimateArrival(event.DistanceMeters)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()

		return
	}
	if slices.ContainsFunc(e.active, func(r *activeRecord) bool {
		return r.holds(event.NotificationID)
	}) {
		e.mu.Unlock()

		return
	}

	now := e.clock.Now()
	rec := &activeRecord{
		record: entity.NotificationRecord{
			Event:     event,
			Priority:  entity.PriorityForDistance(event.DistanceMeters),
			State:     entity.RecordActive,
			CreatedAt: now,
			ExpiresAt: now.Add(e.ttl),
		},
		ids: []string{event.NotificationID},
	}
	id := event.NotificationID
	rec.timer = e.clock.AfterFunc(e.ttl, func() { e.expire(rec, id) })

	e.active = append([]*activeRecord{rec}, e.active...)
	for len(e.active) > e.maxActive {
		evicted := e.active[len(e.active)-1]
		evicted.timer.Stop()
		e.active = e.active[:len(e.active)-1]
	}
	granted := e.permission == service.PermissionGranted
	snapshot := e.snapshotLocked()
	subscribers := append([]func([]entity.NotificationRecord){}, e.subscribers...)
	e.mu.Unlock()

	e.logger.Info("Vendor nearby",
		slog.String("notification_id", id),
		slog.String("vendor", event.VendorName),
		slog.Float64("distance_m", event.DistanceMeters))

	e.publish(subscribers, snapshot)

	if granted {
		e.raiseAlert(rec.record)
	}
}

// raiseAlert hands the alert to the host without blocking the caller.
func (e *proximityEngine) raiseAlert(record entity.NotificationRecord) {
	types := e.prefs.Current().NotificationTypes
	if !types.Sound && !types.Visual && !types.Vibration {
		return
	}

	event := record.Event
	alert := service.Alert{
		Title: fmt.Sprintf("%s is nearby", event.VendorName),
		Body:  fmt.Sprintf("%.0f m away, arriving in %s", event.DistanceMeters, event.EstimatedArrival),
		Tag:   event.NotificationID,
		Data: map[string]string{
			"notificationId": event.NotificationID,
			"vendorId":       event.VendorID,
			"priority":       string(record.Priority),
		},
		Sound:     types.Sound,
		Visual:    types.Visual,
		Vibration: types.Vibration,
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("Alerter panicked", slog.Any("panic", r))
			}
		}()

		if err := e.alerter.Alert(context.Background(), alert); err != nil {
			e.logger.Warn("Failed to raise alert", slog.String("notification_id", alert.Tag), slog.Any("error", err))
		}
	}()
}

// expire removes rec itself; updates may have changed its notification id.
func (e *proximityEngine) expire(rec *activeRecord, id string) {
	if e.remove(func(r *activeRecord) bool { return r == rec }) > 0 {
		e.logger.Debug("Notification expired", slog.String("notification_id", id))
	}
}

func (e *proximityEngine) removeVendor(vendorID string) {
	if n := e.remove(func(r *activeRecord) bool { return r.record.Event.VendorID == vendorID }); n > 0 {
		e.logger.Info("Vendor departed", slog.String("vendor_id", vendorID), slog.Int("removed", n))
	}
}

// remove drops every matching record, cancelling its timer, and returns how
// many were removed.
func (e *proximityEngine) remove(match func(*activeRecord) bool) int {
	e.mu.Lock()
	kept := e.active[:0]
	removed := 0
	for _, r := range e.active {
		if match(r) {
			r.timer.Stop()
			removed++

			continue
		}
		kept = append(kept, r)
	}
	clear(e.active[len(kept):])
	e.active = kept
	if removed == 0 {
		e.mu.Unlock()

		return 0
	}
	snapshot := e.snapshotLocked()
	subscribers := append([]func([]entity.NotificationRecord){}, e.subscribers...)
	e.mu.Unlock()

	e.publish(subscribers, snapshot)

	return removed
}

func (e *proximityEngine) Acknowledge(notificationID string) bool {
	if e.remove(func(r *activeRecord) bool { return r.holds(notificationID) }) == 0 {
		return false
	}

	e.channel.Send(service.EventAcknowledge, service.AcknowledgePayload{NotificationID: notificationID})

	return true
}

func (e *proximityEngine) Active() []entity.NotificationRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

func (e *proximityEngine) Permission() service.Permission {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.permission
}

func (e *proximityEngine) RequestAlertPermission(ctx context.Context) (service.Permission, error) {
	permission, err := e.alerter.RequestPermission(ctx)
	if err != nil {
		return e.Permission(), errors.Wrap(err, "request alert permission")
	}

	e.mu.Lock()
	e.permission = permission
	e.mu.Unlock()

	return permission, nil
}

func (e *proximityEngine) Subscribe(fn func([]entity.NotificationRecord)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.subscribers = append(e.subscribers, fn)
}

func (e *proximityEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	for _, r := range e.active {
		r.timer.Stop()
	}
	e.active = nil
}

func (e *proximityEngine) snapshotLocked() []entity.NotificationRecord {
	records := make([]entity.NotificationRecord, len(e.active))
	for i, r := range e.active {
		records[i] = r.record
	}

	return records
}

func (e *proximityEngine) publish(subscribers []func([]entity.NotificationRecord), snapshot []entity.NotificationRecord) {
	for _, fn := range subscribers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error("Notification subscriber panicked", slog.Any("panic", r))
				}
			}()
			fn(slices.Clone(snapshot))
		}()
	}
}
