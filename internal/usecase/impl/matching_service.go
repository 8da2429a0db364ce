package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/constants"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"
	"nearby/internal/util"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

const (
	// updateThresholdMeters is how far a matched vendor must move before
	// the consumer gets a vendor-updated event.
	updateThresholdMeters = 10

	feedBufferSize     = 256
	feedPublishTimeout = 5 * time.Second
)

// MatchingServiceParams holds dependencies for the hub matcher, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	VendorRepo     repository.VendorRepository
	ProductRepo    repository.ProductRepository
	PreferenceRepo repository.PreferenceRepository
	AckRepo        repository.AcknowledgementRepository
	Notifier       service.Notifier
	Publisher      service.EventPublisher
	Metrics        service.HubMetrics
	Clock          clockwork.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

type nearbyLink struct {
	notificationID string
	distance       float64
}

type liveVendor struct {
	id        string
	name      string
	rating    *float64
	coords    entity.Coordinates
	accepting bool
	radius    float64
	products  []entity.Product
	nearby    map[string]*nearbyLink // by consumer id
}

type liveConsumer struct {
	id     string
	coords *entity.Coordinates
	prefs  entity.NotificationPreferences
}

type outbound struct {
	userID string
	event  string
	body   entity.ProximityEvent
}

type matchingService struct {
	vendorRepo     repository.VendorRepository
	productRepo    repository.ProductRepository
	preferenceRepo repository.PreferenceRepository
	ackRepo        repository.AcknowledgementRepository
	notifier       service.Notifier
	publisher      service.EventPublisher
	metrics        service.HubMetrics
	clock          clockwork.Clock
	cfg            *config.MatchingConfig
	presenceCfg    *config.PresenceConfig
	logger         *slog.Logger

	// cooldown holds "vendor:consumer" keys of recently sent vendor-nearby events.
	cooldown *cache.Cache

	feed      chan *service.PresenceEvent
	feedDone  chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex
	vendors   map[string]*liveVendor
	consumers map[string]*liveConsumer
}

// NewMatchingService creates the hub matcher and starts its presence feed worker.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	s := &matchingService{
		vendorRepo:     params.VendorRepo,
		productRepo:    params.ProductRepo,
		preferenceRepo: params.PreferenceRepo,
		ackRepo:        params.AckRepo,
		notifier:       params.Notifier,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		clock:          params.Clock,
		cfg:            params.Config.Matching,
		presenceCfg:    params.Config.Presence,
		logger:         params.Logger.With(slog.String("component", "matching")),
		cooldown:       cache.New(params.Config.Matching.Cooldown, 2*params.Config.Matching.Cooldown),
		feed:           make(chan *service.PresenceEvent, feedBufferSize),
		feedDone:       make(chan struct{}),
		vendors:        make(map[string]*liveVendor),
		consumers:      make(map[string]*liveConsumer),
	}

	go s.runFeed()

	return s
}

func (s *matchingService) VendorOnline(ctx context.Context, vendor entity.Identity, coords entity.Coordinates) error {
	if !util.ValidCoordinate(coords.Latitude, coords.Longitude) {
		return domainerrors.ErrInvalidCoordinates
	}

	profile := s.vendorProfile(ctx, vendor)

	products, err := s.productRepo.FindAvailableByVendor(ctx, vendor.UserID, s.cfg.MaxProducts)
	if err != nil {
		s.logger.Warn("Failed to load vendor products",
			slog.String("vendor_id", vendor.UserID),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	v, ok := s.vendors[vendor.UserID]
	if !ok {
		v = &liveVendor{id: vendor.UserID, nearby: make(map[string]*nearbyLink)}
		s.vendors[vendor.UserID] = v
	}
	v.name = profile.Name
	v.rating = profile.Rating
	v.radius = profile.DeliveryRadiusMeters
	v.accepting = profile.AcceptingOrders
	v.coords = coords
	v.products = products
	msgs := s.matchVendorLocked(v)
	s.mu.Unlock()

	s.logger.Info("Vendor online",
		slog.String("vendor_id", vendor.UserID),
		slog.Bool("accepting_orders", profile.AcceptingOrders),
		slog.Int("products", len(products)),
	)

	s.deliver(msgs)
	s.enqueue(constants.PresenceKindOnline, vendor.UserID, coords, true, profile.AcceptingOrders, s.clock.Now())

	return nil
}

// vendorProfile merges the stored profile with the connecting identity.
// Lookup failures fall back to defaults so a vendor can always go live.
func (s *matchingService) vendorProfile(ctx context.Context, vendor entity.Identity) entity.Vendor {
	profile := entity.Vendor{
		ID:                   vendor.UserID,
		Name:                 vendor.Name,
		DeliveryRadiusMeters: s.presenceCfg.DefaultRadius,
		AcceptingOrders:      true,
	}

	stored, err := s.vendorRepo.FindVendor(ctx, vendor.UserID)
	switch {
	case err == nil:
		profile.Rating = stored.Rating
		profile.AcceptingOrders = stored.AcceptingOrders
		if stored.DeliveryRadiusMeters > 0 {
			profile.DeliveryRadiusMeters = stored.DeliveryRadiusMeters
		}
		if profile.Name == "" {
			profile.Name = stored.Name
		}
	case errors.Is(err, repository.ErrVendorNotFound):
	default:
		s.logger.Warn("Failed to load vendor profile",
			slog.String("vendor_id", vendor.UserID),
			slog.Any("error", err),
		)
	}

	if vendor.Name != "" && (stored == nil || stored.Name != vendor.Name) {
		upsert := profile
		if err := s.vendorRepo.UpsertVendor(ctx, &upsert); err != nil {
			s.logger.Warn("Failed to store vendor profile",
				slog.String("vendor_id", vendor.UserID),
				slog.Any("error", err),
			)
		}
	}

	if profile.Name == "" {
		profile.Name = vendor.UserID
	}

	return profile
}

func (s *matchingService) VendorMoved(ctx context.Context, vendorID string, coords entity.Coordinates, at time.Time) error {
	if !util.ValidCoordinate(coords.Latitude, coords.Longitude) {
		return domainerrors.ErrInvalidCoordinates
	}

	s.mu.Lock()
	v, ok := s.vendors[vendorID]
	if !ok {
		s.mu.Unlock()

		return domainerrors.ErrVendorOffline
	}
	v.coords = coords
	accepting := v.accepting
	msgs := s.matchVendorLocked(v)
	s.mu.Unlock()

	s.deliver(msgs)
	s.enqueue(constants.PresenceKindLocation, vendorID, coords, true, accepting, at)

	return nil
}

func (s *matchingService) VendorStatus(ctx context.Context, vendorID string, status usecase.VendorStatus) error {
	if status.DeliveryRadius < s.presenceCfg.MinRadius || status.DeliveryRadius > s.presenceCfg.MaxRadius {
		return domainerrors.ErrInvalidRadius
	}

	s.mu.Lock()
	v, ok := s.vendors[vendorID]
	if !ok {
		s.mu.Unlock()
		if status.AcceptingOrders {
			return domainerrors.ErrVendorOffline
		}

		return nil
	}
	v.accepting = status.AcceptingOrders
	v.radius = status.DeliveryRadius
	coords := v.coords
	msgs := s.matchVendorLocked(v)
	s.mu.Unlock()

	s.deliver(msgs)
	s.enqueue(constants.PresenceKindStatus, vendorID, coords, true, status.AcceptingOrders, s.clock.Now())

	return nil
}

func (s *matchingService) VendorOffline(ctx context.Context, vendorID string) {
	s.mu.Lock()
	v, ok := s.vendors[vendorID]
	if !ok {
		s.mu.Unlock()

		return
	}
	delete(s.vendors, vendorID)

	msgs := make([]outbound, 0, len(v.nearby))
	for consumerID, link := range v.nearby {
		distance := 0.0
		if c, ok := s.consumers[consumerID]; ok && c.coords != nil {
			distance = util.Distance(c.coords.Latitude, c.coords.Longitude, v.coords.Latitude, v.coords.Longitude)
		}
		msgs = append(msgs, s.proximity(v, consumerID, entity.ProximityDeparted, link.notificationID, distance))
	}
	s.mu.Unlock()

	s.logger.Info("Vendor offline",
		slog.String("vendor_id", vendorID),
		slog.Int("departed", len(msgs)),
	)

	s.deliver(msgs)
	s.enqueue(constants.PresenceKindOffline, vendorID, v.coords, false, false, s.clock.Now())
}

func (s *matchingService) ConsumerOnline(ctx context.Context, consumer entity.Identity) error {
	prefs := entity.DefaultPreferences()

	stored, err := s.preferenceRepo.FindPreferences(ctx, consumer.UserID)
	switch {
	case err == nil:
		prefs = stored.Clone()
	case errors.Is(err, repository.ErrPreferencesNotFound):
	default:
		s.logger.Warn("Failed to load consumer preferences, using defaults",
			slog.String("consumer_id", consumer.UserID),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	c, ok := s.consumers[consumer.UserID]
	if !ok {
		c = &liveConsumer{id: consumer.UserID}
		s.consumers[consumer.UserID] = c
	}
	c.prefs = prefs
	msgs := s.matchConsumerLocked(c)
	s.mu.Unlock()

	s.deliver(msgs)

	return nil
}

func (s *matchingService) ConsumerMoved(ctx context.Context, consumerID string, coords entity.Coordinates) error {
	if !util.ValidCoordinate(coords.Latitude, coords.Longitude) {
		return domainerrors.ErrInvalidCoordinates
	}

	s.mu.Lock()
	c, ok := s.consumers[consumerID]
	if !ok {
		c = &liveConsumer{id: consumerID, prefs: entity.DefaultPreferences()}
		s.consumers[consumerID] = c
	}
	c.coords = &coords
	msgs := s.matchConsumerLocked(c)
	s.mu.Unlock()

	s.deliver(msgs)

	return nil
}

func (s *matchingService) ConsumerOffline(consumerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.consumers, consumerID)
	for _, v := range s.vendors {
		delete(v.nearby, consumerID)
	}
}

func (s *matchingService) ApplyPreferences(consumerID string, prefs entity.NotificationPreferences) {
	s.mu.Lock()
	c, ok := s.consumers[consumerID]
	if !ok {
		s.mu.Unlock()

		return
	}
	c.prefs = prefs.Clone()
	msgs := s.matchConsumerLocked(c)
	s.mu.Unlock()

	s.deliver(msgs)
}

func (s *matchingService) Acknowledge(ctx context.Context, consumerID, notificationID string) error {
	if notificationID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("notificationId is required")
	}

	s.metrics.AcknowledgementReceived()

	err := s.ackRepo.RecordAcknowledgement(ctx, &entity.Acknowledgement{
		NotificationID: notificationID,
		ConsumerID:     consumerID,
		AcknowledgedAt: s.clock.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "record acknowledgement")
	}

	return nil
}

func (s *matchingService) Broadcast(ctx context.Context, vendor entity.Identity, coords entity.Coordinates, message string) (int, error) {
	if !util.ValidCoordinate(coords.Latitude, coords.Longitude) {
		return 0, domainerrors.ErrInvalidCoordinates
	}

	s.mu.Lock()
	v, live := s.vendors[vendor.UserID]
	var sender liveVendor
	if live {
		sender = *v
	}
	s.mu.Unlock()

	if !live {
		profile := s.vendorProfile(ctx, vendor)
		products, err := s.productRepo.FindAvailableByVendor(ctx, vendor.UserID, s.cfg.MaxProducts)
		if err != nil {
			return 0, errors.Wrap(err, "load vendor products")
		}
		sender = liveVendor{
			id:       vendor.UserID,
			name:     profile.Name,
			rating:   profile.Rating,
			radius:   profile.DeliveryRadiusMeters,
			products: products,
		}
	}
	sender.coords = coords
	sender.accepting = true

	s.mu.Lock()
	msgs := make([]outbound, 0)
	for _, c := range s.consumers {
		limit, eligible := s.limit(&sender, c)
		if !eligible || c.coords == nil {
			continue
		}
		distance := util.Distance(c.coords.Latitude, c.coords.Longitude, coords.Latitude, coords.Longitude)
		if distance > limit {
			continue
		}
		msg := s.proximity(&sender, c.id, entity.ProximityNearby, uuid.NewString(), distance)
		msg.event = service.EventProximityNotification
		msg.body.Message = message
		msgs = append(msgs, msg)
	}
	s.mu.Unlock()

	sent := s.deliver(msgs)

	s.logger.Info("Nearby broadcast",
		slog.String("vendor_id", vendor.UserID),
		slog.Int("matched", len(msgs)),
		slog.Int("delivered", sent),
	)

	return sent, nil
}

func (s *matchingService) Stats() entity.HubStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := entity.HubStats{
		OnlineVendors: len(s.vendors),
		Consumers:     len(s.consumers),
	}
	for _, v := range s.vendors {
		if v.accepting {
			stats.AcceptingVendors++
		}
	}
	for _, c := range s.consumers {
		if c.coords != nil {
			stats.LocatedConsumers++
		}
	}

	return stats
}

func (s *matchingService) Close() {
	s.closeOnce.Do(func() {
		close(s.feed)
		<-s.feedDone
	})
}

func (s *matchingService) matchVendorLocked(v *liveVendor) []outbound {
	var msgs []outbound
	for _, c := range s.consumers {
		if msg, ok := s.evaluate(v, c); ok {
			msgs = append(msgs, msg)
		}
	}

	return msgs
}

func (s *matchingService) matchConsumerLocked(c *liveConsumer) []outbound {
	var msgs []outbound
	for _, v := range s.vendors {
		if msg, ok := s.evaluate(v, c); ok {
			msgs = append(msgs, msg)
		}
	}

	return msgs
}

// limit returns the matching radius for the pair and whether the consumer
// wants to hear about the vendor at all.
func (s *matchingService) limit(v *liveVendor, c *liveConsumer) (float64, bool) {
	if !v.accepting || !c.prefs.Enabled || c.prefs.DoNotDisturb {
		return 0, false
	}

	limit := math.Min(s.cfg.MaxSearchRadiusMeters, v.radius)
	if c.prefs.RadiusMeters > 0 {
		limit = math.Min(limit, c.prefs.RadiusMeters)
	}

	return limit, true
}

// evaluate decides which event, if any, the consumer gets about the vendor.
// The caller holds s.mu.
func (s *matchingService) evaluate(v *liveVendor, c *liveConsumer) (outbound, bool) {
	if c.coords == nil {
		return outbound{}, false
	}

	link := v.nearby[c.id]
	consumerPt := util.Point(c.coords.Latitude, c.coords.Longitude)
	vendorPt := util.Point(v.coords.Latitude, v.coords.Longitude)

	limit, eligible := s.limit(v, c)
	inRange := false
	distance := 0.0
	if eligible && util.BoundAround(consumerPt, limit).Contains(vendorPt) {
		distance = util.DistanceMeters(consumerPt, vendorPt)
		inRange = distance <= limit
	}

	switch {
	case inRange && link != nil:
		if math.Abs(distance-link.distance) < updateThresholdMeters {
			return outbound{}, false
		}
		link.distance = distance

		return s.proximity(v, c.id, entity.ProximityUpdated, link.notificationID, distance), true

	case inRange:
		key := v.id + ":" + c.id
		if _, cooling := s.cooldown.Get(key); cooling {
			return outbound{}, false
		}
		id := uuid.NewString()
		v.nearby[c.id] = &nearbyLink{notificationID: id, distance: distance}
		s.cooldown.SetDefault(key, id)

		return s.proximity(v, c.id, entity.ProximityNearby, id, distance), true

	case link != nil:
		delete(v.nearby, c.id)
		if distance == 0 {
			distance = util.DistanceMeters(consumerPt, vendorPt)
		}

		return s.proximity(v, c.id, entity.ProximityDeparted, link.notificationID, distance), true
	}

	return outbound{}, false
}

func (s *matchingService) proximity(v *liveVendor, consumerID string, kind entity.ProximityEventType, notificationID string, distance float64) outbound {
	event := service.EventVendorNearby
	switch kind {
	case entity.ProximityUpdated:
		event = service.EventVendorUpdated
	case entity.ProximityDeparted:
		event = service.EventVendorDeparted
	}

	body := entity.ProximityEvent{
		Type:           kind,
		NotificationID: notificationID,
		VendorID:       v.id,
		VendorName:     v.name,
		VendorRating:   v.rating,
		DistanceMeters: math.Round(distance),
		Coordinates:    v.coords,
		Timestamp:      s.clock.Now().UTC(),
	}
	if kind != entity.ProximityDeparted {
		body.Products = append([]entity.Product{}, v.products...)
		body.EstimatedArrival = util.EstimateArrival(distance)
	}

	return outbound{userID: consumerID, event: event, body: body}
}

// deliver hands events to the notifier outside the registry lock.
func (s *matchingService) deliver(msgs []outbound) int {
	sent := 0
	for _, msg := range msgs {
		if !s.notifier.NotifyUser(msg.userID, msg.event, msg.body) {
			s.metrics.EventDropped(service.DropBufferFull)

			continue
		}
		sent++
		s.metrics.ProximitySent(msg.event)
	}

	return sent
}

func (s *matchingService) enqueue(kind, vendorID string, coords entity.Coordinates, online, accepting bool, at time.Time) {
	event := &service.PresenceEvent{
		EventID:         uuid.NewString(),
		Kind:            kind,
		VendorID:        vendorID,
		Latitude:        coords.Latitude,
		Longitude:       coords.Longitude,
		IsOnline:        online,
		AcceptingOrders: accepting,
		OccurredAt:      at.UTC().Format(time.RFC3339),
	}

	defer func() {
		// Close races with a late connection: the feed is already shut.
		if recover() != nil {
			s.metrics.EventDropped(service.DropFeedFull)
		}
	}()

	select {
	case s.feed <- event:
	default:
		s.metrics.EventDropped(service.DropFeedFull)
		s.logger.Warn("Presence feed full, dropping event",
			slog.String("vendor_id", vendorID),
			slog.String("kind", kind),
		)
	}
}

// runFeed publishes presence events one at a time so the feed preserves
// per-vendor order.
func (s *matchingService) runFeed() {
	defer close(s.feedDone)

	for event := range s.feed {
		ctx, cancel := context.WithTimeout(context.Background(), feedPublishTimeout)
		err := s.publisher.PublishPresenceEvent(ctx, event)
		cancel()

		s.metrics.PresencePublished(event.Kind, err)
		if err != nil {
			s.logger.Warn("Failed to publish presence event",
				slog.String("event_id", event.EventID),
				slog.String("vendor_id", event.VendorID),
				slog.Any("error", err),
			)
		}
	}
}
