package location

import (
	"context"
	"os"
	"sync"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/util"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const replayAccuracyMeters = 5

// ReplaySource plays back a recorded track, one fix per interval. Once the
// track is exhausted the last fix is repeated, like a parked device.
type ReplaySource struct {
	clock    clockwork.Clock
	interval time.Duration
	track    []orb.Point

	mu     sync.Mutex
	cursor int

	stream stream
}

var _ service.LocationSource = (*ReplaySource)(nil)

// NewReplaySource creates a source over the given track.
func NewReplaySource(clock clockwork.Clock, interval time.Duration, track []orb.Point) (*ReplaySource, error) {
	if len(track) == 0 {
		return nil, errors.New("replay track is empty")
	}
	for _, p := range track {
		if !util.ValidCoordinate(p.Lat(), p.Lon()) {
			return nil, errors.Errorf("replay track has invalid point %v", p)
		}
	}
	if interval <= 0 {
		return nil, errors.Errorf("replay interval must be positive, got %s", interval)
	}

	return &ReplaySource{
		clock:    clock,
		interval: interval,
		track:    track,
	}, nil
}

// NewFixedSource reports the same coordinates forever.
func NewFixedSource(clock clockwork.Clock, interval time.Duration, coords entity.Coordinates) (*ReplaySource, error) {
	return NewReplaySource(clock, interval, []orb.Point{util.Point(coords.Latitude, coords.Longitude)})
}

// LoadTrack reads a GeoJSON file holding a LineString, a MultiLineString or
// a FeatureCollection of those and/or Points, in travel order.
func LoadTrack(path string) ([]orb.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read track %s", path)
	}

	return ParseTrack(data)
}

// ParseTrack decodes GeoJSON bytes into track points.
func ParseTrack(data []byte) ([]orb.Point, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		var track []orb.Point
		for _, f := range fc.Features {
			track = appendGeometry(track, f.Geometry)
		}
		if len(track) == 0 {
			return nil, errors.New("feature collection holds no points")
		}

		return track, nil
	}

	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode geojson track")
	}

	track := appendGeometry(nil, g.Geometry())
	if len(track) == 0 {
		return nil, errors.Errorf("unsupported track geometry %s", g.Type)
	}

	return track, nil
}

func appendGeometry(track []orb.Point, g orb.Geometry) []orb.Point {
	switch geom := g.(type) {
	case orb.Point:
		return append(track, geom)
	case orb.MultiPoint:
		return append(track, geom...)
	case orb.LineString:
		return append(track, geom...)
	case orb.MultiLineString:
		for _, ls := range geom {
			track = append(track, ls...)
		}
	}

	return track
}

func (s *ReplaySource) current() entity.Position {
	s.mu.Lock()
	p := s.track[s.cursor]
	s.mu.Unlock()

	return entity.Position{
		Coordinates: entity.Coordinates{Latitude: p.Lat(), Longitude: p.Lon()},
		Accuracy:    replayAccuracyMeters,
		Timestamp:   s.clock.Now(),
	}
}

func (s *ReplaySource) advance() {
	s.mu.Lock()
	if s.cursor < len(s.track)-1 {
		s.cursor++
	}
	s.mu.Unlock()
}

func (s *ReplaySource) CurrentPosition(ctx context.Context, _ entity.LocationOptions) (entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return entity.Position{}, timeoutError(err)
	}

	return s.current(), nil
}

func (s *ReplaySource) Start(ctx context.Context, _ entity.LocationOptions) (<-chan entity.PositionSample, error) {
	return s.stream.start(ctx, func(ctx context.Context, emit func(entity.PositionSample) bool) {
		ticker := s.clock.NewTicker(s.interval)
		defer ticker.Stop()

		if !emit(entity.PositionSample{Position: s.current()}) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				s.advance()
				if !emit(entity.PositionSample{Position: s.current()}) {
					return
				}
			}
		}
	})
}

func (s *ReplaySource) Stop() {
	s.stream.stop()
}
