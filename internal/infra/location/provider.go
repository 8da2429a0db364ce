package location

import (
	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/util"

	"github.com/jonboulle/clockwork"
)

const seedAccuracyMeters = 10

// NewSourceFromConfig picks the agent's position source. A replay file wins;
// otherwise positions are typed at the console, starting from the configured
// coordinates when they are set. The manual source is nil for replays.
func NewSourceFromConfig(cfg *config.Config, clock clockwork.Clock) (service.LocationSource, *ManualSource, error) {
	loc := cfg.Location

	if loc.ReplayFile != "" {
		track, err := LoadTrack(loc.ReplayFile)
		if err != nil {
			return nil, nil, err
		}
		replay, err := NewReplaySource(clock, loc.Interval, track)
		if err != nil {
			return nil, nil, err
		}

		return replay, nil, nil
	}

	manual := NewManualSource(clock)
	if loc.Latitude != 0 || loc.Longitude != 0 {
		if !util.ValidCoordinate(loc.Latitude, loc.Longitude) {
			return nil, nil, errors.Errorf("location %f,%f is out of range", loc.Latitude, loc.Longitude)
		}
		manual.Push(entity.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}, seedAccuracyMeters)
	}

	return manual, manual, nil
}
