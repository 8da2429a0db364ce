package location

import (
	"context"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/errors"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[121.5000, 25.0000], [121.5010, 25.0000]]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [121.5020, 25.0000]}}
  ]
}`

func receive(t *testing.T, ch <-chan entity.PositionSample) entity.PositionSample {
	t.Helper()

	select {
	case sample, ok := <-ch:
		require.True(t, ok, "stream closed")

		return sample
	case <-time.After(2 * time.Second):
		t.Fatal("no sample received")

		return entity.PositionSample{}
	}
}

func TestParseTrack(t *testing.T) {
	track, err := ParseTrack([]byte(trackJSON))
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{{121.5000, 25.0000}, {121.5010, 25.0000}, {121.5020, 25.0000}}, track)

	track, err = ParseTrack([]byte(`{"type":"LineString","coordinates":[[1,2],[3,4]]}`))
	require.NoError(t, err)
	assert.Len(t, track, 2)

	_, err = ParseTrack([]byte(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`))
	assert.Error(t, err)

	_, err = ParseTrack([]byte(`not json`))
	assert.Error(t, err)
}

func TestNewReplaySource_Validation(t *testing.T) {
	clock := clockwork.NewFakeClock()

	_, err := NewReplaySource(clock, time.Second, nil)
	assert.Error(t, err)

	_, err = NewReplaySource(clock, 0, []orb.Point{{121.5, 25}})
	assert.Error(t, err)

	_, err = NewReplaySource(clock, time.Second, []orb.Point{{200, 25}})
	assert.Error(t, err)
}

func TestReplaySource_StreamsTrackAndHoldsLastFix(t *testing.T) {
	clock := clockwork.NewFakeClock()
	track, err := ParseTrack([]byte(trackJSON))
	require.NoError(t, err)

	source, err := NewReplaySource(clock, 5*time.Second, track)
	require.NoError(t, err)

	samples, err := source.Start(context.Background(), entity.LocationOptions{})
	require.NoError(t, err)
	defer source.Stop()

	first := receive(t, samples)
	require.NoError(t, first.Err)
	assert.InDelta(t, 121.5000, first.Position.Longitude, 1e-9)

	for _, want := range []float64{121.5010, 121.5020, 121.5020} {
		require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
		clock.Advance(5 * time.Second)
		sample := receive(t, samples)
		assert.InDelta(t, want, sample.Position.Longitude, 1e-9)
	}
}

func TestReplaySource_StopIsSynchronous(t *testing.T) {
	clock := clockwork.NewFakeClock()
	source, err := NewFixedSource(clock, time.Second, entity.Coordinates{Latitude: 25, Longitude: 121.5})
	require.NoError(t, err)

	samples, err := source.Start(context.Background(), entity.LocationOptions{})
	require.NoError(t, err)
	receive(t, samples)

	source.Stop()

	_, ok := <-samples
	assert.False(t, ok, "stream must be closed once Stop returns")

	// A stopped source can be started again.
	samples, err = source.Start(context.Background(), entity.LocationOptions{})
	require.NoError(t, err)
	receive(t, samples)
	source.Stop()
}

func TestReplaySource_StartTwice(t *testing.T) {
	clock := clockwork.NewFakeClock()
	source, err := NewFixedSource(clock, time.Second, entity.Coordinates{Latitude: 25, Longitude: 121.5})
	require.NoError(t, err)

	_, err = source.Start(context.Background(), entity.LocationOptions{})
	require.NoError(t, err)
	defer source.Stop()

	_, err = source.Start(context.Background(), entity.LocationOptions{})
	assert.ErrorIs(t, err, ErrAlreadyWatching)
}

func TestManualSource_CurrentPositionTimesOut(t *testing.T) {
	clock := clockwork.NewFakeClock()
	source := NewManualSource(clock)

	errCh := make(chan error, 1)
	go func() {
		_, err := source.CurrentPosition(context.Background(), entity.LocationOptions{Timeout: 10 * time.Second})
		errCh <- err
	}()

	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	clock.Advance(10 * time.Second)

	err := <-errCh
	var locErr *domainerrors.LocationError
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, domainerrors.LocationTimeout, locErr.Kind)
}

func TestManualSource_CurrentPositionWaitsForFix(t *testing.T) {
	clock := clockwork.NewFakeClock()
	source := NewManualSource(clock)

	posCh := make(chan entity.Position, 1)
	go func() {
		pos, err := source.CurrentPosition(context.Background(), entity.LocationOptions{Timeout: time.Minute})
		assert.NoError(t, err)
		posCh <- pos
	}()

	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	source.Push(entity.Coordinates{Latitude: 25, Longitude: 121.5}, 3)

	select {
	case pos := <-posCh:
		assert.Equal(t, 25.0, pos.Latitude)
	case <-time.After(2 * time.Second):
		t.Fatal("fix not delivered")
	}
}

func TestManualSource_MaxAge(t *testing.T) {
	clock := clockwork.NewFakeClock()
	source := NewManualSource(clock)
	source.Push(entity.Coordinates{Latitude: 25, Longitude: 121.5}, 3)

	pos, err := source.CurrentPosition(context.Background(), entity.LocationOptions{MaxAge: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, 121.5, pos.Longitude)

	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = source.CurrentPosition(ctx, entity.LocationOptions{MaxAge: time.Minute})
	assert.Error(t, err, "stale fix must not be reused")
}

func TestManualSource_PermissionDenied(t *testing.T) {
	clock := clockwork.NewFakeClock()
	source := NewManualSource(clock)

	samples, err := source.Start(context.Background(), entity.LocationOptions{})
	require.NoError(t, err)
	defer source.Stop()

	source.Push(entity.Coordinates{Latitude: 25, Longitude: 121.5}, 3)
	sample := receive(t, samples)
	require.NoError(t, sample.Err)

	source.SetDenied(true)
	sample = receive(t, samples)
	var locErr *domainerrors.LocationError
	require.True(t, errors.As(sample.Err, &locErr))
	assert.Equal(t, domainerrors.LocationPermissionDenied, locErr.Kind)

	_, ok := <-samples
	assert.False(t, ok, "error sample is terminal")

	_, err = source.CurrentPosition(context.Background(), entity.LocationOptions{})
	assert.Error(t, err)
}
