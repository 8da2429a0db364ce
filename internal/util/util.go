// Package util holds small pure helpers shared by the agents and the hub.
package util

import (
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusMeters is the mean spherical Earth radius used for distances.
	EarthRadiusMeters = 6371000.0

	// WalkingSpeedKmh is the assumed vendor speed for arrival estimates.
	WalkingSpeedKmh = 5.0
)

// ValidCoordinate reports whether lat/lng are finite and within Earth bounds.
// Callers must reject invalid coordinates before computing distances.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Point builds an orb point from latitude/longitude in degrees.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceMeters returns the haversine great-circle distance between a and b.
func DistanceMeters(a, b orb.Point) float64 {
	lat1 := deg2rad(a.Lat())
	lat2 := deg2rad(b.Lat())
	deltaLat := lat2 - lat1
	deltaLng := deg2rad(b.Lon() - a.Lon())

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// BoundAround returns a box enclosing every point within meters of center.
// It is a cheap pre-filter before DistanceMeters; orb sizes bounds with a
// larger Earth radius, so the distance is scaled to stay inclusive.
func BoundAround(center orb.Point, meters float64) orb.Bound {
	return geo.NewBoundAroundPoint(center, meters*orb.EarthRadius/EarthRadiusMeters)
}

// Distance is DistanceMeters over raw degree pairs.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceMeters(Point(lat1, lng1), Point(lat2, lng2))
}

// ArrivalMinutes returns the walking time for the distance, rounded up to whole minutes.
func ArrivalMinutes(distanceMeters float64) int {
	return int(math.Ceil(distanceMeters * 60 / (WalkingSpeedKmh * 1000)))
}

// EstimateArrival renders a delivery-time estimate for the distance.
func EstimateArrival(distanceMeters float64) string {
	minutes := ArrivalMinutes(distanceMeters)

	switch {
	case minutes < 1:
		return "Less than 1 minute"
	case minutes == 1:
		return "1 minute"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dh %dm", hours, rest)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
