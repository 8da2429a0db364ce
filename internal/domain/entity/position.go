// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Coordinates is a WGS84 point in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Position is a single fix delivered by a location source.
type Position struct {
	Coordinates
	Accuracy  float64   `json:"accuracy"`  // Horizontal accuracy in meters.
	Timestamp time.Time `json:"timestamp"` // When the fix was taken.
}

// PositionSample is an item of a location stream. A sample carrying Err is
// terminal: the stream is closed right after it.
type PositionSample struct {
	Position Position
	Err      error
}

// Accuracy is the desired accuracy class of a location request.
type Accuracy string

const (
	AccuracyHigh     Accuracy = "high"
	AccuracyBalanced Accuracy = "balanced"
	AccuracyLow      Accuracy = "low"
)

// LocationOptions configures a location request.
type LocationOptions struct {
	Accuracy Accuracy      // Desired accuracy class.
	MaxAge   time.Duration // Max age of a cached fix that may be reused.
	Timeout  time.Duration // Upper bound for acquiring a fix.
}
