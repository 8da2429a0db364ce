package entity

// QuietHours is a daily window, in local "HH:MM" time, during which
// notifications are suppressed. Start after End wraps past midnight.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start" validate:"omitempty,clock"`
	End     string `json:"end" validate:"omitempty,clock"`
}

// Contains reports whether clock ("HH:MM") falls inside the window. Both
// bounds are inclusive; Start after End wraps past midnight.
func (q QuietHours) Contains(clock string) bool {
	if !q.Enabled || q.Start == "" || q.End == "" {
		return false
	}
	if q.Start > q.End {
		return clock >= q.Start || clock <= q.End
	}

	return clock >= q.Start && clock <= q.End
}

// NotificationTypes selects which host-level alerts fire on admission.
type NotificationTypes struct {
	Sound     bool `json:"sound"`
	Visual    bool `json:"visual"`
	Vibration bool `json:"vibration"`
}

// NotificationPreferences is the consumer's filtering configuration.
type NotificationPreferences struct {
	Enabled           bool              `json:"enabled"`
	RadiusMeters      float64           `json:"radius" validate:"gte=500,lte=5000"`
	QuietHours        QuietHours        `json:"quietHours"`
	NotificationTypes NotificationTypes `json:"notificationTypes"`
	MinimumRating     float64           `json:"minimumRating" validate:"gte=0,lte=5"`
	VendorCategories  []string          `json:"vendorTypes"`
	DoNotDisturb      bool              `json:"doNotDisturb"`
}

// DefaultPreferences returns the documented fallback preferences.
func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{
		Enabled:      true,
		RadiusMeters: 1000,
		QuietHours: QuietHours{
			Enabled: false,
			Start:   "22:00",
			End:     "08:00",
		},
		NotificationTypes: NotificationTypes{
			Sound:  true,
			Visual: true,
		},
		MinimumRating:    0,
		VendorCategories: []string{},
	}
}

// Clone returns a deep copy so callers cannot alias the category slice.
func (p NotificationPreferences) Clone() NotificationPreferences {
	cloned := p
	cloned.VendorCategories = append([]string{}, p.VendorCategories...)

	return cloned
}
