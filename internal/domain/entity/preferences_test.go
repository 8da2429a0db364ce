package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuietHours_Contains(t *testing.T) {
	overnight := QuietHours{Enabled: true, Start: "22:00", End: "08:00"}
	daytime := QuietHours{Enabled: true, Start: "12:00", End: "14:00"}

	tests := []struct {
		name  string
		hours QuietHours
		clock string
		want  bool
	}{
		{"overnight late evening", overnight, "23:30", true},
		{"overnight early morning", overnight, "05:00", true},
		{"overnight midday", overnight, "12:00", false},
		{"overnight start bound", overnight, "22:00", true},
		{"overnight end bound", overnight, "08:00", true},
		{"overnight just after end", overnight, "08:01", false},
		{"daytime inside", daytime, "13:15", true},
		{"daytime outside", daytime, "15:00", false},
		{"disabled", QuietHours{Start: "22:00", End: "08:00"}, "23:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hours.Contains(tt.clock))
		})
	}
}

func TestPreferences_CloneDoesNotAlias(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.VendorCategories = []string{"vegetables"}

	cloned := prefs.Clone()
	cloned.VendorCategories[0] = "fruits"

	assert.Equal(t, "vegetables", prefs.VendorCategories[0])
}

func TestPriorityForDistance(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityForDistance(120))
	assert.Equal(t, PriorityHigh, PriorityForDistance(300))
	assert.Equal(t, PriorityMedium, PriorityForDistance(301))
	assert.Equal(t, PriorityMedium, PriorityForDistance(800))
	assert.Equal(t, PriorityLow, PriorityForDistance(1500))
}
