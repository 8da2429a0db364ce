package service

import (
	"context"
)

// Permission is the host's notification permission tri-state.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Alert is a host-level signal raised for an admitted notification.
type Alert struct {
	Title     string
	Body      string
	Tag       string
	Data      map[string]string
	Sound     bool
	Visual    bool
	Vibration bool
}

// HostAlerter raises sound, vibration and system notifications on the host.
type HostAlerter interface {
	// Permission returns the current permission without prompting.
	Permission() Permission

	// RequestPermission prompts for permission. Only called on explicit user action.
	RequestPermission(ctx context.Context) (Permission, error)

	// Alert raises the alert. Callers check Permission first.
	Alert(ctx context.Context, alert Alert) error
}
