package entity

// Role represents the kind of participant connected to the hub.
type Role string

const (
	// RoleConsumer receives proximity notifications.
	RoleConsumer Role = "consumer"
	// RoleVendor publishes presence.
	RoleVendor Role = "vendor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleVendor:
		return true
	default:
		return false
	}
}

// RoleFromClaims picks the first valid role out of a JWT roles claim.
func RoleFromClaims(roles []string) (Role, bool) {
	for _, s := range roles {
		if role := Role(s); role.IsValid() {
			return role, true
		}
	}

	return "", false
}
