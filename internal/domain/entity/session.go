package entity

// SessionStatus is the state of a transport session.
type SessionStatus string

const (
	SessionConnecting   SessionStatus = "connecting"
	SessionConnected    SessionStatus = "connected"
	SessionDisconnected SessionStatus = "disconnected"
	SessionError        SessionStatus = "error"
)

// Identity is the authenticated principal a session runs as.
type Identity struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
}
