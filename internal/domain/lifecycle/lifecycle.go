// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and sessions.
const DefaultTimeout = 10 * time.Second
