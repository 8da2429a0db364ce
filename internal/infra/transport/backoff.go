package transport

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"
)

// newReconnectBackOff yields base, 2·base, 4·base, ... capped at maxDelay,
// and never gives up. Jitter is disabled so the delay for attempt n is
// exactly min(base·2^(n-1), maxDelay).
func newReconnectBackOff(clock clockwork.Clock, base, maxDelay time.Duration) *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(base),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxInterval(maxDelay),
		backoff.WithMaxElapsedTime(0),
		backoff.WithClockProvider(clock),
	)
}
