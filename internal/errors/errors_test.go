package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "load preferences"), "consumer %s", "c1")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, errSentinel, Cause(err))
	assert.Equal(t, "consumer c1: load preferences: sentinel", err.Error())
}

func TestJoinAndUnwrap(t *testing.T) {
	other := Errorf("dial %s", "ws://hub")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
	assert.Nil(t, Unwrap(errSentinel))
	assert.Equal(t, errSentinel, Unwrap(WithStack(errSentinel)))
}
