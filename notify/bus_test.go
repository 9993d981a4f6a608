package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second int
	bus.Subscribe(func() { first++ })
	bus.Subscribe(func() { second++ })

	bus.Publish()
	bus.Publish()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Publish() })
}
