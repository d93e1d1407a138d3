package events

import (
	"errors"
	"testing"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/infrastructure/logger"

	"github.com/stretchr/testify/require"
)

func TestBus_FanOut(t *testing.T) {
	bus := NewBus(4, logger.New("test"))
	a, cancelA := bus.Subscribe()
	b, cancelB := bus.Subscribe()
	defer cancelA()
	defer cancelB()

	bus.Publish(models.Event{Kind: models.EventError, Err: errors.New("boom")})

	require.Equal(t, models.EventError, (<-a).Kind)
	evt := <-b
	require.EqualError(t, evt.Err, "boom")
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus(1, logger.New("test"))
	ch, cancel := bus.Subscribe()
	require.Equal(t, 1, bus.Subscribers())

	cancel()
	cancel()
	_, ok := <-ch
	require.False(t, ok)
	require.Equal(t, 0, bus.Subscribers())

	bus.Publish(models.Event{Kind: models.EventFetchState})
}

func TestBus_FullSubscriberDoesNotBlock(t *testing.T) {
	bus := NewBus(1, logger.New("test"))
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(models.Event{RepositoryKey: "first"})
	bus.Publish(models.Event{RepositoryKey: "second"})

	require.Equal(t, "first", (<-ch).RepositoryKey)
	select {
	case evt := <-ch:
		t.Fatalf("unexpected event %q", evt.RepositoryKey)
	default:
	}
}
