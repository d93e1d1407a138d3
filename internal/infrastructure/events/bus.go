package events

import (
	"sync"

	"gh-pr-mirror/internal/domain/models"
	ports "gh-pr-mirror/internal/domain/ports/output"
	pub "gh-pr-mirror/internal/domain/ports/output/events"
)

var _ pub.Publisher = (*Bus)(nil)

const DefaultBufferSize = 64

// Bus fans events out to subscribers. Publishing never blocks: a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]chan models.Event
	nextID uint64
	size   int
	log    ports.Logger
}

func NewBus(bufferSize int, log ports.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{subs: make(map[uint64]chan models.Event), size: bufferSize, log: log}
}

// Subscribe returns a channel of events and a function that closes it.
func (b *Bus) Subscribe() (<-chan models.Event, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan models.Event, b.size)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

func (b *Bus) Publish(evt models.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs {
		select {
		case ch <- evt:
		default:
			if b.log != nil {
				b.log.Warn("event dropped for slow subscriber", "subscriber", id, "kind", string(evt.Kind), "repository_key", evt.RepositoryKey)
			}
		}
	}
}

func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
