package fetchtracker

import (
	"fmt"
	"sync"
	"time"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/domain/ports/output/events"
	"gh-pr-mirror/internal/domain/services"
)

var _ services.FetchTracker = (*Tracker)(nil)

// Tracker keeps a per-key count of in-flight refreshes and publishes a
// fetch.state event on every change.
type Tracker struct {
	mu     sync.Mutex
	counts map[string]int
	pub    events.Publisher
	now    func() time.Time
}

func NewTracker(pub events.Publisher) *Tracker {
	return &Tracker{counts: make(map[string]int), pub: pub, now: time.Now}
}

func (t *Tracker) Begin(key string) {
	t.mu.Lock()
	t.counts[key]++
	n := t.counts[key]
	t.mu.Unlock()
	t.publish(key, n)
}

// End panics when called more times than Begin for key.
func (t *Tracker) End(key string) {
	t.mu.Lock()
	n, ok := t.counts[key]
	if !ok || n <= 0 {
		t.mu.Unlock()
		panic(fmt.Sprintf("fetchtracker: End(%q) without matching Begin", key))
	}
	n--
	if n == 0 {
		delete(t.counts, key)
	} else {
		t.counts[key] = n
	}
	t.mu.Unlock()
	t.publish(key, n)
}

func (t *Tracker) IsFetching(key string) bool {
	return t.Count(key) > 0
}

func (t *Tracker) Count(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[key]
}

func (t *Tracker) publish(key string, n int) {
	if t.pub == nil {
		return
	}
	t.pub.Publish(models.Event{
		Kind:          models.EventFetchState,
		RepositoryKey: key,
		Fetching:      n > 0,
		At:            t.now(),
	})
}
