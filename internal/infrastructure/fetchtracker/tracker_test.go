package fetchtracker

import (
	"sync"
	"testing"

	"gh-pr-mirror/internal/domain/models"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []models.Event
}

func (r *recorder) Publish(evt models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func TestTracker_BeginEnd(t *testing.T) {
	tests := []struct {
		name   string
		ops    string // b = Begin, e = End
		wantN  int
		wantOn bool
	}{
		{"idle", "", 0, false},
		{"one begin", "b", 1, true},
		{"begin end", "be", 0, false},
		{"two begins one end", "bbe", 1, true},
		{"interleaved", "bebbee", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(nil)
			for _, op := range tt.ops {
				if op == 'b' {
					tr.Begin("octo/R-/src/R")
				} else {
					tr.End("octo/R-/src/R")
				}
			}
			require.Equal(t, tt.wantN, tr.Count("octo/R-/src/R"))
			require.Equal(t, tt.wantOn, tr.IsFetching("octo/R-/src/R"))
		})
	}
}

func TestTracker_EndWithoutBeginPanics(t *testing.T) {
	tr := NewTracker(nil)
	require.Panics(t, func() { tr.End("k") })

	tr.Begin("k")
	tr.End("k")
	require.Panics(t, func() { tr.End("k") })
	require.Equal(t, 0, tr.Count("k"))
}

func TestTracker_KeysAreIndependent(t *testing.T) {
	tr := NewTracker(nil)
	tr.Begin("octo/R-/a")
	require.True(t, tr.IsFetching("octo/R-/a"))
	require.False(t, tr.IsFetching("octo/R-/b"))
}

func TestTracker_PublishesOnEveryChange(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Begin("k")
	require.Len(t, rec.events, 1)
	require.True(t, rec.events[0].Fetching)
	require.Equal(t, models.EventFetchState, rec.events[0].Kind)

	tr.Begin("k")
	tr.End("k")
	tr.End("k")
	require.Len(t, rec.events, 4)
	require.True(t, rec.events[2].Fetching)
	require.False(t, rec.events[3].Fetching)
	require.Equal(t, "k", rec.events[3].RepositoryKey)
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker(&recorder{})
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Begin("k")
			tr.End("k")
		}()
	}
	wg.Wait()
	require.Equal(t, 0, tr.Count("k"))
	require.False(t, tr.IsFetching("k"))
}
