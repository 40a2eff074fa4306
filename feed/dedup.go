package feed

import (
	"sync"
	"time"
)

// DuplicateFilter drops sentences received from multiple sources by
// comparing each new sentence against all recently seen ones. Identical
// sentences from the same source are also filtered. What counts as
// recent is controlled by a parameter to the constructor; a sentence
// may be compared against all received within double of that.
// It uses internal locking, which makes it safe to share between
// goroutines.
type DuplicateFilter struct {
	active  map[string]struct{} // the oldest map, the one incoming sentences are tested against
	pending map[string]struct{}
	mu      sync.Mutex
	stop    bool // tells rotateTables to stop
}

// NewDuplicateFilter creates a DuplicateFilter and starts a goroutine
// that periodically forgets old sentences. minKeepAlive is how long a
// sentence is at least remembered: with 5 seconds, a new sentence is
// tested against all received within the last 5 to 10 seconds.
func NewDuplicateFilter(minKeepAlive time.Duration) *DuplicateFilter {
	df := &DuplicateFilter{
		active:  make(map[string]struct{}),
		pending: make(map[string]struct{}),
	}
	go rotateTables(df, minKeepAlive)
	return df
}

// Every keepAlive, one table is cleared and the other becomes active.
func rotateTables(df *DuplicateFilter, keepAlive time.Duration) {
	for {
		time.Sleep(keepAlive)
		df.mu.Lock()
		empty := make(map[string]struct{}, len(df.active)+100) // +100 to account for uneven traffic
		df.active = df.pending
		df.pending = empty
		stop := df.stop
		df.mu.Unlock()
		if stop {
			return
		}
	}
}

// Close tells the internal goroutine to stop.
func (df *DuplicateFilter) Close() {
	df.mu.Lock()
	df.stop = true
	df.mu.Unlock()
}

// IsDuplicate compares the raw sentence text against all sentences seen
// within the last one to two minKeepAlive periods, and remembers it.
func (df *DuplicateFilter) IsDuplicate(sentence []byte) bool {
	s := string(sentence)
	df.mu.Lock()
	_, exists := df.active[s]
	if !exists {
		df.active[s] = struct{}{}
		df.pending[s] = struct{}{}
	}
	df.mu.Unlock()
	return exists
}
