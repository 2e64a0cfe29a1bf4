package pipeline

import (
	"context"
	"sync"

	"github.com/snaik20/florisboard/pkg/suggest"
)

// Value is the published candidate list: a single-writer, many-reader
// current-value cell. The pipeline is the only writer; readers either poll
// Load or follow updates through Watch. Watchers always observe the latest
// value, intermediate values may be skipped.
type Value struct {
	mu     sync.Mutex
	cur    []suggest.Candidate
	subs   map[int]chan []suggest.Candidate
	nextID int
}

// NewValue creates a cell holding an empty candidate list.
func NewValue() *Value {
	return &Value{subs: make(map[int]chan []suggest.Candidate)}
}

// Load returns the most recently published candidate list. The slice is
// shared and must not be mutated by readers.
func (v *Value) Load() []suggest.Candidate {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur
}

// Watch subscribes to the cell. The channel immediately carries the
// current value and then every publication, latest-wins: a slow receiver
// only misses intermediate lists, never the newest one. The subscription
// ends when ctx is cancelled.
func (v *Value) Watch(ctx context.Context) <-chan []suggest.Candidate {
	ch := make(chan []suggest.Candidate, 1)
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = ch
	ch <- v.cur
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}()
	return ch
}

// publish replaces the current value and notifies watchers. Replacement is
// always whole-list, never a patch.
func (v *Value) publish(candidates []suggest.Candidate) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = candidates
	for _, ch := range v.subs {
		select {
		case ch <- candidates:
		default:
			// Drop the stale buffered value so the newest one lands.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- candidates:
			default:
			}
		}
	}
}
