// Package dedupe tracks already-submitted hitter-stadium pair keys so a
// batch never scores the same pair twice.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen pair keys for at-most-once scoring.
type Deduper interface {
	// SeenAndRecord atomically checks whether key was seen and records it if
	// not. Returns true if key was already seen.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord forgets a key so its pair can be resubmitted, e.g. after a
	// failed enqueue.
	Unrecord(ctx context.Context, key string)

	// Size returns the number of tracked keys.
	Size() int
}

// PairKey builds the canonical dedupe key for a hitter-stadium pair.
func PairKey(hitterID, stadiumID string) string {
	return hitterID + "|" + stadiumID
}

// memoryDeduper implements Deduper with a bounded FIFO eviction window: once
// maxSize keys are tracked, the oldest recorded key is forgotten first.
// maxSize <= 0 disables eviction.
type memoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string
	maxSize int
}

// Option applies a configuration option to the deduper.
type Option func(*memoryDeduper)

// WithMaxSize bounds the number of tracked keys.
func WithMaxSize(n int) Option {
	return func(d *memoryDeduper) { d.maxSize = n }
}

// NewMemoryDeduper creates an in-memory deduper.
func NewMemoryDeduper(opts ...Option) Deduper {
	d := &memoryDeduper{
		seen:    make(map[string]struct{}),
		maxSize: 0,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *memoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		oldest := d.order[0]
		d.order = d.order[1:]
		delete(d.seen, oldest)
	}
	d.seen[key] = struct{}{}
	if d.maxSize > 0 {
		d.order = append(d.order, key)
	}
	return false
}

func (d *memoryDeduper) Unrecord(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; !ok {
		return
	}
	delete(d.seen, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

func (d *memoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
