// Package reactive provides observable values and watchers over them.
//
// A Ref holds a single value. Watchers registered with Watch are called
// synchronously from Set whenever the stored value actually changes.
// Watchers run without the Ref's lock held, so a watcher may write back
// into the Ref it observes; BoundedWatch relies on this to keep a numeric
// value inside a range.
package reactive

import "sync"

// WatchFunc is called with the new and the previous value.
type WatchFunc[T any] func(newValue, oldValue T)

type watcher[T any] struct {
	id int
	fn WatchFunc[T]
}

// Ref is an observable mutable cell.
// The zero value is not usable; create Refs with NewRef.
type Ref[T comparable] struct {
	mu       sync.Mutex
	value    T
	nextID   int
	watchers []watcher[T]
}

// NewRef creates a Ref holding initial.
func NewRef[T comparable](initial T) *Ref[T] {
	return &Ref[T]{value: initial}
}

// Get returns the current value.
func (r *Ref[T]) Get() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Set stores v and notifies watchers if it differs from the current value.
//
// When a watcher calls Set again, the nested call notifies every watcher
// with the newer value and the outer pass stops, so the last notification
// a watcher receives always carries the stored value.
func (r *Ref[T]) Set(v T) {
	r.mu.Lock()
	old := r.value
	if same(old, v) {
		r.mu.Unlock()
		return
	}
	r.value = v
	ws := make([]watcher[T], len(r.watchers))
	copy(ws, r.watchers)
	r.mu.Unlock()

	for _, w := range ws {
		// A watcher that wrote a new value has already notified everyone
		// with it; the rest of this pass would deliver a stale value.
		if !same(r.Get(), v) {
			return
		}
		w.fn(v, old)
	}
}

// Watch registers fn to be called on every change.
// The returned function unregisters it; calling it more than once is a no-op.
func (r *Ref[T]) Watch(fn WatchFunc[T]) (stop func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.watchers = append(r.watchers, watcher[T]{id: id, fn: fn})
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, w := range r.watchers {
			if w.id == id {
				r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
				return
			}
		}
	}
}

// same reports whether a and b are the same value. NaN is the same as NaN,
// so storing NaN twice does not notify watchers twice.
func same[T comparable](a, b T) bool {
	return a == b || (a != a && b != b)
}
