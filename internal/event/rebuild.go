package event

import "sync"

// Rebuilder is the zero-payload broadcast channel presentation layers use
// to resynchronize after state changes. It is separate from Bus because
// its subscribers do not care which field changed, only that one did.
type Rebuilder struct {
	mu        sync.RWMutex
	observers map[uint64]func()
	nextID    uint64
}

// NewRebuilder creates an empty rebuild channel.
func NewRebuilder() *Rebuilder {
	return &Rebuilder{observers: make(map[uint64]func())}
}

// Subscribe registers a rebuild observer and returns a cancel function.
func (r *Rebuilder) Subscribe(fn func()) (cancel func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.observers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

// Notify fires all observers synchronously. Panics are contained per
// observer.
func (r *Rebuilder) Notify() {
	r.mu.RLock()
	fns := make([]func(), 0, len(r.observers))
	for _, fn := range r.observers {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		safeCall(fn)
	}
}

// Count returns the number of registered observers.
func (r *Rebuilder) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observers)
}

func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
