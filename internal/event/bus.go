package event

import (
	"sync"
	"sync/atomic"
)

// Bus is a topic-keyed broadcast channel with synchronous delivery.
// Handlers run in the publisher's goroutine, in subscription order for a
// given topic; delivery order across subscribers is otherwise unspecified
// and observers must not depend on it.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for every topic matching pattern. Use
// TopicAll to observe all events.
func (b *Bus) Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	var config SubscriptionConfig
	for _, opt := range opts {
		opt(&config)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:      b.nextID,
		pattern: pattern,
		handler: handler,
		config:  config,
	}
	b.subs = append(b.subs, sub)
	return sub, nil
}

// SubscribeFunc is a convenience wrapper for subscribing with a function.
func (b *Bus) SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	return b.Subscribe(pattern, fn, opts...)
}

// Unsubscribe cancels and removes a subscription.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remove(sub.id)
}

// remove deletes a subscription by id. Caller holds b.mu.
func (b *Bus) remove(id uint64) error {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers the event to every matching active subscription before
// returning. A handler panic is contained and counted; remaining handlers
// still run.
func (b *Bus) Publish(topic Topic, payload any) {
	b.published.Add(1)

	b.mu.RLock()
	matched := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.IsActive() && topic.matches(sub.pattern) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range matched {
		if !sub.shouldDeliver(topic, payload) {
			continue
		}
		b.dispatch(sub, topic, payload)
		if sub.config.Once {
			b.Unsubscribe(sub) //nolint:errcheck // concurrent removal is fine
		}
	}
}

// dispatch runs one handler with panic containment.
func (b *Bus) dispatch(sub *Subscription, topic Topic, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
		}
	}()
	sub.handler.Handle(topic, payload)
	b.delivered.Add(1)
}

// Stats returns current delivery counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := 0
	for _, s := range b.subs {
		if s.IsActive() {
			active++
		}
	}
	b.mu.RUnlock()

	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		Panics:        b.panics.Load(),
		Subscriptions: active,
	}
}
