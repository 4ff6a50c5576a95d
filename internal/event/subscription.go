package event

import "sync/atomic"

// Subscription represents an active registration on a Bus.
type Subscription struct {
	id      uint64
	pattern Topic
	handler Handler
	config  SubscriptionConfig

	cancelled atomic.Bool
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() uint64 {
	return s.id
}

// Topic returns the subscribed topic pattern.
func (s *Subscription) Topic() Topic {
	return s.pattern
}

// IsActive returns true if the subscription can still receive events.
func (s *Subscription) IsActive() bool {
	return !s.cancelled.Load()
}

// Cancel permanently stops delivery to this subscription.
func (s *Subscription) Cancel() {
	s.cancelled.Store(true)
}

// shouldDeliver applies the subscription filter.
func (s *Subscription) shouldDeliver(topic Topic, payload any) bool {
	if s.config.Filter != nil && !s.config.Filter(topic, payload) {
		return false
	}
	return true
}

// SubscriptionConfig contains configuration for a subscription.
type SubscriptionConfig struct {
	// Filter is an optional predicate; events are only delivered if it
	// returns true.
	Filter FilterFunc

	// Once auto-cancels the subscription after the first delivery.
	Once bool
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// WithOnce auto-cancels the subscription after its first delivery.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}
