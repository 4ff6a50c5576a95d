package event

import "errors"

// Bus errors.
var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("event: handler is nil")

	// ErrInvalidTopic is returned when subscribing with an empty topic.
	ErrInvalidTopic = errors.New("event: invalid topic")

	// ErrSubscriptionNotFound is returned when cancelling an unknown
	// subscription.
	ErrSubscriptionNotFound = errors.New("event: subscription not found")
)
