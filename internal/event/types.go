package event

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event. The payload is type-erased; handlers
	// should type-assert based on the topic.
	Handle(topic Topic, payload any)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(topic Topic, payload any)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(topic Topic, payload any) {
	f(topic, payload)
}

// FilterFunc is a predicate for filtering events.
// Return true to allow the event, false to filter it out.
type FilterFunc func(topic Topic, payload any) bool

// Stats contains bus delivery counters.
type Stats struct {
	// Published is the total number of events published.
	Published uint64

	// Delivered is the total number of handler deliveries.
	Delivered uint64

	// Panics is the number of handler panics contained.
	Panics uint64

	// Subscriptions is the number of active subscriptions.
	Subscriptions int
}
