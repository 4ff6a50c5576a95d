package event

import "testing"

func TestBus_PublishDelivers(t *testing.T) {
	bus := NewBus()

	var got []any
	_, err := bus.SubscribeFunc(TopicTextChanged, func(topic Topic, payload any) {
		got = append(got, payload)
	})
	if err != nil {
		t.Fatalf("SubscribeFunc() failed: %v", err)
	}

	bus.Publish(TopicTextChanged, "hello")
	bus.Publish(TopicColorChanged, uint32(0xFF000000)) // different topic, not delivered

	if len(got) != 1 {
		t.Fatalf("delivered %d events, want 1", len(got))
	}
	if got[0] != "hello" {
		t.Errorf("payload = %v, want hello", got[0])
	}
}

func TestBus_TopicAll(t *testing.T) {
	bus := NewBus()

	var topics []Topic
	bus.SubscribeFunc(TopicAll, func(topic Topic, payload any) {
		topics = append(topics, topic)
	})

	bus.Publish(TopicTextChanged, "a")
	bus.Publish(TopicDone, nil)

	if len(topics) != 2 {
		t.Fatalf("delivered %d events, want 2", len(topics))
	}
	if topics[0] != TopicTextChanged || topics[1] != TopicDone {
		t.Errorf("topics = %v", topics)
	}
}

func TestBus_SubscribeValidation(t *testing.T) {
	bus := NewBus()

	if _, err := bus.Subscribe(TopicTextChanged, nil); err != ErrNilHandler {
		t.Errorf("nil handler: got %v, want ErrNilHandler", err)
	}
	if _, err := bus.SubscribeFunc("", func(Topic, any) {}); err != ErrInvalidTopic {
		t.Errorf("empty topic: got %v, want ErrInvalidTopic", err)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub, _ := bus.SubscribeFunc(TopicTextChanged, func(Topic, any) { calls++ })

	bus.Publish(TopicTextChanged, "a")
	if err := bus.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe() failed: %v", err)
	}
	bus.Publish(TopicTextChanged, "b")

	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
	if err := bus.Unsubscribe(sub); err != ErrSubscriptionNotFound {
		t.Errorf("second Unsubscribe: got %v, want ErrSubscriptionNotFound", err)
	}
}

func TestBus_Filter(t *testing.T) {
	bus := NewBus()

	var got []any
	bus.SubscribeFunc(TopicScaleChanged, func(_ Topic, payload any) {
		got = append(got, payload)
	}, WithFilter(func(_ Topic, payload any) bool {
		v, ok := payload.(float64)
		return ok && v > 1.0
	}))

	bus.Publish(TopicScaleChanged, 0.5)
	bus.Publish(TopicScaleChanged, 1.5)

	if len(got) != 1 || got[0] != 1.5 {
		t.Errorf("filtered delivery = %v, want [1.5]", got)
	}
}

func TestBus_Once(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.SubscribeFunc(TopicDone, func(Topic, any) { calls++ }, WithOnce())

	bus.Publish(TopicDone, nil)
	bus.Publish(TopicDone, nil)

	if calls != 1 {
		t.Errorf("once handler ran %d times, want 1", calls)
	}
}

func TestBus_PanicContainment(t *testing.T) {
	bus := NewBus()

	bus.SubscribeFunc(TopicTextChanged, func(Topic, any) { panic("boom") })

	after := 0
	bus.SubscribeFunc(TopicTextChanged, func(Topic, any) { after++ })

	bus.Publish(TopicTextChanged, "x") // must not panic the publisher

	if after != 1 {
		t.Errorf("handler after panicking one ran %d times, want 1", after)
	}
	if got := bus.Stats().Panics; got != 1 {
		t.Errorf("Stats().Panics = %d, want 1", got)
	}
}

func TestBus_Stats(t *testing.T) {
	bus := NewBus()
	bus.SubscribeFunc(TopicAll, func(Topic, any) {})

	bus.Publish(TopicTextChanged, "a")
	bus.Publish(TopicModeChanged, nil)

	stats := bus.Stats()
	if stats.Published != 2 {
		t.Errorf("Published = %d, want 2", stats.Published)
	}
	if stats.Delivered != 2 {
		t.Errorf("Delivered = %d, want 2", stats.Delivered)
	}
	if stats.Subscriptions != 1 {
		t.Errorf("Subscriptions = %d, want 1", stats.Subscriptions)
	}
}

func TestRebuilder(t *testing.T) {
	r := NewRebuilder()

	calls := 0
	cancel := r.Subscribe(func() { calls++ })

	r.Notify()
	r.Notify()
	if calls != 2 {
		t.Errorf("observer ran %d times, want 2", calls)
	}

	cancel()
	r.Notify()
	if calls != 2 {
		t.Errorf("observer ran after cancel, calls = %d", calls)
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d after cancel, want 0", r.Count())
	}
}

func TestRebuilder_PanicContainment(t *testing.T) {
	r := NewRebuilder()
	r.Subscribe(func() { panic("boom") })

	calls := 0
	r.Subscribe(func() { calls++ })

	r.Notify() // must not panic

	if calls != 1 {
		t.Errorf("surviving observer ran %d times, want 1", calls)
	}
}
