package engine

// Subscription is returned by AddListener and unregisters that one listener.
type Subscription interface {
	Remove()
}

type listener[T any] struct {
	id uint32
	fn func(T)
}

// EventWithArg is a multi-cast event with one argument.
// Listeners are identified by ID so they can be removed individually.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    uint32
}

type eventSubscription[T any] struct {
	event *EventWithArg[T]
	id    uint32
}

func (s *eventSubscription[T]) Remove() {
	if s.event == nil {
		return
	}
	s.event.remove(s.id)
	s.event = nil
}

// AddListener registers callback. A nil callback is ignored and yields a no-op subscription.
func (e *EventWithArg[T]) AddListener(callback func(T)) Subscription {
	if callback == nil {
		return &eventSubscription[T]{}
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return &eventSubscription[T]{event: e, id: e.nextID}
}

func (e *EventWithArg[T]) remove(id uint32) {
	for i := range e.listeners {
		if e.listeners[i].id == id {
			copy(e.listeners[i:], e.listeners[i+1:])
			e.listeners[len(e.listeners)-1] = listener[T]{}
			e.listeners = e.listeners[:len(e.listeners)-1]
			return
		}
	}
}

// Invoke calls the listeners registered at the time of the call, in registration order.
func (e *EventWithArg[T]) Invoke(arg T) {
	snapshot := append([]listener[T](nil), e.listeners...)
	for _, l := range snapshot {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
