// Package topic implements a named, typed in-process broadcast
// channel with optional last-value latching.
package topic

import "sync"

// Topic fans published values out to subscriber channels. Publish is
// synchronous for the publisher but never blocks on a slow subscriber:
// a subscriber whose channel is full misses the value and catches up
// on the next one.
type Topic[T any] struct {
	name  string
	latch bool

	lock sync.RWMutex
	subs map[chan T]struct{}
	last T
	set  bool

	buf int
}

// Option configures a Topic.
type Option[T any] func(*Topic[T])

// WithLatch makes the topic retain the last published value and
// deliver it immediately to new subscribers.
func WithLatch[T any]() Option[T] {
	return func(t *Topic[T]) { t.latch = true }
}

// WithSubscriberBuffer sets the channel buffer for new subscribers.
func WithSubscriberBuffer[T any](size int) Option[T] {
	return func(t *Topic[T]) {
		if size > 0 {
			t.buf = size
		}
	}
}

// New creates a named topic.
func New[T any](name string, opts ...Option[T]) *Topic[T] {
	t := &Topic[T]{
		name: name,
		subs: make(map[chan T]struct{}),
		buf:  16,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the topic name.
func (t *Topic[T]) Name() string {
	return t.name
}

// Publish delivers v to all current subscribers.
func (t *Topic[T]) Publish(v T) {
	t.lock.Lock()
	if t.latch {
		t.last, t.set = v, true
	}
	for ch := range t.subs {
		select {
		case ch <- v:
		default:
		}
	}
	t.lock.Unlock()
}

// Subscribe registers a new subscriber channel. On a latching topic
// the channel is primed with the last published value.
func (t *Topic[T]) Subscribe() <-chan T {
	ch := make(chan T, t.buf)
	t.lock.Lock()
	t.subs[ch] = struct{}{}
	if t.latch && t.set {
		ch <- t.last
	}
	t.lock.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (t *Topic[T]) Unsubscribe(sub <-chan T) {
	t.lock.Lock()
	for ch := range t.subs {
		if (<-chan T)(ch) == sub {
			delete(t.subs, ch)
			close(ch)
			break
		}
	}
	t.lock.Unlock()
}

// Last returns the latched value, if any.
func (t *Topic[T]) Last() (v T, ok bool) {
	t.lock.RLock()
	v, ok = t.last, t.set
	t.lock.RUnlock()
	return
}
