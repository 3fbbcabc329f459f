// Package events implements the publish/subscribe broker that wires the
// storefront models, views and presenter together. Dispatch is synchronous
// and single-threaded by contract: Publish invokes every matching handler
// inline before it returns. A handler may itself call Publish; the nested
// dispatch runs inline too, so cyclic event chains grow the stack.
package events

import (
	"fmt"
	"regexp"
	"unsafe"

	"go.uber.org/zap"
)

// Wildcard is the reserved topic that receives every published event.
const Wildcard = "*"

// Handler consumes a published payload. Handlers registered under the
// wildcard topic receive an Envelope instead of the raw payload.
type Handler func(data any)

// Payload is a loose bag of values, used by Trigger to merge fixed and
// call-time data. Typed events should prefer their own payload structs.
type Payload map[string]any

// Envelope wraps a published event for wildcard subscribers.
type Envelope struct {
	Topic string
	Data  any
}

type subscriber struct {
	id uintptr
	fn Handler
}

// entry holds the handlers registered under one key. Exactly one of
// topic/pattern/wildcard identifies the key.
type entry struct {
	topic    string
	pattern  *regexp.Regexp
	wildcard bool
	subs     []subscriber
}

// Bus is the event broker. The zero value is not usable; construct with New.
//
// Registration order is preserved: handlers for a key run in the order they
// were subscribed, and keys match in the order they were first registered.
// A handler that panics is recovered and logged; later handlers still run.
type Bus struct {
	entries []*entry
	log     *zap.Logger
}

// New creates a broker. A nil logger disables dispatch logging.
func New(log *zap.Logger) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{log: log}
}

// Subscribe registers handler under an exact topic, or under the wildcard
// when topic is "*". Subscribing the same handler to the same topic twice
// is a no-op.
func (b *Bus) Subscribe(topic string, handler Handler) {
	if handler == nil {
		return
	}
	if topic == Wildcard {
		b.add(&entry{wildcard: true}, handler)
		return
	}
	b.add(&entry{topic: topic}, handler)
}

// SubscribeMatch registers handler for every topic the pattern matches.
func (b *Bus) SubscribeMatch(pattern *regexp.Regexp, handler Handler) {
	if pattern == nil || handler == nil {
		return
	}
	b.add(&entry{pattern: pattern}, handler)
}

// SubscribeAll registers handler for every event. The handler receives an
// Envelope carrying the topic alongside the payload.
func (b *Bus) SubscribeAll(handler Handler) {
	b.Subscribe(Wildcard, handler)
}

// Unsubscribe removes one handler from an exact topic (or the wildcard).
// Removing the last handler for a key frees the key. Unknown topic or
// handler is a no-op.
func (b *Bus) Unsubscribe(topic string, handler Handler) {
	if handler == nil {
		return
	}
	id := handlerID(handler)
	for i, e := range b.entries {
		if !e.matchesKey(topic) {
			continue
		}
		for j, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:j], e.subs[j+1:]...)
				break
			}
		}
		if len(e.subs) == 0 {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
		}
		return
	}
}

// Publish synchronously delivers data to every wildcard subscriber (as an
// Envelope) and then to every subscriber whose topic equals, or whose
// pattern matches, the given topic.
func (b *Bus) Publish(topic string, data any) {
	// Snapshot so handlers can subscribe/unsubscribe during dispatch.
	snapshot := make([]*entry, len(b.entries))
	copy(snapshot, b.entries)

	// Wildcard subscribers run before topic subscribers.
	for _, e := range snapshot {
		if e.wildcard {
			for _, s := range e.subs {
				b.invoke(topic, s.fn, Envelope{Topic: topic, Data: data})
			}
		}
	}
	for _, e := range snapshot {
		if !e.wildcard && e.matches(topic) {
			for _, s := range e.subs {
				b.invoke(topic, s.fn, data)
			}
		}
	}
}

// Reset drops every subscription.
func (b *Bus) Reset() {
	b.entries = nil
}

// Trigger returns a callback that merges its call-time payload with the
// fixed payload (fixed keys win) and publishes the result. It adapts
// gesture callbacks to broker events without per-site closures.
func (b *Bus) Trigger(topic string, fixed Payload) func(Payload) {
	return func(call Payload) {
		merged := make(Payload, len(call)+len(fixed))
		for k, v := range call {
			merged[k] = v
		}
		for k, v := range fixed {
			merged[k] = v
		}
		b.Publish(topic, merged)
	}
}

// On subscribes a typed handler: payloads that are not a T are logged and
// dropped instead of panicking. It returns the underlying Handler so the
// caller can pass it to Unsubscribe.
func On[T any](b *Bus, topic string, fn func(T)) Handler {
	h := func(data any) {
		v, ok := data.(T)
		if !ok {
			b.log.Warn("event payload type mismatch",
				zap.String("topic", topic),
				zap.String("got", fmt.Sprintf("%T", data)))
			return
		}
		fn(v)
	}
	b.Subscribe(topic, h)
	return h
}

func (b *Bus) add(key *entry, handler Handler) {
	id := handlerID(handler)
	for _, e := range b.entries {
		if !e.sameKey(key) {
			continue
		}
		for _, s := range e.subs {
			if s.id == id {
				return
			}
		}
		e.subs = append(e.subs, subscriber{id: id, fn: handler})
		return
	}
	key.subs = []subscriber{{id: id, fn: handler}}
	b.entries = append(b.entries, key)
}

// invoke runs one handler, isolating panics so a failing handler cannot
// starve the handlers registered after it.
func (b *Bus) invoke(topic string, fn Handler, data any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked",
				zap.String("topic", topic),
				zap.Any("panic", r))
		}
	}()
	fn(data)
}

func (e *entry) matches(topic string) bool {
	if e.pattern != nil {
		return e.pattern.MatchString(topic)
	}
	return !e.wildcard && e.topic == topic
}

func (e *entry) matchesKey(topic string) bool {
	if topic == Wildcard {
		return e.wildcard
	}
	return e.pattern == nil && !e.wildcard && e.topic == topic
}

func (e *entry) sameKey(other *entry) bool {
	switch {
	case other.wildcard:
		return e.wildcard
	case other.pattern != nil:
		return e.pattern != nil && e.pattern.String() == other.pattern.String()
	default:
		return e.pattern == nil && !e.wildcard && e.topic == other.topic
	}
}

// handlerID identifies a handler by its funcval pointer, the Go analogue
// of reference identity: the same function value compares equal, distinct
// closures are distinct even when created from the same literal.
// reflect.Value.Pointer is not usable here because it returns the shared
// code pointer, which would collapse unrelated closures.
func handlerID(h Handler) uintptr {
	return uintptr(*(*unsafe.Pointer)(unsafe.Pointer(&h)))
}
