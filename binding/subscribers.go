package binding

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/stybind/dom/style"
)

// Subscriber is the receiving end of a change notification. The context
// string identifies which of the subscriber's registrations fired; a
// subscriber registered under several contexts dispatches on it.
type Subscriber interface {
	HandleChange(context string, newValue, prevValue style.Property)
}

type subscription struct {
	context    string
	subscriber Subscriber
}

// SubscriberList is an explicit fan-out list of (context, subscriber)
// pairs. The zero value is an empty list, ready for use.
type SubscriberList struct {
	subs []subscription
}

// Add registers a pair. A pair already on the list is not added again;
// the return value reports whether the list grew.
func (l *SubscriberList) Add(context string, s Subscriber) bool {
	if l.Has(context, s) {
		return false
	}
	l.subs = append(l.subs, subscription{context, s})
	return true
}

// Remove drops a pair from the list. The return value reports whether the
// pair was present.
func (l *SubscriberList) Remove(context string, s Subscriber) bool {
	for i, sub := range l.subs {
		if sub.context == context && sub.subscriber == s {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Has checks for the presence of a pair.
func (l *SubscriberList) Has(context string, s Subscriber) bool {
	for _, sub := range l.subs {
		if sub.context == context && sub.subscriber == s {
			return true
		}
	}
	return false
}

// Any returns whether at least one subscriber is registered.
func (l *SubscriberList) Any() bool {
	return len(l.subs) > 0
}

// Count returns the number of registered pairs.
func (l *SubscriberList) Count() int {
	return len(l.subs)
}

// Call notifies every registered pair of a value change. The list is
// snapshotted first, so subscribers may unsubscribe (themselves or
// others) during fan-out without disturbing the delivery.
func (l *SubscriberList) Call(newValue, prevValue style.Property) {
	snapshot := make([]subscription, len(l.subs))
	copy(snapshot, l.subs)
	for _, sub := range snapshot {
		sub.subscriber.HandleChange(sub.context, newValue, prevValue)
	}
}
