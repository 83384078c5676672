package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// MutationRecord describes a single observed attribute change.
type MutationRecord struct {
	Target      *Element // element the change happened on
	AttrName    string   // name of the changed attribute
	OldValue    string   // previous value, if requested via ObserveOptions
	HasOldValue bool
}

// ObserveOptions filters what an observer gets to see.
type ObserveOptions struct {
	// AttributeFilter restricts observation to the named attributes.
	// An empty filter matches every attribute.
	AttributeFilter []string
	// AttributeOldValue requests the previous value in each record.
	AttributeOldValue bool
}

func (opts ObserveOptions) matches(name string) bool {
	if len(opts.AttributeFilter) == 0 {
		return true
	}
	for _, f := range opts.AttributeFilter {
		if f == name {
			return true
		}
	}
	return false
}

// MutationObserver watches attribute changes on elements and delivers them
// in batches, in the manner of the web platform's MutationObserver. Records
// accumulate until the host calls FlushMutations (or the client drains them
// with TakeRecords).
type MutationObserver struct {
	callback func([]MutationRecord)
	targets  []*Element
	pending  []MutationRecord
	queued   bool // already on the delivery queue?
}

// deliveryQueue lists observers with undelivered records, in the order
// their first record arrived.
var deliveryQueue []*MutationObserver

// NewMutationObserver creates an observer that will invoke callback with
// each delivered batch of records.
func NewMutationObserver(callback func([]MutationRecord)) *MutationObserver {
	return &MutationObserver{callback: callback}
}

// Observe starts observation of an element's attributes. Observing the
// same element twice replaces the previous options.
func (mo *MutationObserver) Observe(e *Element, opts ObserveOptions) {
	for i := range e.watchers {
		if e.watchers[i].observer == mo {
			e.watchers[i].options = opts
			return
		}
	}
	e.watchers = append(e.watchers, watchRegistration{observer: mo, options: opts})
	mo.targets = append(mo.targets, e)
	tracer().P("elem", e.NodeName()).Debugf("mutation observer attached")
}

// Disconnect stops observation of all targets and drops any undelivered
// records. After Disconnect no stale delivery can occur.
func (mo *MutationObserver) Disconnect() {
	for _, e := range mo.targets {
		watchers := e.watchers[:0]
		for _, w := range e.watchers {
			if w.observer != mo {
				watchers = append(watchers, w)
			}
		}
		e.watchers = watchers
	}
	mo.targets = nil
	mo.pending = nil
	// a queued entry stays in deliveryQueue but delivers nothing
	tracer().Debugf("mutation observer disconnected")
}

// TakeRecords drains the pending records without invoking the callback.
func (mo *MutationObserver) TakeRecords() []MutationRecord {
	recs := mo.pending
	mo.pending = nil
	return recs
}

func (mo *MutationObserver) enqueue(rec MutationRecord) {
	mo.pending = append(mo.pending, rec)
	if !mo.queued {
		mo.queued = true
		deliveryQueue = append(deliveryQueue, mo)
	}
}

// FlushMutations delivers all pending mutation batches. Each observer's
// callback is invoked once per batch with every record accumulated since
// the last delivery. Deliveries may themselves cause further mutations;
// flushing continues until the queue is empty.
//
// This is the cooperative stand-in for the platform's microtask-scheduled
// delivery; hosts call it at the end of their change-detection pass.
func FlushMutations() {
	for len(deliveryQueue) > 0 {
		queue := deliveryQueue
		deliveryQueue = nil
		for _, mo := range queue {
			mo.queued = false
			recs := mo.pending
			mo.pending = nil
			if len(recs) > 0 && mo.callback != nil {
				mo.callback(recs)
			}
		}
	}
}
