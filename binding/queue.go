package binding

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// The connect queue defers dependency registration of to-view bindings:
// at bind time the initial value has already been written, and connecting
// hundreds of bindings synchronously during template instantiation would
// re-enter the expression engine once per binding. Hosts flush the queue
// once, after their binding pass.

var connectQueue []*StyleBinding
var connectQueued = make(map[*StyleBinding]bool)

// EnqueueBindingConnect schedules a binding for deferred connection.
// A binding already on the queue is not enqueued twice.
func EnqueueBindingConnect(b *StyleBinding) {
	if connectQueued[b] {
		return
	}
	connectQueued[b] = true
	connectQueue = append(connectQueue, b)
}

// FlushConnectQueue connects every queued binding. The connect re-evaluates
// the expression, so source changes that happened while the binding sat in
// the queue are caught up on. Bindings unbound while queued are skipped
// (Connect is a no-op on unbound bindings). Connecting may enqueue further
// bindings; flushing continues until the queue is empty.
func FlushConnectQueue() {
	for len(connectQueue) > 0 {
		queue := connectQueue
		connectQueue = nil
		for _, b := range queue {
			delete(connectQueued, b)
			b.Connect(true)
		}
	}
}
