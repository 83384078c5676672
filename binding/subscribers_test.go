package binding

import (
	"testing"

	"github.com/npillmayer/stybind/dom/style"
)

type recordingSubscriber struct {
	calls []string
}

func (r *recordingSubscriber) HandleChange(context string, newValue, prevValue style.Property) {
	r.calls = append(r.calls, context+":"+string(newValue)+"<-"+string(prevValue))
}

func TestSubscriberListAddRemove(t *testing.T) {
	var l SubscriberList
	s := &recordingSubscriber{}
	if !l.Add("a", s) {
		t.Error("expected first Add to grow the list, didn't")
	}
	if l.Add("a", s) {
		t.Error("expected duplicate Add to be refused, wasn't")
	}
	if !l.Add("b", s) {
		t.Error("expected same subscriber under different context to be added, wasn't")
	}
	if l.Count() != 2 {
		t.Fatalf("expected 2 subscriptions, have %d", l.Count())
	}
	if !l.Remove("a", s) || l.Remove("a", s) {
		t.Error("expected Remove to succeed once and fail the second time")
	}
	if !l.Any() || !l.Has("b", s) {
		t.Error("expected subscription under context b to remain")
	}
}

func TestSubscriberListFanOut(t *testing.T) {
	var l SubscriberList
	s1 := &recordingSubscriber{}
	s2 := &recordingSubscriber{}
	l.Add("x", s1)
	l.Add("y", s2)
	l.Call("new", "old")
	if len(s1.calls) != 1 || s1.calls[0] != "x:new<-old" {
		t.Errorf("expected s1 to be called with its context, have %v", s1.calls)
	}
	if len(s2.calls) != 1 || s2.calls[0] != "y:new<-old" {
		t.Errorf("expected s2 to be called with its context, have %v", s2.calls)
	}
}

// unsubscribing during fan-out must not disturb the delivery

type selfRemover struct {
	list  *SubscriberList
	calls int
}

func (r *selfRemover) HandleChange(context string, _, _ style.Property) {
	r.calls++
	r.list.Remove(context, r)
}

func TestSubscriberListRemoveDuringFanOut(t *testing.T) {
	var l SubscriberList
	r1 := &selfRemover{list: &l}
	r2 := &selfRemover{list: &l}
	l.Add("x", r1)
	l.Add("x", r2)
	l.Call("v", "")
	if r1.calls != 1 || r2.calls != 1 {
		t.Errorf("expected both subscribers to see the change, have %d and %d", r1.calls, r2.calls)
	}
	if l.Any() {
		t.Error("expected list to be empty after self-removal, isn't")
	}
}

// --- dependency tracking ---------------------------------------------------

type fakePropertyObserver struct {
	subscribers SubscriberList
}

func (po *fakePropertyObserver) Subscribe(context string, s Subscriber) {
	po.subscribers.Add(context, s)
}

func (po *fakePropertyObserver) Unsubscribe(context string, s Subscriber) {
	po.subscribers.Remove(context, s)
}

type fakeObservable struct {
	props map[string]*fakePropertyObserver
}

func (o *fakeObservable) PropertyObserver(key string) PropertyObserver {
	po, ok := o.props[key]
	if !ok {
		po = &fakePropertyObserver{}
		o.props[key] = po
	}
	return po
}

func newFakeObservable() *fakeObservable {
	return &fakeObservable{props: make(map[string]*fakePropertyObserver)}
}

func TestConnectableDropsStaleDependencies(t *testing.T) {
	obj := newFakeObservable()
	sub := &recordingSubscriber{}
	var c connectable
	c.init(sub)
	// first round reads a and b
	c.ObserveProperty(obj, "a")
	c.ObserveProperty(obj, "b")
	if n := obj.props["a"].subscribers.Count(); n != 1 {
		t.Fatalf("expected 1 subscription on a, have %d", n)
	}
	// second round reads a and c
	c.version++
	c.ObserveProperty(obj, "a")
	c.ObserveProperty(obj, "c")
	c.unobserve(false)
	if n := obj.props["a"].subscribers.Count(); n != 1 {
		t.Errorf("expected a to stay subscribed once, have %d", n)
	}
	if n := obj.props["b"].subscribers.Count(); n != 0 {
		t.Errorf("expected stale dependency b to be dropped, have %d subscriptions", n)
	}
	if n := obj.props["c"].subscribers.Count(); n != 1 {
		t.Errorf("expected new dependency c to be subscribed, have %d", n)
	}
	c.unobserve(true)
	for key, po := range obj.props {
		if po.subscribers.Any() {
			t.Errorf("expected unobserve(all) to clear %s, didn't", key)
		}
	}
}
