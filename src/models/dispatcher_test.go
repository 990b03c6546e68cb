package models

import (
	"testing"
)

// recordingListener captures every notification it receives, in order.
type recordingListener struct {
	name   string
	events *[]string
}

func (r *recordingListener) IncomingCar(plate string) {
	*r.events = append(*r.events, r.name+":in:"+plate)
}

func (r *recordingListener) OutgoingCar(plate string) {
	*r.events = append(*r.events, r.name+":out:"+plate)
}

func (r *recordingListener) TemperatureReading(temp float64) {
	*r.events = append(*r.events, r.name+":temp")
}

// resettableListener additionally implements Resetter.
type resettableListener struct {
	recordingListener
}

func (r *resettableListener) ResetParking() {
	*r.events = append(*r.events, r.name+":reset")
}

// panicListener fails on every notification.
type panicListener struct{}

func (panicListener) IncomingCar(string)         { panic("boom") }
func (panicListener) OutgoingCar(string)         { panic("boom") }
func (panicListener) TemperatureReading(float64) { panic("boom") }

func TestDispatcherNotifiesInRegistrationOrder(t *testing.T) {
	var events []string
	d := NewSensorDispatcher(discardLogger())
	d.Register(&recordingListener{name: "a", events: &events})
	d.Register(&recordingListener{name: "b", events: &events})

	d.EmitIncoming("ABC123")
	d.EmitOutgoing("ABC123")

	want := []string{"a:in:ABC123", "b:in:ABC123", "a:out:ABC123", "b:out:ABC123"}
	if len(events) != len(want) {
		t.Fatalf("events: got %v want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: got %q want %q", i, events[i], want[i])
		}
	}
}

func TestDispatcherEmitResetSkipsNonResetters(t *testing.T) {
	var events []string
	d := NewSensorDispatcher(discardLogger())
	d.Register(&recordingListener{name: "plain", events: &events})
	r := &resettableListener{recordingListener{name: "full", events: &events}}
	d.Register(r)

	d.EmitReset()

	if len(events) != 1 || events[0] != "full:reset" {
		t.Fatalf("events: got %v want [full:reset]", events)
	}
}

func TestDispatcherUnregister(t *testing.T) {
	var events []string
	d := NewSensorDispatcher(discardLogger())
	a := &recordingListener{name: "a", events: &events}
	b := &recordingListener{name: "b", events: &events}
	d.Register(a)
	d.Register(b)
	d.Unregister(a)

	d.EmitTemperature(21.5)

	if len(events) != 1 || events[0] != "b:temp" {
		t.Fatalf("events: got %v want [b:temp]", events)
	}
}

func TestDispatcherDuplicateRegistrationNotifiesTwice(t *testing.T) {
	var events []string
	d := NewSensorDispatcher(discardLogger())
	a := &recordingListener{name: "a", events: &events}
	d.Register(a)
	d.Register(a)

	d.EmitIncoming("DUP")

	if len(events) != 2 {
		t.Fatalf("events: got %v want two notifications", events)
	}
}

func TestDispatcherContinuesAfterListenerPanic(t *testing.T) {
	var events []string
	d := NewSensorDispatcher(discardLogger())
	d.Register(panicListener{})
	d.Register(&recordingListener{name: "b", events: &events})

	d.EmitIncoming("ABC123")

	if len(events) != 1 || events[0] != "b:in:ABC123" {
		t.Fatalf("listener after panicking one was not notified: %v", events)
	}
}

func TestDispatcherEmitWithNoListeners(t *testing.T) {
	d := NewSensorDispatcher(discardLogger())

	// must not panic
	d.EmitIncoming("ABC123")
	d.EmitOutgoing("ABC123")
	d.EmitTemperature(20.0)
	d.EmitReset()
}
