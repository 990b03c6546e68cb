package models

import (
	"log/slog"
	"sync"
)

// SensorDispatcher decouples the sensor simulator from the state holders.
// Listeners are notified in registration order. A panicking listener is
// logged and skipped so one bad sink cannot stall the rest.
type SensorDispatcher struct {
	logger    *slog.Logger
	mutex     sync.Mutex
	listeners []SensorListener
}

func NewSensorDispatcher(logger *slog.Logger) *SensorDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SensorDispatcher{logger: logger}
}

// Register appends listener to the notification list. Duplicates are kept;
// a listener registered twice is notified twice.
func (d *SensorDispatcher) Register(listener SensorListener) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unregister removes the first registration of listener, if present.
func (d *SensorDispatcher) Unregister(listener SensorListener) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// EmitIncoming forwards a car-entry event to every listener.
func (d *SensorDispatcher) EmitIncoming(plate string) {
	for _, l := range d.snapshot() {
		d.notify("incoming", func() { l.IncomingCar(plate) })
	}
}

// EmitOutgoing forwards a car-exit event to every listener.
func (d *SensorDispatcher) EmitOutgoing(plate string) {
	for _, l := range d.snapshot() {
		d.notify("outgoing", func() { l.OutgoingCar(plate) })
	}
}

// EmitTemperature forwards a temperature reading to every listener.
func (d *SensorDispatcher) EmitTemperature(temp float64) {
	for _, l := range d.snapshot() {
		d.notify("temperature", func() { l.TemperatureReading(temp) })
	}
}

// EmitReset forwards a reset to the listeners that support it.
func (d *SensorDispatcher) EmitReset() {
	for _, l := range d.snapshot() {
		if r, ok := l.(Resetter); ok {
			d.notify("reset", r.ResetParking)
		}
	}
}

func (d *SensorDispatcher) snapshot() []SensorListener {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	out := make([]SensorListener, len(d.listeners))
	copy(out, d.listeners)
	return out
}

func (d *SensorDispatcher) notify(event string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("listener panicked", "event", event, "panic", r)
		}
	}()
	f()
}
