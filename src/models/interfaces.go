package models

import "time"

// SensorListener receives simulated sensor events from the dispatcher.
type SensorListener interface {
	IncomingCar(plate string)
	OutgoingCar(plate string)
	TemperatureReading(temp float64)
}

// Resetter is an optional extension of SensorListener for listeners that
// also handle a full parking reset.
type Resetter interface {
	ResetParking()
}

// DataProvider exposes the current carpark values the display pulls from.
type DataProvider interface {
	AvailableSpaces() int
	Temperature() float64
	CurrentTime() time.Time
}

// Surface is any external rendering target: a window, a console, a log sink.
// Update receives field-name to formatted-string pairs.
type Surface interface {
	Update(values map[string]string)
	IsOpen() bool
}

// Clock supplies the current local time. Injectable so tests are deterministic.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}
