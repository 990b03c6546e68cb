package models

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const defaultTemperature = 20.0

// Carpark holds the occupancy set, capacity and last temperature reading.
// It implements SensorListener, Resetter and DataProvider: sensor events
// mutate it, the display refresher pulls from it. All state is guarded by
// a single mutex because sensor callbacks and the refresh loop run on
// different goroutines.
type Carpark struct {
	capacity int
	log      *ActivityLog
	clock    Clock
	logger   *slog.Logger
	onUpdate func()

	mutex       sync.Mutex
	occupied    map[string]struct{}
	temperature float64
}

// NewCarpark creates the carpark state with an empty occupancy set and the
// default temperature. onUpdate, if not nil, is invoked after every
// successful mutation so the display can refresh immediately instead of
// waiting for the next heartbeat tick.
func NewCarpark(capacity int, log *ActivityLog, clock Clock, logger *slog.Logger, onUpdate func()) *Carpark {
	if capacity <= 0 {
		capacity = 100
	}
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Carpark{
		capacity:    capacity,
		log:         log,
		clock:       clock,
		logger:      logger,
		onUpdate:    onUpdate,
		occupied:    make(map[string]struct{}),
		temperature: defaultTemperature,
	}
}

// IncomingCar registers a car entering. An empty plate or a full carpark is
// a logged no-op, never an error. Re-entering a plate that is already parked
// is an idempotent add and still counts as a successful entry.
func (c *Carpark) IncomingCar(plate string) {
	c.mutex.Lock()
	ok := plate != "" && len(c.occupied) < c.capacity
	if ok {
		c.occupied[plate] = struct{}{}
	}
	available := c.capacity - len(c.occupied)
	c.mutex.Unlock()

	if !ok {
		c.logActivity(fmt.Sprintf("Car %s attempted to enter but parking is full.", plate))
		return
	}
	c.logActivity(fmt.Sprintf("Car %s entered. Available spaces: %d", plate, available))
	c.triggerUpdate()
}

// OutgoingCar registers a car leaving. An unknown plate is a logged no-op.
func (c *Carpark) OutgoingCar(plate string) {
	c.mutex.Lock()
	_, ok := c.occupied[plate]
	if ok {
		delete(c.occupied, plate)
	}
	available := c.capacity - len(c.occupied)
	c.mutex.Unlock()

	if !ok {
		c.logActivity(fmt.Sprintf("Car %s attempted to exit but was not found.", plate))
		return
	}
	c.logActivity(fmt.Sprintf("Car %s exited. Available spaces: %d", plate, available))
	c.triggerUpdate()
}

// TemperatureReading stores a new reading. Any value is accepted; the
// simulated sensor may legitimately send abnormal temperatures.
func (c *Carpark) TemperatureReading(temp float64) {
	c.mutex.Lock()
	c.temperature = temp
	c.mutex.Unlock()

	c.logActivity(fmt.Sprintf("Temperature updated to %.1f°C", temp))
	c.triggerUpdate()
}

// ResetParking clears all occupancy and restores the default temperature.
func (c *Carpark) ResetParking() {
	c.mutex.Lock()
	c.occupied = make(map[string]struct{})
	c.temperature = defaultTemperature
	c.mutex.Unlock()

	c.logActivity("Parking system reset. All spaces cleared and temperature set to 20.0°C.")
	c.triggerUpdate()
}

// AvailableSpaces returns capacity minus the number of parked cars.
func (c *Carpark) AvailableSpaces() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.capacity - len(c.occupied)
}

// Temperature returns the last reading.
func (c *Carpark) Temperature() float64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.temperature
}

// CurrentTime returns the current local time from the injected clock.
func (c *Carpark) CurrentTime() time.Time {
	return c.clock()
}

// Capacity returns the fixed number of bays.
func (c *Carpark) Capacity() int {
	return c.capacity
}

func (c *Carpark) logActivity(message string) {
	if c.log != nil {
		c.log.Append(message)
	}
	c.logger.Info(message)
}

func (c *Carpark) triggerUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}
