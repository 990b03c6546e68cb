package traffic

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"carparkSimulator/src/models"
)

// Generator produces random sensor events through the dispatcher, as an
// alternative to clicking the simulator window. Arrivals follow a Poisson
// process; lambda is the mean event rate per second.
type Generator struct {
	dispatcher *models.SensorDispatcher
	logger     *slog.Logger
	lambda     float64
	rng        *rand.Rand

	parked []string
	nextID int
}

func NewGenerator(dispatcher *models.SensorDispatcher, logger *slog.Logger, lambda float64, seed int64) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if lambda <= 0 {
		lambda = 0.5
	}
	return &Generator{
		dispatcher: dispatcher,
		logger:     logger,
		lambda:     lambda,
		rng:        rand.New(rand.NewSource(seed)),
		nextID:     1,
	}
}

// interval draws the next inter-arrival time from an exponential distribution.
func (g *Generator) interval() time.Duration {
	return time.Duration(g.rng.ExpFloat64() / g.lambda * float64(time.Second))
}

// Run emits random events until ctx is cancelled.
func (g *Generator) Run(ctx context.Context) {
	g.logger.Info("traffic generator started", "lambda", g.lambda)
	timer := time.NewTimer(g.interval())
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			g.emitOne()
			timer.Reset(g.interval())
		case <-ctx.Done():
			g.logger.Info("traffic generator stopped")
			return
		}
	}
}

// emitOne picks the next event: mostly entries and exits, with an
// occasional temperature drift.
func (g *Generator) emitOne() {
	switch n := g.rng.Intn(10); {
	case n < 5 || len(g.parked) == 0:
		plate := g.newPlate()
		g.parked = append(g.parked, plate)
		g.dispatcher.EmitIncoming(plate)
	case n < 8:
		i := g.rng.Intn(len(g.parked))
		plate := g.parked[i]
		g.parked = append(g.parked[:i], g.parked[i+1:]...)
		g.dispatcher.EmitOutgoing(plate)
	default:
		g.dispatcher.EmitTemperature(15.0 + g.rng.Float64()*15.0)
	}
}

func (g *Generator) newPlate() string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + g.rng.Intn(26))
	}
	plate := fmt.Sprintf("%s%03d", letters, g.nextID%1000)
	g.nextID++
	return plate
}
