// Package simulator runs a per-minute stochastic model of the kitchen queue,
// independent of real order data.
package simulator

import (
	"math"
	"math/rand/v2"
	"time"

	domainerrors "canteen/internal/domain/errors"
)

// noiseSpread is the full width of the uniform noise as a fraction of the arrival rate (±15%).
const noiseSpread = 0.3

// Bounds on a single run.
const (
	MaxDurationMinutes = 24 * 60
	MaxArrivalRate     = 1_000_000
	MaxStations        = 1000
	MinAvgPrepMinutes  = 0.01
	MaxAvgPrepMinutes  = 24 * 60
)

// Params parameterizes a run.
type Params struct {
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=1440"`
	NewOrdersPerMin float64 `json:"new_orders_per_min" validate:"min=0,max=1000000"`
	Stations        int     `json:"stations" validate:"min=0,max=1000"`
	AvgPrepMinutes  float64 `json:"avg_prep_minutes" validate:"omitempty,min=0.01,max=1440"`
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	switch {
	case p.DurationMinutes <= 0 || p.DurationMinutes > MaxDurationMinutes:
		return domainerrors.ErrInvalidSimulation.WithDetails("duration must be between 1 and 1440 minutes")
	case math.IsNaN(p.NewOrdersPerMin) || p.NewOrdersPerMin < 0 || p.NewOrdersPerMin > MaxArrivalRate:
		return domainerrors.ErrInvalidSimulation.WithDetails("arrival rate must be between 0 and 1000000 orders per minute")
	case p.Stations < 0 || p.Stations > MaxStations:
		return domainerrors.ErrInvalidSimulation.WithDetails("stations must be between 0 and 1000")
	case math.IsNaN(p.AvgPrepMinutes) || p.AvgPrepMinutes < 0 || p.AvgPrepMinutes > MaxAvgPrepMinutes:
		return domainerrors.ErrInvalidSimulation.WithDetails("average prep time must be between 0 and 1440 minutes")
	case p.AvgPrepMinutes > 0 && p.AvgPrepMinutes < MinAvgPrepMinutes:
		return domainerrors.ErrInvalidSimulation.WithDetails("average prep time must be 0 or at least 0.01 minutes")
	}

	return nil
}

// Capacity is the number of orders the kitchen clears per minute.
func (p Params) Capacity() float64 {
	if p.AvgPrepMinutes <= 0 {
		return 0
	}

	return float64(p.Stations) / p.AvgPrepMinutes
}

// Result summarizes a run. Series holds the queue length after each minute.
type Result struct {
	PeakQueue        int       `json:"peak_queue"`
	AvgQueue         float64   `json:"avg_queue"`
	WorstWaitMinutes float64   `json:"worst_wait_minutes"`
	Capacity         float64   `json:"capacity_per_min"`
	Series           []float64 `json:"series"`
}

// Simulator draws noise from an injected random source.
type Simulator struct {
	rng *rand.Rand
}

// New creates a Simulator over rng. A nil rng is seeded from the clock.
func New(rng *rand.Rand) *Simulator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	return &Simulator{rng: rng}
}

// NewSeeded creates a Simulator whose runs are reproducible for a given seed.
func NewSeeded(seed uint64) *Simulator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Run simulates p.DurationMinutes minutes. Each minute
// incoming = max(0, round(rate + (U-0.5)*rate*0.3)) and
// queue = max(0, queue + incoming - capacity).
func (s *Simulator) Run(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	capacity := p.Capacity()
	series := make([]float64, 0, p.DurationMinutes)

	var queue, total, peak float64
	for range p.DurationMinutes {
		noise := (s.rng.Float64() - 0.5) * p.NewOrdersPerMin * noiseSpread
		incoming := math.Max(0, math.Round(p.NewOrdersPerMin+noise))

		queue = math.Max(0, queue+incoming-capacity)
		total += queue
		peak = math.Max(peak, queue)
		series = append(series, queue)
	}

	avg := total / float64(p.DurationMinutes)

	wait := 0.0
	if capacity > 0 {
		wait = round1(peak / capacity)
	}

	return Result{
		PeakQueue:        int(math.Round(peak)),
		AvgQueue:         round1(avg),
		WorstWaitMinutes: wait,
		Capacity:         capacity,
		Series:           series,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
