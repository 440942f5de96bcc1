package simulator

import (
	"encoding/json"
	"math"
	"testing"

	domainerrors "canteen/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_QueueNeverNegative(t *testing.T) {
	params := []Params{
		{DurationMinutes: 60, NewOrdersPerMin: 0.5, Stations: 2, AvgPrepMinutes: 8},
		{DurationMinutes: 120, NewOrdersPerMin: 3, Stations: 2, AvgPrepMinutes: 8},
		{DurationMinutes: 30, NewOrdersPerMin: 0, Stations: 4, AvgPrepMinutes: 5},
		{DurationMinutes: 45, NewOrdersPerMin: 1, Stations: 0, AvgPrepMinutes: 8},
		{DurationMinutes: 45, NewOrdersPerMin: 2, Stations: 3, AvgPrepMinutes: 0},
	}

	for seed := uint64(1); seed <= 25; seed++ {
		sim := NewSeeded(seed)
		for _, p := range params {
			res, err := sim.Run(p)
			require.NoError(t, err)
			require.Len(t, res.Series, p.DurationMinutes)

			maxSeen := 0.0
			for minute, q := range res.Series {
				assert.GreaterOrEqual(t, q, 0.0, "seed %d minute %d", seed, minute)
				if q > maxSeen {
					maxSeen = q
				}
			}
			assert.GreaterOrEqual(t, maxSeen, res.AvgQueue-0.05)
			assert.GreaterOrEqual(t, float64(res.PeakQueue), res.AvgQueue-0.5)
		}
	}
}

func TestSimulator_SameSeedSameResult(t *testing.T) {
	p := Params{DurationMinutes: 90, NewOrdersPerMin: 2.4, Stations: 2, AvgPrepMinutes: 8}

	a, err := NewSeeded(42).Run(p)
	require.NoError(t, err)
	b, err := NewSeeded(42).Run(p)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimulator_OverloadedKitchenGrows(t *testing.T) {
	// 2 arrivals/min against 0.25 clears/min: the queue grows by about 1.75 each minute.
	p := Params{DurationMinutes: 60, NewOrdersPerMin: 2, Stations: 2, AvgPrepMinutes: 8}

	res, err := NewSeeded(7).Run(p)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, res.Capacity, 1e-9)
	assert.Greater(t, res.PeakQueue, 90)
	assert.InDelta(t, float64(res.PeakQueue)/0.25, res.WorstWaitMinutes, 4)
}

func TestSimulator_NoArrivalsNoQueue(t *testing.T) {
	res, err := NewSeeded(3).Run(Params{DurationMinutes: 10, NewOrdersPerMin: 0, Stations: 2, AvgPrepMinutes: 8})
	require.NoError(t, err)

	assert.Zero(t, res.PeakQueue)
	assert.Zero(t, res.AvgQueue)
	assert.Zero(t, res.WorstWaitMinutes)
}

func TestSimulator_ZeroCapacityHasNoWaitEstimate(t *testing.T) {
	res, err := NewSeeded(3).Run(Params{DurationMinutes: 10, NewOrdersPerMin: 1, Stations: 0, AvgPrepMinutes: 8})
	require.NoError(t, err)

	assert.Zero(t, res.Capacity)
	assert.Equal(t, 10, res.PeakQueue)
	assert.Zero(t, res.WorstWaitMinutes)
}

func TestParams_Validate(t *testing.T) {
	tests := []Params{
		{DurationMinutes: 0, NewOrdersPerMin: 1, Stations: 1, AvgPrepMinutes: 1},
		{DurationMinutes: 2000, NewOrdersPerMin: 1, Stations: 1, AvgPrepMinutes: 1},
		{DurationMinutes: 10, NewOrdersPerMin: -1, Stations: 1, AvgPrepMinutes: 1},
		{DurationMinutes: 10, NewOrdersPerMin: 1, Stations: -1, AvgPrepMinutes: 1},
		{DurationMinutes: 10, NewOrdersPerMin: 1, Stations: 1, AvgPrepMinutes: -1},
		{DurationMinutes: 10, NewOrdersPerMin: 1e20, Stations: 1, AvgPrepMinutes: 1},
		{DurationMinutes: 10, NewOrdersPerMin: math.Inf(1), Stations: 1, AvgPrepMinutes: 1},
		{DurationMinutes: 10, NewOrdersPerMin: math.NaN(), Stations: 1, AvgPrepMinutes: 1},
		{DurationMinutes: 10, NewOrdersPerMin: 1, Stations: 100000, AvgPrepMinutes: 1},
		{DurationMinutes: 10, NewOrdersPerMin: 1, Stations: 1, AvgPrepMinutes: 1e-300},
		{DurationMinutes: 10, NewOrdersPerMin: 1, Stations: 1, AvgPrepMinutes: 5000},
	}

	for _, p := range tests {
		_, err := NewSeeded(1).Run(p)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSimulation, "%+v", p)
	}
}

func TestSimulator_LargestAllowedRunStaysEncodable(t *testing.T) {
	params := []Params{
		{DurationMinutes: MaxDurationMinutes, NewOrdersPerMin: MaxArrivalRate, Stations: 0, AvgPrepMinutes: 0},
		{DurationMinutes: MaxDurationMinutes, NewOrdersPerMin: MaxArrivalRate, Stations: 1, AvgPrepMinutes: MaxAvgPrepMinutes},
		{DurationMinutes: MaxDurationMinutes, NewOrdersPerMin: 1, Stations: MaxStations, AvgPrepMinutes: MinAvgPrepMinutes},
	}

	for _, p := range params {
		res, err := NewSeeded(3).Run(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.PeakQueue, 0, "%+v", p)
		assert.False(t, math.IsInf(res.Capacity, 0))

		_, err = json.Marshal(res)
		assert.NoError(t, err, "%+v", p)
	}
}
