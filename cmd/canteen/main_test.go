package main

import (
	"testing"

	"canteen/config"
	"canteen/internal/domain/analytics"
	"canteen/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Timezone = "UTC"

	return cfg
}

func TestNewCalendar_Default(t *testing.T) {
	cal, err := newCalendar(testConfig())
	require.NoError(t, err)

	assert.Equal(t, entity.WindowLunch, cal.WindowAtHour(13))
	assert.Equal(t, entity.WindowNone, cal.WindowAtHour(3))
}

func TestNewCalendar_Configured(t *testing.T) {
	cfg := testConfig()
	cfg.MealWindows = []config.MealWindowConfig{
		{Name: "Breakfast", StartHour: 6, EndHour: 10},
		{Name: "Lunch", StartHour: 12, EndHour: 14},
		{Name: "Snacks", StartHour: 16, EndHour: 18},
		{Name: "Dinner", StartHour: 19, EndHour: 22},
	}

	cal, err := newCalendar(cfg)
	require.NoError(t, err)

	assert.Equal(t, entity.WindowBreakfast, cal.WindowAtHour(6))
	assert.Equal(t, entity.WindowNone, cal.WindowAtHour(11))
	assert.Equal(t, entity.WindowNone, cal.WindowAtHour(22))
}

func TestNewCalendar_Invalid(t *testing.T) {
	cfg := testConfig()
	cfg.MealWindows = []config.MealWindowConfig{
		{Name: "Lunch", StartHour: 11, EndHour: 15},
		{Name: "Lunch", StartHour: 15, EndHour: 19},
	}

	_, err := newCalendar(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Env.Timezone = "Nowhere/Atlantis"
	_, err = newCalendar(cfg)
	assert.Error(t, err)
}

func TestNewAnalyticsConfig(t *testing.T) {
	assert.Equal(t, analytics.DefaultConfig(), newAnalyticsConfig(testConfig()))

	cfg := testConfig()
	cfg.Queue = &config.QueueConfig{AveragePrepMinutes: 6}
	cfg.Analytics = &config.AnalyticsConfig{SLAMinutes: 20, ForecastWindow: "Dinner", TrailingDays: 14}

	got := newAnalyticsConfig(cfg)
	assert.InDelta(t, 6.0, got.AveragePrepMinutes, 1e-9)
	assert.Equal(t, analytics.DefaultConfig().ParallelStations, got.ParallelStations)
	assert.InDelta(t, 20.0, got.SLAMinutes, 1e-9)
	assert.Equal(t, 14, got.TrailingDays)
	assert.Equal(t, entity.WindowDinner, got.ForecastWindow)
}

func TestNewAnalyticsConfig_IgnoresUnknownForecastWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Analytics = &config.AnalyticsConfig{ForecastWindow: "Brunch"}

	assert.Equal(t, entity.WindowLunch, newAnalyticsConfig(cfg).ForecastWindow)
}
