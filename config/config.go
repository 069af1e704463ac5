package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kvasirlabs/burst/risk"
)

// StrategyConfig holds every tunable parameter of the strategy. The
// host constructs it once and passes it in; nothing here mutates after
// construction.
type StrategyConfig struct {
	// Host-facing statics the bot reads directly.
	Timeframe          string
	Stoploss           float64 // static floor, e.g. -0.15
	MinimalROI         risk.ROITable
	Trailing           risk.TrailingStop
	StartupCandleCount int // candles required before any signal is trusted

	// Indicator periods.
	ATRPeriod      int
	LongATRPeriod  int // SMA window applied to the ATR column
	EMAShortPeriod int
	EMALongPeriod  int
	SwingLowPeriod int

	// Entry rule.
	EntryChangeThreshold float64 // single-bar gain that triggers an entry

	// Dynamic stop-loss tuning.
	UptrendATRMultiplier   float64
	DowntrendATRMultiplier float64
	HighProfitThreshold    float64 // tighten hard above this profit
	HighProfitTightening   float64
	ModestProfitThreshold  float64 // tighten lightly above this profit
	ModestProfitTightening float64
	MaxTradeDuration       time.Duration // tighten once a trade runs longer
	DurationTightening     float64
	SwingLowBuffer         float64 // stop sits this fraction of the swing low
}

// DefaultConfig returns the production parameter set: 1-minute bars, a
// 1% spike entry, a 7% immediate ROI target, a 5% trail armed at 7%
// profit, and the -15% static stop floor.
func DefaultConfig() StrategyConfig {
	return StrategyConfig{
		Timeframe:          "1m",
		Stoploss:           -0.15,
		MinimalROI:         risk.ROITable{{After: 0, MinProfit: 0.07}},
		Trailing:           risk.TrailingStop{Enabled: true, Positive: 0.05, PositiveOffset: 0.07, OnlyOffsetReached: true},
		StartupCandleCount: 200,

		ATRPeriod:      14,
		LongATRPeriod:  100,
		EMAShortPeriod: 50,
		EMALongPeriod:  200,
		SwingLowPeriod: 5,

		EntryChangeThreshold: 0.01,

		UptrendATRMultiplier:   1.5,
		DowntrendATRMultiplier: 1.0,
		HighProfitThreshold:    0.05,
		HighProfitTightening:   0.8,
		ModestProfitThreshold:  0.02,
		ModestProfitTightening: 0.9,
		MaxTradeDuration:       120 * time.Minute,
		DurationTightening:     0.8,
		SwingLowBuffer:         0.99,
	}
}

// Validate checks all numeric fields for sensible bounds and returns
// the first problem found, so a misconfiguration surfaces before any
// evaluation starts.
func (c *StrategyConfig) Validate() error {
	if c.Timeframe == "" {
		return errors.New("Timeframe cannot be empty")
	}
	if c.Stoploss >= 0 || c.Stoploss < -1 {
		return fmt.Errorf("Stoploss (%f) must be in [-1, 0)", c.Stoploss)
	}
	if err := c.MinimalROI.Validate(); err != nil {
		return err
	}
	if err := c.Trailing.Validate(); err != nil {
		return err
	}
	if c.ATRPeriod <= 0 {
		return errors.New("ATRPeriod must be positive")
	}
	if c.LongATRPeriod <= 0 {
		return errors.New("LongATRPeriod must be positive")
	}
	if c.EMAShortPeriod <= 0 || c.EMALongPeriod <= 0 {
		return errors.New("EMA periods must be positive")
	}
	if c.EMAShortPeriod >= c.EMALongPeriod {
		return fmt.Errorf("EMAShortPeriod (%d) must be below EMALongPeriod (%d)", c.EMAShortPeriod, c.EMALongPeriod)
	}
	if c.SwingLowPeriod <= 0 {
		return errors.New("SwingLowPeriod must be positive")
	}
	// The warm-up must cover the slowest column, otherwise consumers
	// would read NaN indicators past the point they trust the series.
	longest := c.EMALongPeriod
	if la := c.ATRPeriod + c.LongATRPeriod - 1; la > longest {
		longest = la
	}
	if c.StartupCandleCount < longest {
		return fmt.Errorf("StartupCandleCount (%d) must cover the longest lookback (%d)", c.StartupCandleCount, longest)
	}
	if c.EntryChangeThreshold <= 0 {
		return errors.New("EntryChangeThreshold must be positive")
	}
	if c.UptrendATRMultiplier <= 0 || c.DowntrendATRMultiplier <= 0 {
		return errors.New("ATR multipliers must be positive")
	}
	if c.HighProfitThreshold <= c.ModestProfitThreshold {
		return fmt.Errorf("HighProfitThreshold (%f) must exceed ModestProfitThreshold (%f)",
			c.HighProfitThreshold, c.ModestProfitThreshold)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"HighProfitTightening", c.HighProfitTightening},
		{"ModestProfitTightening", c.ModestProfitTightening},
		{"DurationTightening", c.DurationTightening},
		{"SwingLowBuffer", c.SwingLowBuffer},
	} {
		if f.v <= 0 || f.v > 1 {
			return fmt.Errorf("%s (%f) must be in (0, 1]", f.name, f.v)
		}
	}
	if c.MaxTradeDuration <= 0 {
		return errors.New("MaxTradeDuration must be positive")
	}
	return nil
}
