package strategy

import (
	"math"
	"time"

	"github.com/kvasirlabs/burst/config"
	"github.com/kvasirlabs/burst/dataprovider"
	"github.com/kvasirlabs/burst/logger"
	"github.com/kvasirlabs/burst/metrics"
	"github.com/kvasirlabs/burst/risk"
	"github.com/kvasirlabs/burst/types"
)

// Stop-loss evaluation outcomes reported through metrics.
const (
	outcomeAdjusted            = "adjusted"
	outcomeInsufficientHistory = "insufficient_history"
	outcomeInvalidIndicators   = "invalid_indicators"
)

// StopLossCalculator derives a dynamic stop-loss fraction from the
// latest annotated candle of an open position's pair. The host calls
// Stoploss on every stop check and interprets the result as "move the
// stop to open_rate * (1 + result)"; types.NoStoplossChange means
// leave the current stop alone.
type StopLossCalculator struct {
	cfg  config.StrategyConfig
	data dataprovider.Provider
	log  logger.Logger
}

func NewStopLossCalculator(cfg config.StrategyConfig, data dataprovider.Provider, log logger.Logger) *StopLossCalculator {
	return &StopLossCalculator{cfg: cfg, data: data, log: log}
}

// Stoploss computes the new stop level for an open position.
//
// The stop is the least aggressive of three candidates: an ATR-scaled
// distance below the current rate, a buffer below the recent swing
// low, and the static floor. The ATR distance widens in an uptrend and
// tightens as profit accrues or the trade ages.
func (c *StopLossCalculator) Stoploss(pos types.Position, now time.Time) float64 {
	series := c.data.AnnotatedSeries(pos.Pair, c.cfg.Timeframe)
	if len(series) < c.cfg.StartupCandleCount {
		metrics.StoplossEvaluations.WithLabelValues(pos.Pair, outcomeInsufficientHistory).Inc()
		return types.NoStoplossChange
	}

	last := series[len(series)-1]
	// Past the warm-up both columns are defined for any series the
	// annotator produced; a NaN here means the provider handed back
	// something else, and a NaN stop must never reach the host.
	if !types.Defined(last.ATR) || !types.Defined(last.SwingLow) {
		c.log.Warn("stoploss_indicators_undefined",
			logger.String("pair", pos.Pair),
			logger.Float64("atr", last.ATR),
			logger.Float64("swing_low", last.SwingLow),
		)
		metrics.StoplossEvaluations.WithLabelValues(pos.Pair, outcomeInvalidIndicators).Inc()
		return types.NoStoplossChange
	}

	mult := c.multiplier(last, pos, now)

	atrStopPrice := pos.CurrentRate - last.ATR*mult
	atrStopPct := (atrStopPrice - pos.OpenRate) / pos.OpenRate

	swingStopPrice := last.SwingLow * c.cfg.SwingLowBuffer
	swingStopPct := (swingStopPrice - pos.OpenRate) / pos.OpenRate

	result := risk.ClampStop(math.Max(atrStopPct, swingStopPct), c.cfg.Stoploss)

	c.log.Info("stoploss_adjusted",
		logger.String("pair", pos.Pair),
		logger.Float64("stoploss", result),
		logger.Float64("atr_stop_pct", atrStopPct),
		logger.Float64("swing_stop_pct", swingStopPct),
		logger.Float64("multiplier", mult),
	)
	metrics.StoplossEvaluations.WithLabelValues(pos.Pair, outcomeAdjusted).Inc()
	metrics.StoplossLevel.WithLabelValues(pos.Pair).Set(result)
	return result
}

// multiplier builds the ATR multiplier: wider in an uptrend, then
// tightened once by the first matching profit tier and once more past
// the duration cutoff. An undefined ATR ratio collapses the multiplier
// to zero, leaving the swing-low leg and the static floor in charge.
func (c *StopLossCalculator) multiplier(last types.AnnotatedCandle, pos types.Position, now time.Time) float64 {
	ratio := last.ATRRatio
	if !types.Defined(ratio) {
		ratio = 0
	}

	m := c.cfg.DowntrendATRMultiplier * ratio
	if last.Uptrend {
		m = c.cfg.UptrendATRMultiplier * ratio
	}

	switch {
	case pos.CurrentProfit > c.cfg.HighProfitThreshold:
		m *= c.cfg.HighProfitTightening
	case pos.CurrentProfit > c.cfg.ModestProfitThreshold:
		m *= c.cfg.ModestProfitTightening
	}

	if now.Sub(pos.OpenTime) > c.cfg.MaxTradeDuration {
		m *= c.cfg.DurationTightening
	}
	return m
}
