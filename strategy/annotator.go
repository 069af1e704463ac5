package strategy

import (
	"math"

	talib "github.com/markcheno/go-talib"

	"github.com/kvasirlabs/burst/config"
	"github.com/kvasirlabs/burst/types"
)

// IndicatorAnnotator derives the strategy's indicator columns over an
// ordered candle series: single-bar price change, ATR, the long SMA of
// ATR and their ratio, the short/long EMAs with the uptrend flag, and
// the trailing swing low. It is a pure function of its input; the host
// calls Annotate on every data refresh.
type IndicatorAnnotator struct {
	cfg config.StrategyConfig
}

func NewIndicatorAnnotator(cfg config.StrategyConfig) *IndicatorAnnotator {
	return &IndicatorAnnotator{cfg: cfg}
}

// Annotate returns the input series with the derived columns filled
// in. Indices are preserved; every derived float is NaN until its
// lookback window is complete.
func (a *IndicatorAnnotator) Annotate(candles []types.Candle) []types.AnnotatedCandle {
	n := len(candles)
	out := make([]types.AnnotatedCandle, n)
	if n == 0 {
		return out
	}

	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i, c := range candles {
		out[i].Candle = c
		highs[i] = c.High
		lows[i] = c.Low
		closes[i] = c.Close
	}

	// ATR's first value lands at index ATRPeriod; the long SMA runs
	// over the raw ATR column, so its first trustworthy value needs a
	// further LongATRPeriod-1 bars on top of that.
	atr := nanSlice(n)
	longATR := nanSlice(n)
	if n > a.cfg.ATRPeriod {
		atr = talib.Atr(highs, lows, closes, a.cfg.ATRPeriod)
		if n >= a.cfg.LongATRPeriod {
			longATR = talib.Sma(atr, a.cfg.LongATRPeriod)
			maskBefore(longATR, a.cfg.ATRPeriod+a.cfg.LongATRPeriod-1)
		}
		maskBefore(atr, a.cfg.ATRPeriod)
	}

	emaShort := nanSlice(n)
	if n >= a.cfg.EMAShortPeriod {
		emaShort = talib.Ema(closes, a.cfg.EMAShortPeriod)
		maskBefore(emaShort, a.cfg.EMAShortPeriod-1)
	}
	emaLong := nanSlice(n)
	if n >= a.cfg.EMALongPeriod {
		emaLong = talib.Ema(closes, a.cfg.EMALongPeriod)
		maskBefore(emaLong, a.cfg.EMALongPeriod-1)
	}

	swingLow := nanSlice(n)
	if n >= a.cfg.SwingLowPeriod {
		swingLow = talib.Min(lows, a.cfg.SwingLowPeriod)
		maskBefore(swingLow, a.cfg.SwingLowPeriod-1)
	}

	for i := range out {
		if i == 0 {
			out[i].PriceChange = math.NaN()
		} else {
			out[i].PriceChange = (closes[i] - closes[i-1]) / closes[i-1]
		}
		out[i].ATR = atr[i]
		out[i].LongATR = longATR[i]
		out[i].ATRRatio = atrRatio(atr[i], longATR[i])
		out[i].EMAShort = emaShort[i]
		out[i].EMALong = emaLong[i]
		out[i].Uptrend = types.Defined(emaShort[i]) && types.Defined(emaLong[i]) &&
			emaShort[i] > emaLong[i]
		out[i].SwingLow = swingLow[i]
	}
	return out
}

// atrRatio guards the division: an undefined or zero long ATR yields
// an undefined ratio, never +Inf.
func atrRatio(atr, longATR float64) float64 {
	if !types.Defined(atr) || !types.Defined(longATR) || longATR == 0 {
		return math.NaN()
	}
	return atr / longATR
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// maskBefore rewrites go-talib's zero-filled lookback region to NaN so
// "not enough data yet" stays explicit through later arithmetic.
func maskBefore(vals []float64, firstValid int) {
	if firstValid > len(vals) {
		firstValid = len(vals)
	}
	for i := 0; i < firstValid; i++ {
		vals[i] = math.NaN()
	}
}
