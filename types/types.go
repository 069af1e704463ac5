package types

import (
	"math"
	"time"
)

// Candle is one OHLCV bar as delivered by the host. History is
// append-only; this module never rewrites earlier bars.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// AnnotatedCandle is a Candle plus the derived indicator columns.
// Derived float fields are NaN until enough prior candles exist to fill
// the indicator's lookback; Uptrend is false while either EMA is still
// undefined.
type AnnotatedCandle struct {
	Candle

	PriceChange float64 // single-bar close-to-close change, fraction
	ATR         float64
	LongATR     float64 // SMA of ATR over the long window
	ATRRatio    float64 // ATR / LongATR, NaN when LongATR is NaN or zero
	EMAShort    float64
	EMALong     float64
	Uptrend     bool
	SwingLow    float64 // lowest low over the trailing swing window
}

// Position is the host-owned view of an open trade. This module only
// reads it; all bookkeeping stays with the host.
type Position struct {
	Pair          string
	OpenRate      float64
	OpenTime      time.Time
	CurrentRate   float64
	CurrentProfit float64 // signed fraction relative to OpenRate
}

// NoStoplossChange is the sentinel a stop-loss evaluation returns when
// the host should leave the current stop untouched (the value loosens
// the stop to +100%, which the host treats as a no-op).
const NoStoplossChange = 1.0

// Defined reports whether a derived value carries a meaningful number.
func Defined(v float64) bool { return !math.IsNaN(v) }
