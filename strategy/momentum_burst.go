// MomentumBurst is a 1-minute spike strategy: it enters whenever a
// candle closes at least 1% above the previous close and exits only
// through the host's ROI schedule, trailing stop and the dynamic
// ATR/swing-low stop-loss computed here.
//
// The host drives the whole cycle:
//
//   - Annotate on every data refresh,
//   - EntrySignal / ExitSignal once per new candle,
//   - Stoploss on every stop check while a position is open.
package strategy

import (
	"errors"
	"time"

	"github.com/kvasirlabs/burst/config"
	"github.com/kvasirlabs/burst/dataprovider"
	"github.com/kvasirlabs/burst/logger"
	"github.com/kvasirlabs/burst/metrics"
	"github.com/kvasirlabs/burst/types"
)

// MomentumBurst bundles the annotator, signal evaluator and stop-loss
// calculator for one trading pair.
type MomentumBurst struct {
	Cfg  config.StrategyConfig
	Log  logger.Logger
	Data dataprovider.Provider
	Pair string

	annotator *IndicatorAnnotator
	signals   *SignalEvaluator
	stops     *StopLossCalculator
}

// NewMomentumBurst validates the config and wires the components. A
// nil logger falls back to a no-op logger; the data provider is
// required because the stop-loss calculator reads through it.
func NewMomentumBurst(pair string, cfg config.StrategyConfig,
	data dataprovider.Provider, log logger.Logger) (*MomentumBurst, error) {

	if pair == "" {
		return nil, errors.New("pair cannot be empty")
	}
	if data == nil {
		return nil, errors.New("data provider is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &MomentumBurst{
		Cfg:       cfg,
		Log:       log,
		Data:      data,
		Pair:      pair,
		annotator: NewIndicatorAnnotator(cfg),
		signals:   NewSignalEvaluator(cfg),
		stops:     NewStopLossCalculator(cfg, data, log),
	}, nil
}

// Annotate recomputes the derived columns over the series the host
// supplies. The host stores the result back into its data provider.
func (m *MomentumBurst) Annotate(candles []types.Candle) []types.AnnotatedCandle {
	return m.annotator.Annotate(candles)
}

// Entries returns the per-candle entry flags for backtest reporting.
func (m *MomentumBurst) Entries(series []types.AnnotatedCandle) []bool {
	return m.signals.Entries(series)
}

// Exits returns the per-candle exit flags for backtest reporting.
func (m *MomentumBurst) Exits(series []types.AnnotatedCandle) []bool {
	return m.signals.Exits(series)
}

// EntrySignal reports whether the latest candle triggers an entry, and
// instruments the decision.
func (m *MomentumBurst) EntrySignal(series []types.AnnotatedCandle) bool {
	if !m.signals.EntrySignal(series) {
		return false
	}
	last := series[len(series)-1]
	m.Log.Info("entry_signal",
		logger.String("pair", m.Pair),
		logger.Float64("price_change", last.PriceChange),
		logger.Float64("close", last.Close),
	)
	metrics.EntrySignals.WithLabelValues(m.Pair).Inc()
	return true
}

// ExitSignal reports the (degenerate, always-true for valid prices)
// exit flag for the latest candle.
func (m *MomentumBurst) ExitSignal(series []types.AnnotatedCandle) bool {
	return m.signals.ExitSignal(series)
}

// Stoploss delegates to the stop-loss calculator for an open position.
func (m *MomentumBurst) Stoploss(pos types.Position, now time.Time) float64 {
	return m.stops.Stoploss(pos, now)
}
