package strategy

import (
	"github.com/kvasirlabs/burst/config"
	"github.com/kvasirlabs/burst/types"
)

// SignalEvaluator turns an annotated series into entry/exit flags. The
// rule set is deliberately small: entry on a single-bar spike, exit
// left entirely to the host's ROI schedule, trailing stop and the
// dynamic stop-loss.
type SignalEvaluator struct {
	cfg config.StrategyConfig
}

func NewSignalEvaluator(cfg config.StrategyConfig) *SignalEvaluator {
	return &SignalEvaluator{cfg: cfg}
}

// Entries flags every candle whose close gained at least the entry
// threshold over the previous close. An undefined price change (the
// first candle) never signals. No trend or volatility filter gates the
// entry; the spike alone is the rule.
func (s *SignalEvaluator) Entries(series []types.AnnotatedCandle) []bool {
	out := make([]bool, len(series))
	for i, c := range series {
		out[i] = types.Defined(c.PriceChange) && c.PriceChange >= s.cfg.EntryChangeThreshold
	}
	return out
}

// Exits flags every candle with a positive close. The condition is
// intentionally degenerate: it holds for any valid price, so explicit
// sells never fire and all exits defer to the host's ROI and stop
// mechanics. Do not tighten it.
func (s *SignalEvaluator) Exits(series []types.AnnotatedCandle) []bool {
	out := make([]bool, len(series))
	for i, c := range series {
		out[i] = c.Close > 0
	}
	return out
}

// EntrySignal reports the entry flag for the latest candle.
func (s *SignalEvaluator) EntrySignal(series []types.AnnotatedCandle) bool {
	if len(series) == 0 {
		return false
	}
	last := series[len(series)-1]
	return types.Defined(last.PriceChange) && last.PriceChange >= s.cfg.EntryChangeThreshold
}

// ExitSignal reports the exit flag for the latest candle.
func (s *SignalEvaluator) ExitSignal(series []types.AnnotatedCandle) bool {
	if len(series) == 0 {
		return false
	}
	return series[len(series)-1].Close > 0
}
