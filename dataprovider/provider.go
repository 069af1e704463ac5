package dataprovider

import (
	"sync"

	"github.com/kvasirlabs/burst/types"
)

// Provider is the host capability that hands back the most recent
// annotated series for a pair/timeframe. The strategy only reads
// through it; refreshing the series is the host's job.
type Provider interface {
	AnnotatedSeries(pair, timeframe string) []types.AnnotatedCandle
}

// MemoryProvider keeps annotated series in memory, keyed by pair and
// timeframe. Backtest harnesses and the simpler hosts use it directly;
// live hosts typically wrap their own data pipeline instead.
type MemoryProvider struct {
	mu     sync.RWMutex
	series map[string][]types.AnnotatedCandle
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{series: make(map[string][]types.AnnotatedCandle)}
}

func key(pair, timeframe string) string { return pair + "|" + timeframe }

// Set replaces the stored series for a pair/timeframe.
func (p *MemoryProvider) Set(pair, timeframe string, series []types.AnnotatedCandle) {
	cp := make([]types.AnnotatedCandle, len(series))
	copy(cp, series)
	p.mu.Lock()
	p.series[key(pair, timeframe)] = cp
	p.mu.Unlock()
}

// Append adds one annotated candle to the stored series.
func (p *MemoryProvider) Append(pair, timeframe string, c types.AnnotatedCandle) {
	p.mu.Lock()
	k := key(pair, timeframe)
	p.series[k] = append(p.series[k], c)
	p.mu.Unlock()
}

// AnnotatedSeries returns a copy of the stored series; callers may not
// mutate history through the provider.
func (p *MemoryProvider) AnnotatedSeries(pair, timeframe string) []types.AnnotatedCandle {
	p.mu.RLock()
	defer p.mu.RUnlock()
	stored := p.series[key(pair, timeframe)]
	out := make([]types.AnnotatedCandle, len(stored))
	copy(out, stored)
	return out
}
