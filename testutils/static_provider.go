package testutils

import "github.com/kvasirlabs/burst/types"

// StaticProvider hands back a pre-scripted annotated series regardless
// of the pair/timeframe it is asked for, and records the last request
// so tests can assert on it.
type StaticProvider struct {
	Series []types.AnnotatedCandle

	LastPair      string
	LastTimeframe string
	Calls         int
}

// NewStaticProvider wraps the supplied series.
func NewStaticProvider(series []types.AnnotatedCandle) *StaticProvider {
	return &StaticProvider{Series: series}
}

func (p *StaticProvider) AnnotatedSeries(pair, timeframe string) []types.AnnotatedCandle {
	p.LastPair = pair
	p.LastTimeframe = timeframe
	p.Calls++
	out := make([]types.AnnotatedCandle, len(p.Series))
	copy(out, p.Series)
	return out
}
