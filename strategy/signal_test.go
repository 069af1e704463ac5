package strategy

import (
	"math"
	"testing"

	"github.com/kvasirlabs/burst/config"
	"github.com/kvasirlabs/burst/types"
)

// annotatedWithChanges builds a minimal annotated series whose
// price_change column is the supplied values; closes are positive.
func annotatedWithChanges(changes []float64) []types.AnnotatedCandle {
	out := make([]types.AnnotatedCandle, len(changes))
	for i, ch := range changes {
		out[i].Close = 100
		out[i].PriceChange = ch
	}
	return out
}

/*
-----------------------------------------------------------------------
Test 1 – Entry fires exactly at the threshold, never below it, and an
undefined price change (index 0) never signals.
-----------------------------------------------------------------------
*/
func TestSignalEvaluator_Entries(t *testing.T) {
	se := NewSignalEvaluator(config.DefaultConfig())

	series := annotatedWithChanges([]float64{
		math.NaN(), // index 0: undefined, must be false
		0.0099,     // just under 1%
		0.01,       // exactly 1%: fires
		0.025,      // above: fires
		-0.02,      // loss: false
		0.0,        // flat: false
	})
	want := []bool{false, false, true, true, false, false}

	got := se.Entries(series)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries[%d]: expected %v, got %v (price_change=%v)",
				i, want[i], got[i], series[i].PriceChange)
		}
	}

	if !se.EntrySignal(series[:3]) {
		t.Fatalf("EntrySignal: expected true at the threshold candle")
	}
	if se.EntrySignal(series[:2]) {
		t.Fatalf("EntrySignal: expected false just under the threshold")
	}
	if se.EntrySignal(nil) {
		t.Fatalf("EntrySignal: expected false on an empty series")
	}
}

/*
-----------------------------------------------------------------------
Test 2 – Exit is degenerate: true for every candle with a positive
close, regardless of any other column. This behavior is part of the
contract (all exits defer to the host) and must stay as-is.
-----------------------------------------------------------------------
*/
func TestSignalEvaluator_ExitsAlwaysTrueForValidPrices(t *testing.T) {
	se := NewSignalEvaluator(config.DefaultConfig())

	ann := NewIndicatorAnnotator(config.DefaultConfig()).Annotate(syntheticCandles(300))
	for i, flag := range se.Exits(ann) {
		if !flag {
			t.Fatalf("exits[%d]: expected true for close %v", i, ann[i].Close)
		}
	}
	if !se.ExitSignal(ann) {
		t.Fatalf("ExitSignal: expected true on the latest candle")
	}

	// A non-positive close is the only thing that clears the flag.
	zero := []types.AnnotatedCandle{{}}
	if se.Exits(zero)[0] {
		t.Fatalf("exits: expected false for a zero close")
	}
	if se.ExitSignal(nil) {
		t.Fatalf("ExitSignal: expected false on an empty series")
	}
}
