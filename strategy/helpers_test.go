package strategy

import (
	"math"
	"time"

	"github.com/kvasirlabs/burst/types"
)

// ---------------------------------------------------------------------
// Synthetic data
// ---------------------------------------------------------------------

// syntheticCandles builds a deterministic n-bar series with enough
// movement to keep every indicator busy. Prices stay well above zero.
func syntheticCandles(n int) []types.Candle {
	out := make([]types.Candle, n)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		fi := float64(i)
		close := 100 + 10*math.Sin(fi/7) + 0.05*fi
		spread := 1 + 0.5*math.Abs(math.Cos(fi/5))
		out[i] = types.Candle{
			Timestamp: start.Add(time.Duration(i) * time.Minute),
			Open:      close - 0.2,
			High:      close + spread,
			Low:       close - spread,
			Close:     close,
			Volume:    1000 + fi,
		}
	}
	return out
}

// flatCandles builds bars with high == low == close, so every true
// range is zero.
func flatCandles(n int) []types.Candle {
	out := make([]types.Candle, n)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		out[i] = types.Candle{
			Timestamp: start.Add(time.Duration(i) * time.Minute),
			Open:      50,
			High:      50,
			Low:       50,
			Close:     50,
			Volume:    1000,
		}
	}
	return out
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ---------------------------------------------------------------------
// Reference indicator implementations
// ---------------------------------------------------------------------
//
// Straightforward textbook versions, computed independently of the
// production path so the two can be compared value-for-value.

// refEMA seeds with the SMA of the first n values and then applies the
// standard recurrence with k = 2/(n+1). NaN before index n-1.
func refEMA(x []float64, n int) []float64 {
	out := nanSlice(len(x))
	if len(x) < n {
		return out
	}
	k := 2.0 / (float64(n) + 1)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += x[i]
	}
	prev := sum / float64(n)
	out[n-1] = prev
	for i := n; i < len(x); i++ {
		prev = (x[i]-prev)*k + prev
		out[i] = prev
	}
	return out
}

// refATR is Wilder's ATR: true range per bar, a simple average of the
// first n true ranges as seed, then the smoothing recurrence. NaN
// before index n.
func refATR(high, low, close []float64, n int) []float64 {
	out := nanSlice(len(close))
	if len(close) <= n {
		return out
	}
	tr := make([]float64, len(close))
	for i := 1; i < len(close); i++ {
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - close[i-1])
		lc := math.Abs(low[i] - close[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	sum := 0.0
	for i := 1; i <= n; i++ {
		sum += tr[i]
	}
	prev := sum / float64(n)
	out[n] = prev
	for i := n + 1; i < len(close); i++ {
		prev = (prev*(float64(n)-1) + tr[i]) / float64(n)
		out[i] = prev
	}
	return out
}

// refRollingMean averages the trailing n values, NaN-aware: the output
// is NaN while any value in the window is NaN.
func refRollingMean(x []float64, n int) []float64 {
	out := nanSlice(len(x))
	for i := n - 1; i < len(x); i++ {
		sum := 0.0
		ok := true
		for j := i - n + 1; j <= i; j++ {
			if math.IsNaN(x[j]) {
				ok = false
				break
			}
			sum += x[j]
		}
		if ok {
			out[i] = sum / float64(n)
		}
	}
	return out
}

// refRollingMin takes the minimum of the trailing n values.
func refRollingMin(x []float64, n int) []float64 {
	out := nanSlice(len(x))
	for i := n - 1; i < len(x); i++ {
		min := x[i]
		for j := i - n + 1; j < i; j++ {
			if x[j] < min {
				min = x[j]
			}
		}
		out[i] = min
	}
	return out
}
