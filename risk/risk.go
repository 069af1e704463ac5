package risk

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ROIStep is one row of the host's minimal-ROI schedule: once a trade
// has been open for at least After, the host exits as soon as profit
// reaches MinProfit.
type ROIStep struct {
	After     time.Duration
	MinProfit float64
}

// ROITable is the full schedule. The step with the largest After not
// exceeding the elapsed time applies.
type ROITable []ROIStep

// MinProfitAt returns the profit threshold in force after the supplied
// holding time. ok is false when no step applies yet (empty table or
// all steps still in the future).
func (t ROITable) MinProfitAt(elapsed time.Duration) (float64, bool) {
	best := ROIStep{After: -1}
	found := false
	for _, s := range t {
		if s.After <= elapsed && (!found || s.After > best.After) {
			best = s
			found = true
		}
	}
	return best.MinProfit, found
}

// Sorted returns a copy of the table ordered by ascending After,
// convenient for hosts that render or iterate the schedule.
func (t ROITable) Sorted() ROITable {
	out := make(ROITable, len(t))
	copy(out, t)
	sort.Slice(out, func(i, j int) bool { return out[i].After < out[j].After })
	return out
}

// Validate checks the table rows for sane values.
func (t ROITable) Validate() error {
	for i, s := range t {
		if s.After < 0 {
			return fmt.Errorf("ROI step %d: After (%s) cannot be negative", i, s.After)
		}
		if s.MinProfit < 0 {
			return fmt.Errorf("ROI step %d: MinProfit (%f) cannot be negative", i, s.MinProfit)
		}
	}
	return nil
}

// TrailingStop carries the host-facing trailing-stop parameters: once
// profit reaches PositiveOffset, the host trails the stop Positive
// below the running peak. With OnlyOffsetReached the trail never arms
// before the offset is hit.
type TrailingStop struct {
	Enabled           bool
	Positive          float64
	PositiveOffset    float64
	OnlyOffsetReached bool
}

// Activated reports whether the trail is armed at the given profit.
func (ts TrailingStop) Activated(profit float64) bool {
	if !ts.Enabled {
		return false
	}
	if ts.OnlyOffsetReached {
		return profit >= ts.PositiveOffset
	}
	return true
}

// StopFor returns the trailing stop as a fraction of the open rate for
// the given peak profit. ok is false while the trail is not armed.
func (ts TrailingStop) StopFor(peakProfit float64) (float64, bool) {
	if !ts.Activated(peakProfit) {
		return 0, false
	}
	return peakProfit - ts.Positive, true
}

// Validate checks the trailing parameters.
func (ts TrailingStop) Validate() error {
	if !ts.Enabled {
		return nil
	}
	if ts.Positive <= 0 || ts.Positive >= 1 {
		return fmt.Errorf("trailing Positive (%f) must be in (0, 1)", ts.Positive)
	}
	if ts.OnlyOffsetReached && ts.PositiveOffset < ts.Positive {
		return errors.New("trailing PositiveOffset must be >= Positive when the trail waits for the offset")
	}
	return nil
}

// ClampStop bounds a stop-loss fraction to the static floor: the
// result is never more negative than floor.
func ClampStop(pct, floor float64) float64 {
	if pct < floor {
		return floor
	}
	return pct
}
