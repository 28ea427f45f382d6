package zippack

import "sync/atomic"

// progressTracker accumulates processed bytes for one invocation and turns
// them into percentage callbacks. The counter is owned by a single Pack or
// Extract call; it uses a fetch-add so that an engine processing entries
// concurrently would still accumulate correctly. The reference engines are
// strictly sequential.
type progressTracker struct {
	total     int64
	processed atomic.Int64
	observer  ProgressFunc
}

func newProgressTracker(total int64, observer ProgressFunc) *progressTracker {
	return &progressTracker{total: total, observer: observer}
}

// Add records n more processed bytes and notifies the observer, if any.
// When the total is zero there is no meaningful fraction to report, so every
// update reports 100%. The percentage is otherwise not clamped.
func (t *progressTracker) Add(n int64, label string) {
	processed := t.processed.Add(n)
	if t.observer == nil {
		return
	}
	percentage := 100.0
	if t.total > 0 {
		percentage = float64(processed) / float64(t.total) * 100
	}
	t.observer(percentage, label)
}

// Processed returns the number of bytes recorded so far.
func (t *progressTracker) Processed() int64 {
	return t.processed.Load()
}
