package timing

import "time"

// TickerLimiter paces the terminal poll loop. Holds are measured between
// frames and drags are sampled once per frame, so at TargetFPS a 500ms hold
// is seen within one frame and a swipe spans several samples.
type TickerLimiter struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewTickerLimiter ticks at TargetFPS.
func NewTickerLimiter() *TickerLimiter {
	return NewTickerLimiterEvery(FrameDuration())
}

// NewTickerLimiterEvery ticks once per interval.
func NewTickerLimiterEvery(interval time.Duration) *TickerLimiter {
	return &TickerLimiter{
		ticker:   time.NewTicker(interval),
		interval: interval,
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
}

// Reset restarts the interval, dropping time already elapsed in the frame.
func (t *TickerLimiter) Reset() {
	t.ticker.Reset(t.interval)
}

// Stop releases the ticker. The limiter must not be waited on afterwards.
func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
