package ui

import "time"

// FrameLimiter caps how often frames are produced.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewFrameLimiter returns a limiter for the given frames per second.
// A value of zero or less disables limiting.
func NewFrameLimiter(fps int) *FrameLimiter {
	l := &FrameLimiter{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

// Interval returns the minimum time between frames.
func (l *FrameLimiter) Interval() time.Duration {
	return l.interval
}

// Wait sleeps until at least one interval has passed since the previous Wait.
func (l *FrameLimiter) Wait() {
	if l.interval <= 0 {
		return
	}
	if !l.last.IsZero() {
		if elapsed := l.now().Sub(l.last); elapsed < l.interval {
			l.sleep(l.interval - elapsed)
		}
	}
	l.last = l.now()
}
