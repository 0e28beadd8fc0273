package game

import (
	"math/rand/v2"
	"time"
)

// Scheduler is a repeating countdown with a randomized interval, advanced by
// wall-clock delta once per frame. Every notification channel (email toasts,
// Messages, Discord, phone calls, activity log) owns an independent one, so
// no coordination between channels is ever needed.
type Scheduler struct {
	min, max  time.Duration
	remaining time.Duration
	rng       *rand.Rand
}

func NewScheduler(min, max time.Duration, rng *rand.Rand) *Scheduler {
	if max < min {
		min, max = max, min
	}
	if min <= 0 {
		min = time.Second
	}
	if max < min {
		max = min
	}
	s := &Scheduler{min: min, max: max, rng: rng}
	s.remaining = s.nextInterval()
	return s
}

// Advance moves the countdown forward and reports how many times it expired.
// A delta longer than several intervals yields several fires; each fire
// re-arms with a fresh randomized interval.
func (s *Scheduler) Advance(delta time.Duration) int {
	if delta <= 0 {
		return 0
	}
	fires := 0
	s.remaining -= delta
	for s.remaining <= 0 {
		fires++
		s.remaining += s.nextInterval()
	}
	return fires
}

func (s *Scheduler) Remaining() time.Duration { return s.remaining }

func (s *Scheduler) nextInterval() time.Duration {
	if s.max == s.min {
		return s.min
	}
	if s.rng == nil {
		return (s.min + s.max) / 2
	}
	return s.min + time.Duration(s.rng.Int64N(int64(s.max-s.min)))
}

// OneShot is a single-fire countdown used for delayed follow-ups, such as the
// congratulatory email that lands a moment after an activity-log entry.
type OneShot struct {
	remaining time.Duration
	armed     bool
}

func NewOneShot(d time.Duration) *OneShot {
	return &OneShot{remaining: d, armed: d > 0}
}

// Advance reports true exactly once, on the tick the countdown reaches zero.
func (o *OneShot) Advance(delta time.Duration) bool {
	if !o.armed {
		return false
	}
	o.remaining -= delta
	if o.remaining <= 0 {
		o.armed = false
		return true
	}
	return false
}

func (o *OneShot) Pending() bool { return o.armed }
