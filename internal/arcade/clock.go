package arcade

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled timer within one Clock.
type TimerID int

// Fired is a timer expiry reported by Clock.Advance.
type Fired struct {
	ID  TimerID
	Key string
	At  time.Duration
}

type timer struct {
	id     TimerID
	key    string
	due    time.Duration
	period time.Duration
}

// Clock is a simulated game clock. It only moves when Advance is called, so
// a round paused by its host never sees its timers expire.
type Clock struct {
	now    time.Duration
	nextID TimerID
	timers []*timer
}

// NewClock returns a clock at time zero with nothing scheduled.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the simulated time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Every schedules a repeating timer. The first expiry is one period from now.
func (c *Clock) Every(period time.Duration, key string) TimerID {
	if period <= 0 {
		period = time.Millisecond
	}
	return c.add(key, period, period)
}

// After schedules a one-shot timer.
func (c *Clock) After(delay time.Duration, key string) TimerID {
	if delay < 0 {
		delay = 0
	}
	return c.add(key, delay, 0)
}

func (c *Clock) add(key string, delay, period time.Duration) TimerID {
	c.nextID++
	c.timers = append(c.timers, &timer{
		id:     c.nextID,
		key:    key,
		due:    c.now + delay,
		period: period,
	})
	return c.nextID
}

// Cancel removes a pending timer. Cancelling an unknown or expired timer is a
// no-op; the result reports whether anything was removed.
func (c *Clock) Cancel(id TimerID) bool {
	for i, t := range c.timers {
		if t.id == id {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of scheduled timers.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Advance moves the clock forward by dt and returns every expiry in order of
// due time, ties broken by scheduling order. A repeating timer that falls
// behind fires once for each period boundary crossed.
func (c *Clock) Advance(dt time.Duration) []Fired {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt

	var fired []Fired
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		fired = append(fired, Fired{ID: next.id, Key: next.key, At: next.due})
		if next.period > 0 {
			next.due += next.period
		} else {
			c.Cancel(next.id)
		}
	}
	c.now = target
	return fired
}

// nextDue returns the earliest timer due at or before target.
func (c *Clock) nextDue(target time.Duration) *timer {
	var due []*timer
	for _, t := range c.timers {
		if t.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due[0]
}
