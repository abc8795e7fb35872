// internal/challenge/clock.go
//
// Challenge day bookkeeping. A challenge "day" is a calendar date in a
// configured time zone; the active challenge and every session roll
// over at local midnight. Nothing here runs on a timer: the current
// day key and the time until reset are recomputed from the wall clock
// on every call.

package challenge

import (
	"fmt"
	"time"
)

// Clock maps wall-clock time to challenge day keys.
type Clock struct {
	loc *time.Location
	now func() time.Time // overridable for tests
}

// NewClock returns a Clock using the given location for the midnight
// boundary. A nil location means time.Local.
func NewClock(loc *time.Location) *Clock {
	return NewClockAt(loc, time.Now)
}

// NewClockAt is NewClock with an injectable time source.
func NewClockAt(loc *time.Location, now func() time.Time) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc, now: now}
}

// DayKey returns the current challenge day as YYYY-MM-DD in the
// configured zone.
func (c *Clock) DayKey() string {
	return c.now().In(c.loc).Format("2006-01-02")
}

// NextReset returns the next midnight in the configured zone.
func (c *Clock) NextReset() time.Time {
	t := c.now().In(c.loc)
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, c.loc)
}

// UntilReset returns the remaining time before the day key changes.
// Never cached; callers get a fresh value across a day boundary.
func (c *Clock) UntilReset() time.Duration {
	return c.NextReset().Sub(c.now())
}

// FormatRemaining renders a countdown as "23h 10min".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dmin", h, m)
}
