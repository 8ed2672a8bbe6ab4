// Package clock formats the system time for the dashboard. It is a
// thin periodic read of the wall clock; the UI drives the tick cadence.
package clock

import "time"

// Clock formats the current time for a fixed timezone.
type Clock struct {
	loc        *time.Location
	twentyFour bool

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Clock for the given timezone. A nil location uses the
// system local zone.
func New(loc *time.Location, twentyFourHour bool) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc, twentyFour: twentyFourHour, now: time.Now}
}

// TwentyFourHour reports the current time format.
func (c *Clock) TwentyFourHour() bool {
	return c.twentyFour
}

// SetTwentyFourHour switches the time format.
func (c *Clock) SetTwentyFourHour(v bool) {
	c.twentyFour = v
}

// Now returns the current time in the clock's timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// TimeString renders the current time, e.g. "14:05:09" or "2:05:09 PM".
func (c *Clock) TimeString() string {
	if c.twentyFour {
		return c.Now().Format("15:04:05")
	}
	return c.Now().Format("3:04:05 PM")
}

// DateString renders the current date, e.g. "Monday, 15 June 2026".
func (c *Clock) DateString() string {
	return c.Now().Format("Monday, 2 January 2006")
}

// ZoneString renders the timezone abbreviation and UTC offset,
// e.g. "CEST +02:00".
func (c *Clock) ZoneString() string {
	return c.Now().Format("MST -07:00")
}
