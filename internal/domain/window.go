package domain

import "time"

// TimeWindow is the visible calendar range, [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// HoursOpen returns the number of whole hours in the window.
// ok is false when the window is empty, reversed or not a whole number of hours.
func (w TimeWindow) HoursOpen() (hours int, ok bool) {
	d := w.Duration()
	if d <= 0 || d%time.Hour != 0 {
		return 0, false
	}
	return int(d / time.Hour), true
}

// Slot is one bookable 15-minute boundary of a calendar column
type Slot struct {
	Time time.Time
}

// Minute returns the slot time truncated to the minute
func (s Slot) Minute() time.Time {
	return s.Time.Truncate(time.Minute)
}
