package domain

import (
	"fmt"
	"time"
)

// DayOfWeek day index with Sunday = 0 ... Saturday = 6
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// IsValid returns true for 0..6
func (d DayOfWeek) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return time.Weekday(d).String()
}

// DayOfWeekOf returns the day of week of t in t's location
func DayOfWeekOf(t time.Time) DayOfWeek {
	return DayOfWeek(t.Weekday())
}

// OffsetByDays moves t by n calendar days keeping the wall clock time
func OffsetByDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// StartOfWeek moves t back to the Sunday of its week keeping the wall clock time
func StartOfWeek(t time.Time) time.Time {
	return OffsetByDays(t, -int(DayOfWeekOf(t)))
}

// StartOfDay returns midnight of t's date in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
