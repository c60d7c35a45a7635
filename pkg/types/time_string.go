package types

import (
	"errors"
	"fmt"
	"time"
)

const timeStringLayout = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString время суток в формате "HH:MM" без даты
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String реализует fmt.Stringer
func (ts TimeString) String() string {
	return string(ts)
}

// Minutes возвращает количество минут от полуночи
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore сравнивает два времени суток (некорректные значения считаются полночью)
func (ts TimeString) IsBefore(other TimeString) bool {
	a, _ := ts.Minutes()
	b, _ := other.Minutes()
	return a < b
}

// IsAfter сравнивает два времени суток
func (ts TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(ts)
}

// OnDate возвращает момент времени ts в дату date (в локации date)
func (ts TimeString) OnDate(date time.Time) (time.Time, error) {
	mins, err := ts.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, date.Location()), nil
}
