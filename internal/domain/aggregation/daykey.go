package aggregation

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the locale-neutral layout of a sample's textual timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	StrategyDayOfMonth   = "day-of-month"
	StrategyCalendarDate = "calendar-date"
)

var ErrMalformedTimestamp = errors.New("malformed forecast timestamp")

// DayKey groups samples that belong to the same day within one aggregation call.
// It carries no meaning outside that call and is never shown or stored.
type DayKey int

// DayKeyFunc derives the DayKey of a sample from its textual timestamp.
type DayKeyFunc func(timestampText string) (DayKey, error)

// DayOfMonth keys samples by day of month (1-31). Two samples with the same
// day of month collapse together even when their months differ.
func DayOfMonth(timestampText string) (DayKey, error) {
	t, err := parseTimestamp(timestampText)
	if err != nil {
		return 0, err
	}
	return DayKey(t.Day()), nil
}

// CalendarDate keys samples by full date, encoded as YYYYMMDD.
func CalendarDate(timestampText string) (DayKey, error) {
	t, err := parseTimestamp(timestampText)
	if err != nil {
		return 0, err
	}
	year, month, day := t.Date()
	return DayKey(year*10000 + int(month)*100 + day), nil
}

// DayKeyStrategy resolves a configured strategy name. Empty selects DayOfMonth.
func DayKeyStrategy(name string) (DayKeyFunc, error) {
	switch name {
	case "", StrategyDayOfMonth:
		return DayOfMonth, nil
	case StrategyCalendarDate:
		return CalendarDate, nil
	default:
		return nil, fmt.Errorf("unknown day key strategy %q", name)
	}
}

func parseTimestamp(text string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrMalformedTimestamp, text, err)
	}
	return t, nil
}
