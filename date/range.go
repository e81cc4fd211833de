package date

import (
	"fmt"
	"iter"
	"time"
)

// Range represents an inclusive range of dates. The zero value is the
// unbounded "all time" range.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
// An unset boundary does not constrain.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// Days returns an iterator that yields each date within the range, inclusive.
// The range must be bounded on both sides.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if r.From.IsZero() || r.To.IsZero() {
			return
		}
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Window names a reporting window relative to a reference day.
type Window string

const (
	Last30Days   Window = "30d"
	CurrentMonth Window = "month"
	LastMonth    Window = "last-month"
	AllTime      Window = "all"
)

// ParseWindow parses the short name of a reporting window.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Last30Days, CurrentMonth, LastMonth, AllTime:
		return Window(s), nil
	default:
		return "", fmt.Errorf("unknown window %q (want 30d, month, last-month or all)", s)
	}
}

// Range resolves the window into a concrete date range relative to 'today'.
func (w Window) Range(today Date) Range {
	switch w {
	case Last30Days:
		return Range{From: today.Add(-30), To: today}
	case CurrentMonth:
		return Range{From: today.StartOfMonth(), To: today}
	case LastMonth:
		first := today.StartOfMonth().AddMonths(-1)
		return Range{From: first, To: first.EndOfMonth()}
	case AllTime:
		return Range{}
	default:
		return Range{}
	}
}

// MonthOf returns the range covering the calendar month of year/month.
func MonthOf(year int, month int) Range {
	first := New(year, time.Month(month), 1)
	return Range{From: first, To: first.EndOfMonth()}
}
