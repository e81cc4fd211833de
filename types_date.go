package takatracker

import "github.com/takatracker/takatracker/date"

// Date and Range are re-exported here so that most callers only need this
// package for day-to-day ledger work.
type (
	Date   = date.Date
	Range  = date.Range
	Window = date.Window
)

// Re-exported reporting windows.
const (
	Last30Days   = date.Last30Days
	CurrentMonth = date.CurrentMonth
	LastMonth    = date.LastMonth
	AllTime      = date.AllTime
)

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a Date from an ISO string, leniently.
func ParseDate(s string) (Date, error) { return date.Parse(s) }

// MustParseDate parses a Date from an ISO string, panicking on error.
func MustParseDate(s string) Date { return date.MustParse(s) }

// NewRange creates a new inclusive date range.
func NewRange(from, to Date) Range { return date.NewRange(from, to) }

// ParseWindow parses the short name of a reporting window.
func ParseWindow(s string) (Window, error) { return date.ParseWindow(s) }
