// Package timesheet holds the admission and aggregation rules for work-hour
// entries. Everything here is pure: no I/O, no mutation of inputs.
package timesheet

import (
	"fmt"
	"time"

	"github.com/estagiotrack/estagio_backend/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Shift classifies an entry by its start time. An entry starting before
// 12:00 is a morning entry; 12:00 and later is afternoon. The boundary is
// inclusive to the afternoon.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// Proposal is a work-hour entry as submitted by the client, before any
// validation or ID assignment.
type Proposal struct {
	Date      string
	StartTime string
	EndTime   string
}

// ShiftOf returns the shift for a start instant.
func ShiftOf(start time.Time) Shift {
	if start.Hour() < 12 {
		return ShiftMorning
	}
	return ShiftAfternoon
}

// Validate decides whether a proposed entry may be added next to the
// existing ones. On success it returns the entry's total minutes and shift.
// At most one morning and one afternoon entry are allowed per calendar date.
func Validate(existing []model.TimeEntry, p Proposal) (int, Shift, error) {
	if p.Date == "" || p.StartTime == "" || p.EndTime == "" {
		return 0, "", fmt.Errorf("%w: date, startTime and endTime are required", ErrMissingField)
	}

	start, err := parseAt(p.Date, p.StartTime)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q %q", ErrInvalidRange, p.Date, p.StartTime)
	}
	end, err := parseAt(p.Date, p.EndTime)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q %q", ErrInvalidRange, p.Date, p.EndTime)
	}

	if !end.After(start) {
		return 0, "", fmt.Errorf("%w: end time must be after start time", ErrInvalidRange)
	}

	total := int(end.Sub(start) / time.Minute)
	shift := ShiftOf(start)

	for _, e := range existing {
		if e.Date != p.Date {
			continue
		}
		// Stored entries were validated at creation; an unparseable start
		// time cannot conflict.
		es, err := parseAt(e.Date, e.StartTime)
		if err != nil {
			continue
		}
		if ShiftOf(es) == shift {
			return 0, "", fmt.Errorf("%w: a %s entry already exists for %s", ErrDuplicateShift, shift, p.Date)
		}
	}

	return total, shift, nil
}

// Totals is an aggregated hours report: Minutes is always in 0..59.
type Totals struct {
	Hours   int
	Minutes int
}

// Aggregate sums the total minutes of all entries into hours and a minute
// remainder. Order-independent.
func Aggregate(entries []model.TimeEntry) Totals {
	sum := 0
	for _, e := range entries {
		if e.TotalMinutes > 0 {
			sum += e.TotalMinutes
		}
	}
	return Totals{Hours: sum / 60, Minutes: sum % 60}
}

func parseAt(date, clock string) (time.Time, error) {
	return time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
}
