package timesheet_test

import (
	"errors"
	"testing"
	"time"

	"github.com/estagiotrack/estagio_backend/internal/model"
	"github.com/estagiotrack/estagio_backend/internal/timesheet"
)

func entry(date, start, end string, total int) model.TimeEntry {
	return model.TimeEntry{
		ID:           "e-" + date + "-" + start,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		TotalMinutes: total,
	}
}

func TestValidate(t *testing.T) {
	morning := entry("2024-01-01", "08:00", "11:00", 180)
	afternoon := entry("2024-01-01", "13:00", "17:00", 240)

	tests := []struct {
		name      string
		existing  []model.TimeEntry
		proposal  timesheet.Proposal
		wantTotal int
		wantShift timesheet.Shift
		wantErr   error
	}{
		{
			name:      "first entry of the day",
			existing:  nil,
			proposal:  timesheet.Proposal{Date: "2024-01-01", StartTime: "08:00", EndTime: "11:00"},
			wantTotal: 180,
			wantShift: timesheet.ShiftMorning,
		},
		{
			name:      "afternoon next to existing morning",
			existing:  []model.TimeEntry{morning},
			proposal:  timesheet.Proposal{Date: "2024-01-01", StartTime: "13:00", EndTime: "17:00"},
			wantTotal: 240,
			wantShift: timesheet.ShiftAfternoon,
		},
		{
			name:     "second morning entry same day",
			existing: []model.TimeEntry{morning},
			proposal: timesheet.Proposal{Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00"},
			wantErr:  timesheet.ErrDuplicateShift,
		},
		{
			name:     "second afternoon entry same day",
			existing: []model.TimeEntry{afternoon},
			proposal: timesheet.Proposal{Date: "2024-01-01", StartTime: "14:00", EndTime: "15:00"},
			wantErr:  timesheet.ErrDuplicateShift,
		},
		{
			name:      "same shift on a different date",
			existing:  []model.TimeEntry{morning},
			proposal:  timesheet.Proposal{Date: "2024-01-02", StartTime: "08:00", EndTime: "11:00"},
			wantTotal: 180,
			wantShift: timesheet.ShiftMorning,
		},
		{
			name:      "noon start belongs to the afternoon",
			existing:  []model.TimeEntry{morning},
			proposal:  timesheet.Proposal{Date: "2024-01-01", StartTime: "12:00", EndTime: "13:00"},
			wantTotal: 60,
			wantShift: timesheet.ShiftAfternoon,
		},
		{
			name:     "noon start conflicts with afternoon entry",
			existing: []model.TimeEntry{afternoon},
			proposal: timesheet.Proposal{Date: "2024-01-01", StartTime: "12:00", EndTime: "12:30"},
			wantErr:  timesheet.ErrDuplicateShift,
		},
		{
			name:     "end before start",
			proposal: timesheet.Proposal{Date: "2024-01-01", StartTime: "10:00", EndTime: "09:00"},
			wantErr:  timesheet.ErrInvalidRange,
		},
		{
			name:     "end equals start",
			proposal: timesheet.Proposal{Date: "2024-01-01", StartTime: "10:00", EndTime: "10:00"},
			wantErr:  timesheet.ErrInvalidRange,
		},
		{
			name:     "missing date",
			proposal: timesheet.Proposal{StartTime: "08:00", EndTime: "11:00"},
			wantErr:  timesheet.ErrMissingField,
		},
		{
			name:     "missing start time",
			proposal: timesheet.Proposal{Date: "2024-01-01", EndTime: "11:00"},
			wantErr:  timesheet.ErrMissingField,
		},
		{
			name:     "missing end time",
			proposal: timesheet.Proposal{Date: "2024-01-01", StartTime: "08:00"},
			wantErr:  timesheet.ErrMissingField,
		},
		{
			name:     "malformed date",
			proposal: timesheet.Proposal{Date: "01/01/2024", StartTime: "08:00", EndTime: "11:00"},
			wantErr:  timesheet.ErrInvalidRange,
		},
		{
			name:     "malformed time",
			proposal: timesheet.Proposal{Date: "2024-01-01", StartTime: "8h30", EndTime: "11:00"},
			wantErr:  timesheet.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, shift, err := timesheet.Validate(tt.existing, tt.proposal)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("Validate() total = %d, want %d", total, tt.wantTotal)
			}
			if shift != tt.wantShift {
				t.Errorf("Validate() shift = %q, want %q", shift, tt.wantShift)
			}
		})
	}
}

func TestValidateDoesNotMutateExisting(t *testing.T) {
	existing := []model.TimeEntry{
		entry("2024-01-01", "08:00", "11:00", 180),
		entry("2024-01-01", "13:00", "17:00", 240),
	}
	before := make([]model.TimeEntry, len(existing))
	copy(before, existing)

	_, _, _ = timesheet.Validate(existing, timesheet.Proposal{
		Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00",
	})

	for i := range before {
		if existing[i] != before[i] {
			t.Fatalf("Validate() mutated existing[%d]: %+v", i, existing[i])
		}
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		entries []model.TimeEntry
		want    timesheet.Totals
	}{
		{
			name: "empty",
			want: timesheet.Totals{Hours: 0, Minutes: 0},
		},
		{
			name: "90 plus 45 minutes",
			entries: []model.TimeEntry{
				{TotalMinutes: 90},
				{TotalMinutes: 45},
			},
			want: timesheet.Totals{Hours: 2, Minutes: 15},
		},
		{
			name: "exact hours",
			entries: []model.TimeEntry{
				{TotalMinutes: 60},
				{TotalMinutes: 120},
			},
			want: timesheet.Totals{Hours: 3, Minutes: 0},
		},
		{
			name: "zero-minute entries count as nothing",
			entries: []model.TimeEntry{
				{TotalMinutes: 0},
				{TotalMinutes: 35},
			},
			want: timesheet.Totals{Hours: 0, Minutes: 35},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timesheet.Aggregate(tt.entries)
			if got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := []model.TimeEntry{{TotalMinutes: 90}, {TotalMinutes: 45}, {TotalMinutes: 200}}
	b := []model.TimeEntry{{TotalMinutes: 200}, {TotalMinutes: 90}, {TotalMinutes: 45}}

	if timesheet.Aggregate(a) != timesheet.Aggregate(b) {
		t.Error("Aggregate() should not depend on entry order")
	}

	// Repeated aggregation of the same sequence is stable.
	if timesheet.Aggregate(a) != timesheet.Aggregate(a) {
		t.Error("Aggregate() should be deterministic")
	}
}

func TestShiftOfBoundary(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         timesheet.Shift
	}{
		{0, 0, timesheet.ShiftMorning},
		{11, 59, timesheet.ShiftMorning},
		{12, 0, timesheet.ShiftAfternoon},
		{12, 59, timesheet.ShiftAfternoon},
		{23, 59, timesheet.ShiftAfternoon},
	}

	for _, tt := range tests {
		start := time.Date(2024, 6, 10, tt.hour, tt.minute, 0, 0, time.UTC)
		if got := timesheet.ShiftOf(start); got != tt.want {
			t.Errorf("ShiftOf(%02d:%02d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}
