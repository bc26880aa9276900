package model

// Intern is the primary tracked entity: one document per intern with the
// logged work-hour entries embedded as an ordered array.
type Intern struct {
	ID      string      `json:"id" bson:"_id"`
	Name    string      `json:"name" bson:"name"`
	Email   string      `json:"email" bson:"email"`
	Entries []TimeEntry `json:"entries" bson:"entries"`
}

// TimeEntry is one logged work interval on a specific date. Date is
// "YYYY-MM-DD", StartTime and EndTime are "HH:MM" on that date.
// TotalMinutes is computed once at creation and never recomputed; entries
// are immutable except for deletion.
type TimeEntry struct {
	ID           string `json:"id" bson:"id"`
	Date         string `json:"date" bson:"date"`
	StartTime    string `json:"startTime" bson:"start_time"`
	EndTime      string `json:"endTime" bson:"end_time"`
	TotalMinutes int    `json:"totalMinutes" bson:"total_minutes"`
}
