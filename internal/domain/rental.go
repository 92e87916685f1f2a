package domain

import "time"

// DateLayout is the calendar date format used across persisted records.
const DateLayout = "2006-01-02"

// Rental binds a member to an item for a closed date range
// [StartDate, StartDate + Days - 1]. A rental exists from creation until it is
// returned; returning deletes the record, there is no retained completed state.
type Rental struct {
	ID        int    `json:"id"`
	MemberID  int    `json:"member_id"`
	ItemID    int    `json:"item_id"`
	StartDate string `json:"start_date"`
	Days      int    `json:"rental_days"`
}

// Start parses the rental's start date.
func (r *Rental) Start() (time.Time, error) {
	return time.Parse(DateLayout, r.StartDate)
}

// End returns the last day of the rental's closed date range.
func (r *Rental) End() (time.Time, error) {
	start, err := r.Start()
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, r.Days-1), nil
}

// Covers reports whether the given date falls inside the rental's range.
func (r *Rental) Covers(date time.Time) bool {
	start, err := r.Start()
	if err != nil {
		return false
	}
	end := start.AddDate(0, 0, r.Days-1)
	return !date.Before(start) && !date.After(end)
}
