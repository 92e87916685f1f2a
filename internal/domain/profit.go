package domain

// DailyProfit pairs one calendar date with the rental income accumulated for
// that date. The profit calendar is derived state: it can always be thrown
// away and rebuilt from the rentals, members, and inventory collections.
type DailyProfit struct {
	Date   string  `json:"date"`
	Income float64 `json:"income"`
}
