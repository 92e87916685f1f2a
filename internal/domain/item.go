package domain

import "fmt"

// ItemKind tags the two rentable item variants. Vehicles and gear live in
// separate persisted collections but share one identifier space.
type ItemKind string

const (
	ItemKindVehicle ItemKind = "vehicle"
	ItemKindGear    ItemKind = "gear"
)

// RentalItem is a rentable inventory item. The Kind tag selects which of the
// descriptive fields are meaningful: vehicles carry make/model/year, gear
// carries model only. Type and Capacity apply to both.
type RentalItem struct {
	ID         int      `json:"id"`
	Kind       ItemKind `json:"kind"`
	DailyPrice float64  `json:"daily_price"`
	Rented     bool     `json:"rented"`
	Make       string   `json:"make,omitempty"`
	Model      string   `json:"model"`
	Year       string   `json:"year,omitempty"`
	Type       string   `json:"type"`
	Capacity   string   `json:"capacity,omitempty"`
}

// Name returns the item's display name: "Make Model" for vehicles, the model
// for gear.
func (it *RentalItem) Name() string {
	if it.Kind == ItemKindVehicle {
		return it.Make + " " + it.Model
	}
	return it.Model
}

func (it *RentalItem) Available() bool {
	return !it.Rented
}

func (it *RentalItem) String() string {
	status := "available"
	if it.Rented {
		status = "rented"
	}
	if it.Kind == ItemKindVehicle {
		return fmt.Sprintf("%s %s (%s, %s) - %.2f SEK/day - %s",
			it.Make, it.Model, it.Type, it.Year, it.DailyPrice, status)
	}
	return fmt.Sprintf("%s (%s) - %.2f SEK/day - %s",
		it.Model, it.Type, it.DailyPrice, status)
}
