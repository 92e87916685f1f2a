package storage

import "camping-rental-admin/internal/domain"

// Storage is the persistence collaborator behind the registries. Each entity
// kind loads and saves as a whole collection; there is no incremental or
// append-only path. Loading a collection that was never saved yields an empty
// slice, not an error.
type Storage interface {
	LoadMembers() ([]domain.Member, error)
	SaveMembers(members []domain.Member) error

	LoadVehicles() ([]domain.RentalItem, error)
	SaveVehicles(vehicles []domain.RentalItem) error

	LoadGear() ([]domain.RentalItem, error)
	SaveGear(gear []domain.RentalItem) error

	LoadRentals() ([]domain.Rental, error)
	SaveRentals(rentals []domain.Rental) error

	LoadProfits() ([]domain.DailyProfit, error)
	SaveProfits(profits []domain.DailyProfit) error
}
