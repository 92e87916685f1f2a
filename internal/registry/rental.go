package registry

import (
	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/storage"
)

// RentalRegistry owns the open rentals. Rental IDs are monotonically
// increasing within the collection: the next ID is always max existing + 1.
type RentalRegistry struct {
	store   storage.Storage
	rentals []domain.Rental
	lastID  int
}

func NewRentalRegistry(store storage.Storage) *RentalRegistry {
	r := &RentalRegistry{store: store}

	rentals, err := store.LoadRentals()
	if err != nil {
		logger.WithRegistry("rentals").Error("Failed to load rentals, starting empty", "error", err)
		rentals = []domain.Rental{}
	}
	r.rentals = rentals

	for _, rental := range r.rentals {
		if rental.ID > r.lastID {
			r.lastID = rental.ID
		}
	}

	return r
}

// NextID returns the next sequential rental identifier.
func (r *RentalRegistry) NextID() int {
	r.lastID++
	return r.lastID
}

// All returns the open rentals.
func (r *RentalRegistry) All() []domain.Rental {
	return append([]domain.Rental{}, r.rentals...)
}

// FindByID returns the rental with the given ID, or nil.
func (r *RentalRegistry) FindByID(id int) *domain.Rental {
	for i := range r.rentals {
		if r.rentals[i].ID == id {
			return &r.rentals[i]
		}
	}
	return nil
}

// Add appends a rental and persists the collection.
func (r *RentalRegistry) Add(rental domain.Rental) error {
	r.rentals = append(r.rentals, rental)
	if rental.ID > r.lastID {
		r.lastID = rental.ID
	}
	return r.save()
}

// Remove deletes the rental with the given ID and persists.
func (r *RentalRegistry) Remove(id int) error {
	for i := range r.rentals {
		if r.rentals[i].ID == id {
			r.rentals = append(r.rentals[:i], r.rentals[i+1:]...)
			return r.save()
		}
	}
	return ErrNotFound
}

func (r *RentalRegistry) save() error {
	if err := r.store.SaveRentals(r.rentals); err != nil {
		logger.WithRegistry("rentals").Error("Failed to save rentals, in-memory state is ahead of disk", "error", err)
		return err
	}
	return nil
}
