package service

import (
	"fmt"
	"time"

	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/registry"
)

type rentalService struct {
	rentals   *registry.RentalRegistry
	inventory *registry.Inventory
	members   *registry.MemberRegistry
}

func NewRentalService(
	rentals *registry.RentalRegistry,
	inventory *registry.Inventory,
	members *registry.MemberRegistry,
) RentalService {
	return &rentalService{
		rentals:   rentals,
		inventory: inventory,
		members:   members,
	}
}

// Create opens a rental: assigns the next ID, marks the item rented, appends
// the record, and persists both the rentals collection and the item's owning
// inventory list. Validation failures happen before any mutation.
func (s *rentalService) Create(member *domain.Member, item *domain.RentalItem, start time.Time, days int) (*domain.Rental, error) {
	if member == nil {
		return nil, ErrNoMember
	}
	if item == nil {
		return nil, ErrNoItem
	}
	if days <= 0 {
		return nil, ErrInvalidDays
	}
	if item.Rented {
		return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name())
	}

	rental := domain.Rental{
		ID:        s.rentals.NextID(),
		MemberID:  member.ID,
		ItemID:    item.ID,
		StartDate: start.Format(domain.DateLayout),
		Days:      days,
	}

	if err := s.inventory.SetRented(item.ID, true); err != nil {
		logger.WithService("rental").Error("Failed to persist item rented flag", "item_id", item.ID, "error", err)
	}
	if err := s.rentals.Add(rental); err != nil {
		logger.WithService("rental").Error("Failed to persist new rental", "rental_id", rental.ID, "error", err)
	}

	logger.WithService("rental").Info("Rental created",
		"rental_id", rental.ID, "member_id", member.ID, "item_id", item.ID,
		"start", rental.StartDate, "days", days)

	return &rental, nil
}

// Return closes a rental: clears the item's rented flag, removes the record,
// and persists both collections. When the referenced item is gone the removal
// still proceeds and the outcome carries a data-integrity warning.
func (s *rentalService) Return(rentalID int) (*ReturnOutcome, error) {
	rental := s.rentals.FindByID(rentalID)
	if rental == nil {
		return nil, ErrRentalNotFound
	}

	outcome := &ReturnOutcome{Rental: *rental}

	if s.inventory.FindByID(rental.ItemID) == nil {
		logger.WithService("rental").Warn("Returned rental references a missing item",
			"rental_id", rentalID, "item_id", rental.ItemID)
		outcome.ItemMissing = true
	} else if err := s.inventory.SetRented(rental.ItemID, false); err != nil {
		logger.WithService("rental").Error("Failed to persist item rented flag", "item_id", rental.ItemID, "error", err)
	}

	if err := s.rentals.Remove(rentalID); err != nil {
		return nil, err
	}

	logger.WithService("rental").Info("Rental returned", "rental_id", rentalID, "item_id", rental.ItemID)
	return outcome, nil
}

func (s *rentalService) List() []domain.Rental {
	return s.rentals.All()
}

// Describe renders one rental for listings, resolving member and item names
// with "Unknown" placeholders for dangling references.
func (s *rentalService) Describe(rental domain.Rental) string {
	memberName := "Unknown Member"
	if m := s.members.FindByID(rental.MemberID); m != nil {
		memberName = m.FullName()
	}
	itemName := "Unknown Item"
	if it := s.inventory.FindByID(rental.ItemID); it != nil {
		itemName = fmt.Sprintf("%s (%s)", it.Name(), it.Type)
	}
	return fmt.Sprintf("#%d %s -> %s from %s for %d day(s)",
		rental.ID, memberName, itemName, rental.StartDate, rental.Days)
}
