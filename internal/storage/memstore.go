package storage

import (
	"errors"

	"camping-rental-admin/internal/domain"
)

// MemStore is an in-memory Storage used by tests and by callers that want a
// scratch data set without touching disk. FailSaves makes every save return
// an error so save-failure handling can be exercised.
type MemStore struct {
	Members  []domain.Member
	Vehicles []domain.RentalItem
	Gear     []domain.RentalItem
	Rentals  []domain.Rental
	Profits  []domain.DailyProfit

	FailSaves bool
	SaveCount int
}

var errSaveFailed = errors.New("save failed")

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) LoadMembers() ([]domain.Member, error) {
	return append([]domain.Member{}, s.Members...), nil
}

func (s *MemStore) SaveMembers(members []domain.Member) error {
	if s.FailSaves {
		return errSaveFailed
	}
	s.SaveCount++
	s.Members = append([]domain.Member{}, members...)
	return nil
}

func (s *MemStore) LoadVehicles() ([]domain.RentalItem, error) {
	return append([]domain.RentalItem{}, s.Vehicles...), nil
}

func (s *MemStore) SaveVehicles(vehicles []domain.RentalItem) error {
	if s.FailSaves {
		return errSaveFailed
	}
	s.SaveCount++
	s.Vehicles = append([]domain.RentalItem{}, vehicles...)
	return nil
}

func (s *MemStore) LoadGear() ([]domain.RentalItem, error) {
	return append([]domain.RentalItem{}, s.Gear...), nil
}

func (s *MemStore) SaveGear(gear []domain.RentalItem) error {
	if s.FailSaves {
		return errSaveFailed
	}
	s.SaveCount++
	s.Gear = append([]domain.RentalItem{}, gear...)
	return nil
}

func (s *MemStore) LoadRentals() ([]domain.Rental, error) {
	return append([]domain.Rental{}, s.Rentals...), nil
}

func (s *MemStore) SaveRentals(rentals []domain.Rental) error {
	if s.FailSaves {
		return errSaveFailed
	}
	s.SaveCount++
	s.Rentals = append([]domain.Rental{}, rentals...)
	return nil
}

func (s *MemStore) LoadProfits() ([]domain.DailyProfit, error) {
	return append([]domain.DailyProfit{}, s.Profits...), nil
}

func (s *MemStore) SaveProfits(profits []domain.DailyProfit) error {
	if s.FailSaves {
		return errSaveFailed
	}
	s.SaveCount++
	s.Profits = append([]domain.DailyProfit{}, profits...)
	return nil
}
