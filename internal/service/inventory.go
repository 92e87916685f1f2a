package service

import (
	"errors"
	"fmt"

	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/registry"
)

type inventoryService struct {
	inventory *registry.Inventory
}

func NewInventoryService(inventory *registry.Inventory) InventoryService {
	return &inventoryService{inventory: inventory}
}

func (s *inventoryService) AddVehicle(make, model, vehicleType, year, capacity string, dailyPrice float64) (*domain.RentalItem, error) {
	if dailyPrice < 0 {
		return nil, fmt.Errorf("daily price must not be negative: %.2f", dailyPrice)
	}

	item := domain.RentalItem{
		ID:         s.inventory.NextID(),
		Kind:       domain.ItemKindVehicle,
		DailyPrice: dailyPrice,
		Make:       make,
		Model:      model,
		Year:       year,
		Type:       vehicleType,
		Capacity:   capacity,
	}

	if err := s.inventory.Add(item); err != nil {
		logger.WithService("inventory").Error("Failed to persist new vehicle", "item_id", item.ID, "error", err)
	}

	logger.WithService("inventory").Info("Vehicle added", "item_id", item.ID, "name", item.Name())
	return &item, nil
}

func (s *inventoryService) AddGear(model, gearType, capacity string, dailyPrice float64) (*domain.RentalItem, error) {
	if dailyPrice < 0 {
		return nil, fmt.Errorf("daily price must not be negative: %.2f", dailyPrice)
	}

	item := domain.RentalItem{
		ID:         s.inventory.NextID(),
		Kind:       domain.ItemKindGear,
		DailyPrice: dailyPrice,
		Model:      model,
		Type:       gearType,
		Capacity:   capacity,
	}

	if err := s.inventory.Add(item); err != nil {
		logger.WithService("inventory").Error("Failed to persist new gear", "item_id", item.ID, "error", err)
	}

	logger.WithService("inventory").Info("Gear added", "item_id", item.ID, "name", item.Name())
	return &item, nil
}

func (s *inventoryService) Update(item domain.RentalItem) error {
	if err := s.inventory.Update(item); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (s *inventoryService) Remove(itemID int) error {
	if err := s.inventory.Remove(itemID); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	logger.WithService("inventory").Info("Item removed", "item_id", itemID)
	return nil
}

func (s *inventoryService) Vehicles() []domain.RentalItem {
	return s.inventory.Vehicles()
}

func (s *inventoryService) Gear() []domain.RentalItem {
	return s.inventory.Gear()
}

func (s *inventoryService) AvailableVehicles() []domain.RentalItem {
	return s.inventory.AvailableVehicles()
}

func (s *inventoryService) AvailableGear() []domain.RentalItem {
	return s.inventory.AvailableGear()
}

func (s *inventoryService) Find(itemID int) (*domain.RentalItem, error) {
	item := s.inventory.FindByID(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Describe returns "Name (Type)" for an item ID, with a placeholder when the
// item is gone.
func (s *inventoryService) Describe(itemID int) string {
	item := s.inventory.FindByID(itemID)
	if item == nil {
		return "Unknown Item"
	}
	return fmt.Sprintf("%s (%s)", item.Name(), item.Type)
}
