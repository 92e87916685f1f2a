package registry

import (
	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/storage"
)

// Inventory owns the vehicle and gear collections. The two kinds persist to
// separate files but share one sequential identifier space so a rental's item
// reference is unambiguous.
type Inventory struct {
	store    storage.Storage
	vehicles []domain.RentalItem
	gear     []domain.RentalItem
}

func NewInventory(store storage.Storage) *Inventory {
	inv := &Inventory{store: store}

	vehicles, err := store.LoadVehicles()
	if err != nil {
		logger.WithRegistry("inventory").Error("Failed to load vehicles, starting empty", "error", err)
		vehicles = []domain.RentalItem{}
	}
	inv.vehicles = vehicles

	gear, err := store.LoadGear()
	if err != nil {
		logger.WithRegistry("inventory").Error("Failed to load gear, starting empty", "error", err)
		gear = []domain.RentalItem{}
	}
	inv.gear = gear

	return inv
}

// NextID returns max existing item ID + 1 across both kinds, starting at 1.
func (inv *Inventory) NextID() int {
	max := 0
	for _, it := range inv.vehicles {
		if it.ID > max {
			max = it.ID
		}
	}
	for _, it := range inv.gear {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

func (inv *Inventory) Vehicles() []domain.RentalItem {
	return append([]domain.RentalItem{}, inv.vehicles...)
}

func (inv *Inventory) Gear() []domain.RentalItem {
	return append([]domain.RentalItem{}, inv.gear...)
}

// AvailableVehicles returns vehicles not currently rented.
func (inv *Inventory) AvailableVehicles() []domain.RentalItem {
	return available(inv.vehicles)
}

// AvailableGear returns gear not currently rented.
func (inv *Inventory) AvailableGear() []domain.RentalItem {
	return available(inv.gear)
}

func available(items []domain.RentalItem) []domain.RentalItem {
	out := []domain.RentalItem{}
	for _, it := range items {
		if it.Available() {
			out = append(out, it)
		}
	}
	return out
}

// FindByID searches both kinds and returns the item, or nil.
func (inv *Inventory) FindByID(id int) *domain.RentalItem {
	for i := range inv.vehicles {
		if inv.vehicles[i].ID == id {
			return &inv.vehicles[i]
		}
	}
	for i := range inv.gear {
		if inv.gear[i].ID == id {
			return &inv.gear[i]
		}
	}
	return nil
}

// Add stores the item in the list its Kind selects and persists that list.
func (inv *Inventory) Add(item domain.RentalItem) error {
	if item.Kind == domain.ItemKindVehicle {
		inv.vehicles = append(inv.vehicles, item)
		return inv.saveVehicles()
	}
	inv.gear = append(inv.gear, item)
	return inv.saveGear()
}

// Update replaces the stored item with the same ID and persists its list.
func (inv *Inventory) Update(item domain.RentalItem) error {
	for i := range inv.vehicles {
		if inv.vehicles[i].ID == item.ID {
			inv.vehicles[i] = item
			return inv.saveVehicles()
		}
	}
	for i := range inv.gear {
		if inv.gear[i].ID == item.ID {
			inv.gear[i] = item
			return inv.saveGear()
		}
	}
	return ErrNotFound
}

// Remove deletes the item with the given ID and persists its list.
func (inv *Inventory) Remove(id int) error {
	for i := range inv.vehicles {
		if inv.vehicles[i].ID == id {
			inv.vehicles = append(inv.vehicles[:i], inv.vehicles[i+1:]...)
			return inv.saveVehicles()
		}
	}
	for i := range inv.gear {
		if inv.gear[i].ID == id {
			inv.gear = append(inv.gear[:i], inv.gear[i+1:]...)
			return inv.saveGear()
		}
	}
	return ErrNotFound
}

// SetRented flips an item's rented flag and persists the owning list.
func (inv *Inventory) SetRented(id int, rented bool) error {
	item := inv.FindByID(id)
	if item == nil {
		return ErrNotFound
	}
	item.Rented = rented
	if item.Kind == domain.ItemKindVehicle {
		return inv.saveVehicles()
	}
	return inv.saveGear()
}

func (inv *Inventory) saveVehicles() error {
	if err := inv.store.SaveVehicles(inv.vehicles); err != nil {
		logger.WithRegistry("inventory").Error("Failed to save vehicles, in-memory state is ahead of disk", "error", err)
		return err
	}
	return nil
}

func (inv *Inventory) saveGear() error {
	if err := inv.store.SaveGear(inv.gear); err != nil {
		logger.WithRegistry("inventory").Error("Failed to save gear, in-memory state is ahead of disk", "error", err)
		return err
	}
	return nil
}
