package service

import (
	"errors"
	"time"

	"camping-rental-admin/internal/domain"
)

// Input and state errors callers branch on with errors.Is. None of these ever
// leaves partial state behind: validation happens before any mutation.
var (
	ErrNoMember        = errors.New("rental requires a member")
	ErrNoItem          = errors.New("rental requires an item")
	ErrInvalidDays     = errors.New("rental days must be positive")
	ErrItemUnavailable = errors.New("item is already rented")
	ErrRentalNotFound  = errors.New("rental not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrItemNotFound    = errors.New("item not found")
)

// ReturnOutcome reports what a rental return did. ItemMissing is a
// data-integrity warning: the rental referenced an item no longer in the
// inventory, so its rented flag could not be cleared, but the rental record
// was still removed.
type ReturnOutcome struct {
	Rental      domain.Rental
	ItemMissing bool
}

type RentalService interface {
	Create(member *domain.Member, item *domain.RentalItem, start time.Time, days int) (*domain.Rental, error)
	Return(rentalID int) (*ReturnOutcome, error)
	List() []domain.Rental
	Describe(rental domain.Rental) string
}

type ProfitsService interface {
	// Recalculate rebuilds the profit calendar from the rentals registry and
	// persists it. The returned error covers persistence only; the rebuild
	// itself never aborts.
	Recalculate() ([]domain.DailyProfit, error)
	Calendar() []domain.DailyProfit
	IncomeOn(date time.Time) float64
	IncomeToday() float64
	TotalIncome() float64
	MemberRevenue(memberID int) float64
	MemberRevenueReport() []string
}

type MemberService interface {
	Add(firstName, lastName string, level domain.Tier) (*domain.Member, error)
	Update(member domain.Member) error
	Remove(memberID int) error
	AppendHistory(memberID int, entry string) error
	List() []domain.Member
	Find(memberID int) (*domain.Member, error)
}

type InventoryService interface {
	AddVehicle(make, model, vehicleType, year, capacity string, dailyPrice float64) (*domain.RentalItem, error)
	AddGear(model, gearType, capacity string, dailyPrice float64) (*domain.RentalItem, error)
	Update(item domain.RentalItem) error
	Remove(itemID int) error
	Vehicles() []domain.RentalItem
	Gear() []domain.RentalItem
	AvailableVehicles() []domain.RentalItem
	AvailableGear() []domain.RentalItem
	Find(itemID int) (*domain.RentalItem, error)
	Describe(itemID int) string
}
