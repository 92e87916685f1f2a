package service

import (
	"fmt"
	"sort"
	"time"

	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/pricing"
	"camping-rental-admin/internal/registry"
	"camping-rental-admin/internal/storage"
)

// profitsService derives the daily profit calendar from the rentals registry.
// The calendar is a cache: every Recalculate throws it away and rebuilds it
// from scratch, so it can never drift from the authoritative collections.
type profitsService struct {
	rentals   *registry.RentalRegistry
	inventory *registry.Inventory
	members   *registry.MemberRegistry
	store     storage.Storage
	calendar  []domain.DailyProfit
}

func NewProfitsService(
	rentals *registry.RentalRegistry,
	inventory *registry.Inventory,
	members *registry.MemberRegistry,
	store storage.Storage,
) ProfitsService {
	s := &profitsService{
		rentals:   rentals,
		inventory: inventory,
		members:   members,
		store:     store,
	}

	calendar, err := store.LoadProfits()
	if err != nil {
		logger.WithService("profits").Error("Failed to load profit calendar, starting empty", "error", err)
		calendar = []domain.DailyProfit{}
	}
	s.calendar = calendar

	return s
}

// Recalculate walks every open rental's date range and accumulates its per-day
// price into a date-keyed accumulator, then replaces and persists the
// calendar. Rentals with a missing item are skipped; a missing member prices
// at the Standard tier. Neither aborts the rebuild.
func (s *profitsService) Recalculate() ([]domain.DailyProfit, error) {
	log := logger.WithService("profits")
	rentals := s.rentals.All()
	incomeByDate := make(map[string]float64)

	log.Info("Recalculating profit calendar", "rentals", len(rentals))

	for _, rental := range rentals {
		item := s.inventory.FindByID(rental.ItemID)
		if item == nil {
			log.Warn("Skipping rental with missing item", "rental_id", rental.ID, "item_id", rental.ItemID)
			continue
		}

		member := s.members.FindByID(rental.MemberID)
		if member == nil {
			log.Warn("Rental references a missing member, pricing at Standard tier",
				"rental_id", rental.ID, "member_id", rental.MemberID)
		}

		start, err := rental.Start()
		if err != nil {
			log.Warn("Skipping rental with unparseable start date",
				"rental_id", rental.ID, "start_date", rental.StartDate, "error", err)
			continue
		}

		dailyRate := pricing.DailyRate(member, item)
		for i := 0; i < rental.Days; i++ {
			date := start.AddDate(0, 0, i).Format(domain.DateLayout)
			incomeByDate[date] += dailyRate
		}
	}

	calendar := make([]domain.DailyProfit, 0, len(incomeByDate))
	for date, income := range incomeByDate {
		calendar = append(calendar, domain.DailyProfit{Date: date, Income: income})
	}
	sort.Slice(calendar, func(i, j int) bool {
		return calendar[i].Date < calendar[j].Date
	})

	s.calendar = calendar

	if err := s.store.SaveProfits(s.calendar); err != nil {
		log.Error("Failed to persist profit calendar, in-memory state is ahead of disk", "error", err)
		return s.calendar, err
	}

	log.Info("Profit calendar rebuilt", "entries", len(s.calendar))
	return s.calendar, nil
}

func (s *profitsService) Calendar() []domain.DailyProfit {
	return append([]domain.DailyProfit{}, s.calendar...)
}

// IncomeOn returns the calendar entry for the given date, or 0 if absent.
func (s *profitsService) IncomeOn(date time.Time) float64 {
	key := date.Format(domain.DateLayout)
	for _, p := range s.calendar {
		if p.Date == key {
			return p.Income
		}
	}
	return 0
}

func (s *profitsService) IncomeToday() float64 {
	return s.IncomeOn(time.Now())
}

// TotalIncome recomputes total revenue directly from the rentals registry
// rather than summing the calendar, giving an independent cross-check path.
func (s *profitsService) TotalIncome() float64 {
	total := 0.0
	for _, rental := range s.rentals.All() {
		total += s.rentalRevenue(rental)
	}
	return total
}

// MemberRevenue sums per-rental revenue over the rentals referencing the
// member.
func (s *profitsService) MemberRevenue(memberID int) float64 {
	total := 0.0
	for _, rental := range s.rentals.All() {
		if rental.MemberID == memberID {
			total += s.rentalRevenue(rental)
		}
	}
	return total
}

// MemberRevenueReport emits one "First Last: amount" line per member.
func (s *profitsService) MemberRevenueReport() []string {
	members := s.members.All()
	lines := make([]string, 0, len(members))
	for _, m := range members {
		lines = append(lines, fmt.Sprintf("%s: %.2f SEK", m.FullName(), s.MemberRevenue(m.ID)))
	}
	return lines
}

// rentalRevenue prices a full rental with the same fallbacks as Recalculate:
// missing item contributes nothing, missing member prices Standard.
func (s *profitsService) rentalRevenue(rental domain.Rental) float64 {
	item := s.inventory.FindByID(rental.ItemID)
	if item == nil {
		return 0
	}
	member := s.members.FindByID(rental.MemberID)
	tier := domain.TierStandard
	if member != nil {
		tier = member.Level
	}
	return pricing.ForTier(tier)(item.DailyPrice, rental.Days)
}
