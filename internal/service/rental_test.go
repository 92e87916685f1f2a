package service_test

import (
	"testing"

	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/service"
	"camping-rental-admin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *storage.MemStore {
	store := storage.NewMemStore()
	store.Members = []domain.Member{
		{ID: 1001, FirstName: "Maja", LastName: "Nilsson", Level: domain.TierStandard},
	}
	store.Gear = []domain.RentalItem{
		{ID: 1, Kind: domain.ItemKindGear, Model: "Hilleberg Keron", Type: "Tent", DailyPrice: 100},
	}
	store.Vehicles = []domain.RentalItem{
		{ID: 2, Kind: domain.ItemKindVehicle, Make: "Adria", Model: "Coral", Type: "Motorhome", DailyPrice: 500},
	}
	return store
}

func TestRentalService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := seededStore()
		f := newFixture(store)

		member := f.members.FindByID(1001)
		item := f.inventory.FindByID(1)

		rental, err := f.rental.Create(member, item, date("2024-06-01"), 3)
		require.NoError(t, err)
		require.NotNil(t, rental)

		assert.Equal(t, 1, rental.ID)
		assert.Equal(t, 1001, rental.MemberID)
		assert.Equal(t, 1, rental.ItemID)
		assert.Equal(t, "2024-06-01", rental.StartDate)
		assert.Equal(t, 3, rental.Days)

		// Item is flagged rented and both collections were persisted.
		assert.True(t, f.inventory.FindByID(1).Rented)
		assert.Len(t, store.Rentals, 1)
		assert.True(t, store.Gear[0].Rented)
	})

	t.Run("Sequential rental IDs", func(t *testing.T) {
		store := seededStore()
		f := newFixture(store)

		member := f.members.FindByID(1001)

		first, err := f.rental.Create(member, f.inventory.FindByID(1), date("2024-06-01"), 2)
		require.NoError(t, err)
		second, err := f.rental.Create(member, f.inventory.FindByID(2), date("2024-06-01"), 2)
		require.NoError(t, err)

		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("Nil member", func(t *testing.T) {
		f := newFixture(seededStore())

		rental, err := f.rental.Create(nil, f.inventory.FindByID(1), date("2024-06-01"), 3)
		assert.ErrorIs(t, err, service.ErrNoMember)
		assert.Nil(t, rental)
		assert.Empty(t, f.rental.List())
	})

	t.Run("Nil item", func(t *testing.T) {
		f := newFixture(seededStore())

		rental, err := f.rental.Create(f.members.FindByID(1001), nil, date("2024-06-01"), 3)
		assert.ErrorIs(t, err, service.ErrNoItem)
		assert.Nil(t, rental)
	})

	t.Run("Non-positive days leaves no side effects", func(t *testing.T) {
		f := newFixture(seededStore())

		rental, err := f.rental.Create(f.members.FindByID(1001), f.inventory.FindByID(1), date("2024-06-01"), 0)
		assert.ErrorIs(t, err, service.ErrInvalidDays)
		assert.Nil(t, rental)
		assert.False(t, f.inventory.FindByID(1).Rented)
		assert.Empty(t, f.rental.List())
	})

	t.Run("Already rented item is rejected", func(t *testing.T) {
		f := newFixture(seededStore())
		member := f.members.FindByID(1001)

		_, err := f.rental.Create(member, f.inventory.FindByID(1), date("2024-06-01"), 2)
		require.NoError(t, err)

		_, err = f.rental.Create(member, f.inventory.FindByID(1), date("2024-06-05"), 2)
		assert.ErrorIs(t, err, service.ErrItemUnavailable)
	})
}

func TestRentalService_Return(t *testing.T) {
	t.Run("Create then return restores the item", func(t *testing.T) {
		f := newFixture(seededStore())
		member := f.members.FindByID(1001)

		rental, err := f.rental.Create(member, f.inventory.FindByID(1), date("2024-06-01"), 3)
		require.NoError(t, err)

		outcome, err := f.rental.Return(rental.ID)
		require.NoError(t, err)
		assert.False(t, outcome.ItemMissing)

		assert.False(t, f.inventory.FindByID(1).Rented)
		assert.Empty(t, f.rental.List())

		// The returned rental no longer contributes to any date.
		calendar, err := f.profits.Recalculate()
		require.NoError(t, err)
		assert.Empty(t, calendar)
		assert.Equal(t, 0.0, f.profits.TotalIncome())
	})

	t.Run("Unknown rental", func(t *testing.T) {
		f := newFixture(seededStore())

		outcome, err := f.rental.Return(42)
		assert.ErrorIs(t, err, service.ErrRentalNotFound)
		assert.Nil(t, outcome)
	})

	t.Run("Missing item still removes the rental", func(t *testing.T) {
		store := seededStore()
		store.Rentals = []domain.Rental{
			{ID: 7, MemberID: 1001, ItemID: 999, StartDate: "2024-06-01", Days: 2},
		}
		f := newFixture(store)

		outcome, err := f.rental.Return(7)
		require.NoError(t, err)
		assert.True(t, outcome.ItemMissing)
		assert.Empty(t, f.rental.List())
	})
}

func TestRentalService_Describe(t *testing.T) {
	store := seededStore()
	store.Rentals = []domain.Rental{
		{ID: 1, MemberID: 1001, ItemID: 1, StartDate: "2024-06-01", Days: 3},
		{ID: 2, MemberID: 404, ItemID: 999, StartDate: "2024-06-02", Days: 1},
	}
	f := newFixture(store)

	assert.Equal(t, "#1 Maja Nilsson -> Hilleberg Keron (Tent) from 2024-06-01 for 3 day(s)",
		f.rental.Describe(store.Rentals[0]))
	assert.Equal(t, "#2 Unknown Member -> Unknown Item from 2024-06-02 for 1 day(s)",
		f.rental.Describe(store.Rentals[1]))
}
