package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"camping-rental-admin/internal/config"
	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*storage.FileStore, config.DataConfig) {
	t.Helper()
	cfg := config.DataConfig{Dir: t.TempDir()}
	cfg.Members = filepath.Join(cfg.Dir, "members.json")
	cfg.Vehicles = filepath.Join(cfg.Dir, "vehicles.json")
	cfg.Gear = filepath.Join(cfg.Dir, "gear.json")
	cfg.Rentals = filepath.Join(cfg.Dir, "rentals.json")
	cfg.Profits = filepath.Join(cfg.Dir, "profits.json")
	return storage.NewFileStore(cfg), cfg
}

func TestFileStore_Load(t *testing.T) {
	t.Run("Missing file loads empty", func(t *testing.T) {
		store, _ := newTestStore(t)

		members, err := store.LoadMembers()
		require.NoError(t, err)
		assert.NotNil(t, members)
		assert.Empty(t, members)
	})

	t.Run("Empty file loads empty", func(t *testing.T) {
		store, cfg := newTestStore(t)
		require.NoError(t, os.WriteFile(cfg.Rentals, []byte{}, 0o644))

		rentals, err := store.LoadRentals()
		require.NoError(t, err)
		assert.Empty(t, rentals)
	})

	t.Run("Malformed JSON is an error", func(t *testing.T) {
		store, cfg := newTestStore(t)
		require.NoError(t, os.WriteFile(cfg.Members, []byte("{not json"), 0o644))

		_, err := store.LoadMembers()
		assert.Error(t, err)
	})
}

func TestFileStore_Roundtrip(t *testing.T) {
	store, cfg := newTestStore(t)

	members := []domain.Member{
		{ID: 1001, FirstName: "Maja", LastName: "Nilsson", Level: domain.TierStudent,
			History: []string{"Rented Hilleberg Keron"}},
		{ID: 1002, FirstName: "Erik", LastName: "Lund", Level: domain.TierPremium},
	}
	require.NoError(t, store.SaveMembers(members))

	loaded, err := store.LoadMembers()
	require.NoError(t, err)
	assert.Equal(t, members, loaded)

	// The file on disk is a plain JSON array other tools can read.
	data, err := os.ReadFile(cfg.Members)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"membership_level": "Student"`)
}

func TestFileStore_SaveReplacesWholeCollection(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.SaveGear([]domain.RentalItem{
		{ID: 1, Kind: domain.ItemKindGear, Model: "Hilleberg Keron", DailyPrice: 100},
		{ID: 2, Kind: domain.ItemKindGear, Model: "Trangia 25", DailyPrice: 50},
	}))
	require.NoError(t, store.SaveGear([]domain.RentalItem{
		{ID: 2, Kind: domain.ItemKindGear, Model: "Trangia 25", DailyPrice: 50},
	}))

	gear, err := store.LoadGear()
	require.NoError(t, err)
	require.Len(t, gear, 1)
	assert.Equal(t, 2, gear[0].ID)
}

func TestFileStore_SaveNilWritesEmptyArray(t *testing.T) {
	store, cfg := newTestStore(t)

	require.NoError(t, store.SaveProfits(nil))

	data, err := os.ReadFile(cfg.Profits)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileStore_SaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := config.DataConfig{Dir: dir}
	cfg.Members = filepath.Join(dir, "members.json")
	cfg.Vehicles = filepath.Join(dir, "vehicles.json")
	cfg.Gear = filepath.Join(dir, "gear.json")
	cfg.Rentals = filepath.Join(dir, "rentals.json")
	cfg.Profits = filepath.Join(dir, "profits.json")
	store := storage.NewFileStore(cfg)

	require.NoError(t, store.SaveRentals([]domain.Rental{
		{ID: 1, MemberID: 1001, ItemID: 1, StartDate: "2024-06-01", Days: 2},
	}))

	rentals, err := store.LoadRentals()
	require.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	store, cfg := newTestStore(t)

	require.NoError(t, store.SaveVehicles([]domain.RentalItem{
		{ID: 1, Kind: domain.ItemKindVehicle, Make: "Adria", Model: "Coral", DailyPrice: 500},
	}))

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vehicles.json", entries[0].Name())
}
