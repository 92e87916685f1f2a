package registry_test

import (
	"testing"

	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/registry"
	"camping-rental-admin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRegistry_UniqueID(t *testing.T) {
	t.Run("Always four digits", func(t *testing.T) {
		r := registry.NewMemberRegistry(storage.NewMemStore())

		for i := 0; i < 100; i++ {
			id, err := r.UniqueID()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, id, 1000)
			assert.LessOrEqual(t, id, 9999)
		}
	})

	t.Run("Never repeats", func(t *testing.T) {
		r := registry.NewMemberRegistry(storage.NewMemStore())

		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			id, err := r.UniqueID()
			require.NoError(t, err)
			assert.False(t, seen[id], "ID %d issued twice", id)
			seen[id] = true
		}
	})

	t.Run("Loaded members reserve their IDs", func(t *testing.T) {
		store := storage.NewMemStore()
		store.Members = []domain.Member{
			{ID: 1234, FirstName: "Maja", LastName: "Nilsson", Level: domain.TierStandard},
		}
		r := registry.NewMemberRegistry(store)

		assert.True(t, r.IDInUse(1234))
		for i := 0; i < 200; i++ {
			id, err := r.UniqueID()
			require.NoError(t, err)
			assert.NotEqual(t, 1234, id)
		}
	})

	t.Run("Exhausted space reports an error", func(t *testing.T) {
		store := storage.NewMemStore()
		for id := 1000; id <= 9999; id++ {
			store.Members = append(store.Members, domain.Member{ID: id})
		}
		r := registry.NewMemberRegistry(store)

		_, err := r.UniqueID()
		assert.ErrorIs(t, err, registry.ErrIDSpaceExhausted)
	})

	t.Run("Nearly full space still terminates", func(t *testing.T) {
		store := storage.NewMemStore()
		for id := 1000; id <= 9998; id++ {
			store.Members = append(store.Members, domain.Member{ID: id})
		}
		r := registry.NewMemberRegistry(store)

		id, err := r.UniqueID()
		require.NoError(t, err)
		assert.Equal(t, 9999, id)
	})
}

func TestMemberRegistry_Mutations(t *testing.T) {
	t.Run("Add reserves the ID and persists", func(t *testing.T) {
		store := storage.NewMemStore()
		r := registry.NewMemberRegistry(store)

		member := domain.Member{ID: 4242, FirstName: "Erik", LastName: "Lund", Level: domain.TierStudent}
		require.NoError(t, r.Add(member))

		assert.True(t, r.IDInUse(4242))
		assert.Len(t, store.Members, 1)
		require.NotNil(t, r.FindByID(4242))
		assert.Equal(t, "Erik Lund", r.FindByID(4242).FullName())
	})

	t.Run("Remove keeps the ID reserved", func(t *testing.T) {
		store := storage.NewMemStore()
		r := registry.NewMemberRegistry(store)
		require.NoError(t, r.Add(domain.Member{ID: 4242, FirstName: "Erik", LastName: "Lund"}))

		require.NoError(t, r.Remove(4242))
		assert.Nil(t, r.FindByID(4242))
		assert.True(t, r.IDInUse(4242))
		assert.Empty(t, store.Members)
	})

	t.Run("Update unknown member", func(t *testing.T) {
		r := registry.NewMemberRegistry(storage.NewMemStore())
		err := r.Update(domain.Member{ID: 1})
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("Save failure keeps the in-memory mutation", func(t *testing.T) {
		store := storage.NewMemStore()
		r := registry.NewMemberRegistry(store)
		store.FailSaves = true

		err := r.Add(domain.Member{ID: 4242, FirstName: "Erik", LastName: "Lund"})
		assert.Error(t, err)
		assert.NotNil(t, r.FindByID(4242))
	})
}
