package pricing

import (
	"testing"

	"camping-rental-admin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStandard(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		days     int
		expected float64
	}{
		{"Single day", 100, 1, 100},
		{"Three days", 100, 3, 300},
		{"Fractional rate", 99.5, 2, 199},
		{"Zero rate", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Standard(tt.rate, tt.days))
		})
	}
}

func TestTierMultipliers(t *testing.T) {
	// Student is always 0.8x standard, premium 1.2x standard.
	rates := []float64{50, 100, 250, 499.99, 1200}
	days := []int{1, 2, 7, 30}

	for _, rate := range rates {
		for _, d := range days {
			std := Standard(rate, d)
			assert.InDelta(t, std*0.8, Student(rate, d), 1e-9)
			assert.InDelta(t, std*1.2, Premium(rate, d), 1e-9)
		}
	}
}

func TestForTier(t *testing.T) {
	t.Run("Student tier", func(t *testing.T) {
		policy := ForTier(domain.TierStudent)
		assert.Equal(t, 80.0, policy(100, 1))
	})

	t.Run("Premium tier", func(t *testing.T) {
		policy := ForTier(domain.TierPremium)
		assert.InDelta(t, 120.0, policy(100, 1), 1e-9)
	})

	t.Run("Standard tier", func(t *testing.T) {
		policy := ForTier(domain.TierStandard)
		assert.Equal(t, 100.0, policy(100, 1))
	})

	t.Run("Unrecognized tier falls back to standard", func(t *testing.T) {
		policy := ForTier(domain.Tier("Gold"))
		assert.Equal(t, 100.0, policy(100, 1))
	})

	t.Run("Tier match is case-sensitive", func(t *testing.T) {
		policy := ForTier(domain.Tier("student"))
		assert.Equal(t, 100.0, policy(100, 1))
	})
}

func TestDailyRate(t *testing.T) {
	item := &domain.RentalItem{ID: 1, Kind: domain.ItemKindGear, Model: "Fjallraven Abisko", DailyPrice: 250}

	t.Run("Member tier selects policy", func(t *testing.T) {
		member := &domain.Member{ID: 1001, Level: domain.TierStudent}
		assert.Equal(t, 200.0, DailyRate(member, item))
	})

	t.Run("Nil member prices standard", func(t *testing.T) {
		assert.Equal(t, 250.0, DailyRate(nil, item))
	})
}
