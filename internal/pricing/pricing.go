package pricing

import "camping-rental-admin/internal/domain"

// Tier multipliers applied on top of the standard price.
const (
	studentDiscount = 0.8
	premiumRate     = 1.2
)

// PolicyFunc computes a total price from a daily base rate and a rental day
// count. No rounding happens here; callers format for display at two decimals.
type PolicyFunc func(dailyRate float64, days int) float64

// Standard is the base policy: dailyRate * days.
func Standard(dailyRate float64, days int) float64 {
	return dailyRate * float64(days)
}

// Student applies the student discount to the standard price.
func Student(dailyRate float64, days int) float64 {
	return Standard(dailyRate, days) * studentDiscount
}

// Premium applies the premium surcharge to the standard price.
func Premium(dailyRate float64, days int) float64 {
	return Standard(dailyRate, days) * premiumRate
}

// ForTier selects the policy for a membership tier. The match is
// case-sensitive; any unrecognized tier falls back to Standard. That is a
// deliberate fallback, not an error condition.
func ForTier(tier domain.Tier) PolicyFunc {
	switch tier {
	case domain.TierStudent:
		return Student
	case domain.TierPremium:
		return Premium
	default:
		return Standard
	}
}

// DailyRate computes the per-day price for a member/item pair. A nil member
// is priced at the Standard tier, which keeps profit aggregation going when a
// rental references a member that no longer exists.
func DailyRate(member *domain.Member, item *domain.RentalItem) float64 {
	tier := domain.TierStandard
	if member != nil {
		tier = member.Level
	}
	return ForTier(tier)(item.DailyPrice, 1)
}
